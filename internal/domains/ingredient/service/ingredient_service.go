package service

import (
	"context"

	"github.com/google/uuid"

	"recipe-backend/internal/domains/ingredient"
	"recipe-backend/internal/domains/recipe"
)

// ingredientService implements ingredient.Service
type ingredientService struct {
	repo    ingredient.Repository
	recipes recipe.Repository
}

// NewIngredientService creates a new ingredient service instance.
// recipes is used to resolve the owning recipe of every operation.
func NewIngredientService(repo ingredient.Repository, recipes recipe.Repository) ingredient.Service {
	return &ingredientService{
		repo:    repo,
		recipes: recipes,
	}
}

func (s *ingredientService) ListByRecipe(ctx context.Context, recipeID uuid.UUID) ([]ingredient.Ingredient, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.repo.ListByRecipe(ctx, recipeID)
}

// Create validates the quantity before anything is looked up or written.
func (s *ingredientService) Create(ctx context.Context, recipeID uuid.UUID, req *ingredient.CreateIngredientRequest) (*ingredient.Ingredient, error) {
	i := req.ToEntity(recipeID)
	if err := i.IsValid(); err != nil {
		return nil, err
	}

	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, i)
}

func (s *ingredientService) Get(ctx context.Context, recipeID, ingredientID uuid.UUID) (*ingredient.Ingredient, error) {
	if err := s.requireRecipe(ctx, recipeID); err != nil {
		return nil, err
	}
	return s.owned(ctx, recipeID, ingredientID)
}

// Update applies the same quantity rule as Create to the replacement value.
func (s *ingredientService) Update(ctx context.Context, recipeID, ingredientID uuid.UUID, req *ingredient.UpdateIngredientRequest) (*ingredient.Ingredient, error) {
	if err := ingredient.ValidateQuantity(req.Quantity); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, recipeID, ingredientID)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	if err := existing.IsValid(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, existing)
}

func (s *ingredientService) Delete(ctx context.Context, recipeID, ingredientID uuid.UUID) error {
	if _, err := s.Get(ctx, recipeID, ingredientID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, ingredientID)
}

func (s *ingredientService) requireRecipe(ctx context.Context, recipeID uuid.UUID) error {
	if recipeID == uuid.Nil {
		return recipe.ErrRecipeNotFound
	}
	exists, err := s.recipes.ExistsByID(ctx, recipeID)
	if err != nil {
		return err
	}
	if !exists {
		return recipe.ErrRecipeNotFound
	}
	return nil
}

// owned loads an ingredient and hides it when it belongs to another recipe.
func (s *ingredientService) owned(ctx context.Context, recipeID, ingredientID uuid.UUID) (*ingredient.Ingredient, error) {
	i, err := s.repo.GetByID(ctx, ingredientID)
	if err != nil {
		return nil, err
	}
	if !i.BelongsTo(recipeID) {
		return nil, ingredient.ErrIngredientNotFound
	}
	return i, nil
}
