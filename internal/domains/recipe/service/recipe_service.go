package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/domains/recipe"
	"recipe-backend/internal/domains/recipe/search"
)

// recipeService implements recipe.Service
type recipeService struct {
	repo    recipe.Repository
	authors author.Repository
}

// NewRecipeService creates a new recipe service instance.
// authors is used to check author references.
func NewRecipeService(repo recipe.Repository, authors author.Repository) recipe.Service {
	return &recipeService{
		repo:    repo,
		authors: authors,
	}
}

func (s *recipeService) Create(ctx context.Context, req *recipe.CreateRecipeRequest) (*recipe.Recipe, error) {
	rec := req.ToEntity()
	if err := s.validate(ctx, rec); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, rec)
}

func (s *recipeService) GetByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	if id == uuid.Nil {
		return nil, recipe.ErrRecipeNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *recipeService) List(ctx context.Context) ([]recipe.Recipe, error) {
	return s.repo.List(ctx)
}

func (s *recipeService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]recipe.Recipe, error) {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.ListByAuthor(ctx, authorID)
}

// Search compiles keywords and runs them against the store. Keywords that are
// all blank match nothing.
func (s *recipeService) Search(ctx context.Context, keywords []string) ([]recipe.Recipe, error) {
	expr, ok := search.Compile(keywords)
	if !ok {
		searchTotal.WithLabelValues(searchEmpty).Inc()
		return []recipe.Recipe{}, nil
	}

	found, err := s.repo.Search(ctx, expr)
	if err != nil {
		searchTotal.WithLabelValues(searchFailed).Inc()
		return nil, fmt.Errorf("recipe search: %w", err)
	}

	results := dedupeByID(found)
	searchTotal.WithLabelValues(searchExecuted).Inc()
	searchResults.Observe(float64(len(results)))

	log.Debug().
		Strs("keywords", search.Normalize(keywords)).
		Int("results", len(results)).
		Msg("[RECIPE] search")
	return results, nil
}

func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req *recipe.UpdateRecipeRequest) (*recipe.Recipe, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	if err := s.validate(ctx, existing); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, existing)
}

func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return recipe.ErrRecipeNotFound
	}
	return s.repo.Delete(ctx, id)
}

// validate checks the entity and that a referenced author exists.
func (s *recipeService) validate(ctx context.Context, rec *recipe.Recipe) error {
	if err := rec.IsValid(); err != nil {
		return err
	}
	if !rec.HasAuthor() {
		rec.AuthorID = nil
		return nil
	}

	exists, err := s.authors.ExistsByID(ctx, *rec.AuthorID)
	if err != nil {
		return err
	}
	if !exists {
		return recipe.ErrAuthorReferenceNotFound
	}
	return nil
}

// dedupeByID keeps the first occurrence of every recipe.
func dedupeByID(recipes []recipe.Recipe) []recipe.Recipe {
	seen := make(map[uuid.UUID]struct{}, len(recipes))
	out := make([]recipe.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out
}
