package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/domains/ingredient"
	"recipe-backend/internal/domains/recipe"
	reciperepo "recipe-backend/internal/domains/recipe/repository"
	"recipe-backend/internal/infrastructure/sqlite"
)

func setup(t *testing.T) (*sql.DB, ingredient.Repository, uuid.UUID) {
	t.Helper()

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	rec, err := reciperepo.NewSQLiteRepository(store.DB).Create(context.Background(), &recipe.Recipe{Title: "Soup"})
	require.NoError(t, err)

	return store.DB, NewSQLiteRepository(store.DB), rec.ID
}

func TestSQLiteRepository_CreateAndGet(t *testing.T) {
	_, repo, recipeID := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &ingredient.Ingredient{
		Name:     "Flour",
		Quantity: decimal.RequireFromString("0.125"),
		Unit:     "kg",
		RecipeID: recipeID,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Flour", got.Name)
	assert.True(t, got.Quantity.Equal(decimal.RequireFromString("0.125")), "quantity = %s", got.Quantity)
	assert.Equal(t, "kg", got.Unit)
	assert.Equal(t, recipeID, got.RecipeID)
}

func TestSQLiteRepository_RejectsNegativeQuantity(t *testing.T) {
	_, repo, recipeID := setup(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &ingredient.Ingredient{
		Name:     "Sugar",
		Quantity: decimal.NewFromInt(-5),
		RecipeID: recipeID,
	})
	assert.ErrorIs(t, err, ingredient.ErrNegativeQuantity)

	created, err := repo.Create(ctx, &ingredient.Ingredient{
		Name:     "Sugar",
		Quantity: decimal.NewFromInt(5),
		RecipeID: recipeID,
	})
	require.NoError(t, err)

	created.Quantity = decimal.NewFromInt(-5)
	_, err = repo.Update(ctx, created)
	assert.ErrorIs(t, err, ingredient.ErrNegativeQuantity)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Quantity.Equal(decimal.NewFromInt(5)))
}

func TestSQLiteRepository_CheckConstraintMapsToNegativeQuantity(t *testing.T) {
	db, _, recipeID := setup(t)
	now := time.Now().UTC()

	_, err := db.Exec(
		`INSERT INTO ingredients (id, name, quantity, unit, recipe_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.New(), "Salt", "-0.5", "", recipeID, now, now,
	)
	require.Error(t, err)
	assert.ErrorIs(t, mapSQLiteError("create", err), ingredient.ErrNegativeQuantity)
}

func TestSQLiteRepository_UnknownRecipe(t *testing.T) {
	_, repo, _ := setup(t)

	_, err := repo.Create(context.Background(), &ingredient.Ingredient{
		Name:     "Salt",
		RecipeID: uuid.New(),
	})
	assert.ErrorIs(t, err, recipe.ErrRecipeNotFound)
}

func TestSQLiteRepository_ListByRecipeAndDelete(t *testing.T) {
	_, repo, recipeID := setup(t)
	ctx := context.Background()

	var created []uuid.UUID
	for _, name := range []string{"Salt", "Pepper"} {
		i, err := repo.Create(ctx, &ingredient.Ingredient{Name: name, RecipeID: recipeID})
		require.NoError(t, err)
		created = append(created, i.ID)
	}

	list, err := repo.ListByRecipe(ctx, recipeID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, repo.Delete(ctx, created[0]))
	assert.ErrorIs(t, repo.Delete(ctx, created[0]), ingredient.ErrIngredientNotFound)

	_, err = repo.GetByID(ctx, created[0])
	assert.ErrorIs(t, err, ingredient.ErrIngredientNotFound)

	exists, err := repo.ExistsByID(ctx, created[1])
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteRepository_UpdateMissing(t *testing.T) {
	_, repo, recipeID := setup(t)

	_, err := repo.Update(context.Background(), &ingredient.Ingredient{
		ID:       uuid.New(),
		Name:     "Ghost",
		RecipeID: recipeID,
	})
	assert.ErrorIs(t, err, ingredient.ErrIngredientNotFound)
}
