package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/domains/author"
	"recipe-backend/internal/infrastructure/sqlite"
)

func newSQLiteRepo(t *testing.T) author.Repository {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewSQLiteRepository(store.DB)
}

func TestSQLiteRepository_CRUD(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &author.Author{Name: "Delia Smith"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Delia Smith", got.Name)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	got.Name = "Delia"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Delia", updated.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	exists, err := repo.ExistsByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteRepository_Missing(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	_, err = repo.Update(ctx, &author.Author{ID: uuid.New(), Name: "x"})
	assert.ErrorIs(t, err, author.ErrAuthorNotFound)

	exists, err := repo.ExistsByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDeletedRowsKeys(t *testing.T) {
	a, r := uuid.New(), uuid.New()
	d := deletedRows{authors: []uuid.UUID{a}, recipes: []uuid.UUID{r}}

	assert.Equal(t, []string{"author:" + a.String(), "recipe:" + r.String()}, d.keys())
	assert.Empty(t, (&deletedRows{}).keys())
}
