package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-backend/internal/domains/recipe/search"
)

func TestOpen_CreatesNewDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err, "database file was not created")
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "Open() iteration %d", i)
		require.NoError(t, s.Close())
	}
}

func TestOpen_SchemaTables(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	for _, table := range []string{"authors", "recipes", "ingredients"} {
		var count int
		err := s.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	now := time.Now().UTC()
	_, err = s.DB.Exec(
		`INSERT INTO recipes (id, title, author_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		"r1", "Orphan", "no-such-author", now, now,
	)
	assert.Error(t, err)
}

func TestOpen_RejectsNegativeQuantity(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	now := time.Now().UTC()
	_, err = s.DB.Exec(`INSERT INTO recipes (id, title, created_at, updated_at) VALUES ('r1', 'Soup', ?, ?)`, now, now)
	require.NoError(t, err)

	_, err = s.DB.Exec(
		`INSERT INTO ingredients (id, name, quantity, recipe_id, created_at, updated_at) VALUES ('i1', 'Salt', '-1', 'r1', ?, ?)`,
		now, now,
	)
	assert.Error(t, err)

	_, err = s.DB.Exec(
		`INSERT INTO ingredients (id, name, quantity, recipe_id, created_at, updated_at) VALUES ('i2', 'Salt', '0', 'r1', ?, ?)`,
		now, now,
	)
	assert.NoError(t, err)
}

func TestClose_Twice(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestDSN(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", dsn("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_foreign_keys=on", dsn("file:a.db?cache=shared"))
}

func TestOpen_RegistersUnicodeLower(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer s.Close()

	var lowered string
	require.NoError(t, s.DB.QueryRow(`SELECT `+LowerFunc+`(?)`, "CRÈME BRÛLÉE").Scan(&lowered))
	assert.Equal(t, "crème brûlée", lowered)

	assert.Equal(t, search.SQLiteLowerFunc, LowerFunc)
}
