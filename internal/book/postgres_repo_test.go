package book

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ourshelves/internal/platform/postgres"
)

func setupBookTestDB(t *testing.T) *PostgresRepo {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("Skipping test: TEST_DB_DSN not set")
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, dsn, 0)
	if err != nil {
		t.Skipf("Skipping test: cannot connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	_, thisFile, _, _ := runtime.Caller(0)
	dir := filepath.Join(filepath.Dir(thisFile), "..", "..", "db", "migrations")
	require.NoError(t, postgres.MigrateUp(db, dir))

	repo := NewPostgresRepo(db, 5*time.Second)
	require.NoError(t, repo.Truncate(ctx))
	return repo
}

func TestPostgresRepo_CRUD(t *testing.T) {
	repo := setupBookTestDB(t)
	ctx := context.Background()

	author := "Ursula K. Le Guin"
	year := 1969
	created, err := repo.Create(ctx, Input{Title: "The Left Hand of Darkness", Author: &author, Year: &year})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.NotZero(t, created.CreatedAt)
	assert.Nil(t, created.Genre)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	require.NotNil(t, got.Year)
	assert.Equal(t, 1969, *got.Year)

	require.NoError(t, repo.Update(ctx, created.ID, Input{Title: "Renamed"}))
	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Nil(t, got.Author)
	assert.Nil(t, got.Year)

	require.NoError(t, repo.Delete(ctx, created.ID))
	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, created.ID, Input{Title: "X"}), ErrNotFound)
}

func TestPostgresRepo_ListNewestFirst(t *testing.T) {
	repo := setupBookTestDB(t)
	ctx := context.Background()

	books, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(ctx, Input{Title: title})
		require.NoError(t, err)
	}

	books, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "third", books[0].Title)
	assert.Equal(t, "first", books[2].Title)
}

func TestPostgresRepo_RejectsEmptyTitle(t *testing.T) {
	repo := setupBookTestDB(t)

	_, err := repo.Create(context.Background(), Input{Title: ""})
	assert.Error(t, err)
}

func TestPostgresRepo_Ping(t *testing.T) {
	repo := setupBookTestDB(t)
	assert.NoError(t, repo.Ping(context.Background()))
}
