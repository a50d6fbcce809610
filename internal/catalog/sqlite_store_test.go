package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	db, err := OpenDB(filepath.Join(t.TempDir(), "filmes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := NewStore(db)
	require.NoError(t, store.Init(context.Background()))
	return store
}

func TestStore_ReplaceAllAndListAll(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	records := testRecords()
	require.NoError(t, store.ReplaceAll(ctx, records))

	loaded, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "The Matrix", loaded[0].Title)
	assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, loaded[0].Directors)
	assert.Equal(t, 1999, loaded[0].Year)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, loaded[0].Genres)
	assert.Equal(t, "A hacker learns the truth.", loaded[0].Synopsis)
	assert.Equal(t, "Inception", loaded[1].Title)
}

func TestStore_ReplaceAllOverwrites(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceAll(ctx, testRecords()))
	require.NoError(t, store.ReplaceAll(ctx, []MovieRecord{{Title: "Dune", Year: 2021}}))

	loaded, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Dune", loaded[0].Title)
}

func TestStore_ListAllEmpty(t *testing.T) {
	store := testStore(t)

	loaded, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
