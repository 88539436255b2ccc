package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() }) //nolint:errcheck
	return store
}

func sampleRecords() []domain.RecipeRecord {
	return []domain.RecipeRecord{
		{
			ID:             0,
			Name:           "Tomato Soup",
			RawIngredients: []string{"2 tomatoes", "1 onion"},
			Ingredients:    []string{"tomato", "onion"},
			Instructions:   []string{"Chop.", "Simmer."},
			Source:         "Gathered",
			URL:            "https://example.com/tomato-soup",
			CorpusText:     "tomato onion chop simmer",
		},
		{
			ID:          1,
			Name:        "Fried Rice",
			Ingredients: []string{"rice", "egg"},
			CorpusText:  "rice egg",
		},
	}
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "corpus.db"), store.Path())

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := sampleRecords()
	require.NoError(t, store.SaveAll(ctx, records))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "Tomato Soup", loaded[0].Name)
	assert.Equal(t, []string{"2 tomatoes", "1 onion"}, loaded[0].RawIngredients)
	assert.Equal(t, []string{"tomato", "onion"}, loaded[0].Ingredients)
	assert.Equal(t, []string{"Chop.", "Simmer."}, loaded[0].Instructions)
	assert.Equal(t, "Gathered", loaded[0].Source)
	assert.Equal(t, "https://example.com/tomato-soup", loaded[0].URL)
	assert.Equal(t, "tomato onion chop simmer", loaded[0].CorpusText)

	assert.Equal(t, 1, loaded[1].ID)
	assert.Equal(t, "Fried Rice", loaded[1].Name)
}

func TestStore_SaveAll_Replaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, sampleRecords()))
	require.NoError(t, store.SaveAll(ctx, []domain.RecipeRecord{
		{ID: 0, Name: "Toast", Ingredients: []string{"bread"}, CorpusText: "bread"},
	}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Toast", loaded[0].Name)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestStore_LoadAll_OrderedByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Insert out of order; LoadAll must return by position id.
	require.NoError(t, store.SaveAll(ctx, []domain.RecipeRecord{
		{ID: 2, Name: "C", Ingredients: []string{"c"}},
		{ID: 0, Name: "A", Ingredients: []string{"a"}},
		{ID: 1, Name: "B", Ingredients: []string{"b"}},
	}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, []string{"A", "B", "C"}, []string{loaded[0].Name, loaded[1].Name, loaded[2].Name})
}

func TestStore_MigrationsIdempotent(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SaveAll(context.Background(), sampleRecords()))
	require.NoError(t, store.Close())

	// Reopening runs migrate again; data must survive.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
