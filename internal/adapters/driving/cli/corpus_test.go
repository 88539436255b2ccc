package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/storage/sqlite"
	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

func setupTestStore(t *testing.T) func() {
	t.Helper()

	store, err := sqlite.NewStore(t.TempDir())
	require.NoError(t, err)

	oldStore := corpusStore
	corpusStore = store
	return func() {
		corpusStore = oldStore
		store.Close() //nolint:errcheck
	}
}

func TestCorpusStatsCmd_EmptyCorpus(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	restoreStore := setupTestStore(t)
	defer restoreStore()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus", "stats"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus: 0 recipes")
	assert.Contains(t, buf.String(), "The corpus is empty")
}

func TestCorpusStatsCmd_CountsRecipes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	restoreStore := setupTestStore(t)
	defer restoreStore()

	require.NoError(t, corpusStore.SaveAll(context.Background(), []domain.RecipeRecord{
		{ID: 0, Name: "Toast", Ingredients: []string{"bread"}},
		{ID: 1, Name: "Soup", Ingredients: []string{"tomato"}},
	}))

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"corpus"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Corpus: 2 recipes")
	assert.Contains(t, buf.String(), "corpus.db")
}
