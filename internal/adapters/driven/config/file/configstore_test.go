package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyNeighbours, 6))
	require.NoError(t, store.Set(KeyDataDir, "/tmp/corpus"))
	require.NoError(t, store.Set(KeyWatch, true))

	assert.Equal(t, 6, store.GetInt(KeyNeighbours))
	assert.Equal(t, "/tmp/corpus", store.GetString(KeyDataDir))
	assert.True(t, store.GetBool(KeyWatch))
}

func TestConfigStore_MissingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("no.such.key")
	assert.False(t, ok)
	assert.Zero(t, store.GetInt("no.such.key"))
	assert.Empty(t, store.GetString("no.such.key"))
	assert.False(t, store.GetBool("no.such.key"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "not an int"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_SaveAndReload(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyNeighbours, 8))
	require.NoError(t, store.Set(KeyDataDir, "/var/lib/recipeml"))
	require.NoError(t, store.Save())

	// TOML file exists with nested tables
	content, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[matching]")
	assert.Contains(t, string(content), "[storage]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 8, reloaded.GetInt(KeyNeighbours))
	assert.Equal(t, "/var/lib/recipeml", reloaded.GetString(KeyDataDir))
}
