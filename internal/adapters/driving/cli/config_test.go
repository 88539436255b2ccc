package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()

	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	oldConfig := configStore
	configStore = cfg
	return func() {
		configStore = oldConfig
	}
}

func TestConfigCmd_ShowsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	restoreConfig := setupTestConfig(t)
	defer restoreConfig()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "[Storage]")
	assert.Contains(t, buf.String(), "[Matching]")
	assert.Contains(t, buf.String(), "default: 6")
}

func TestConfigCmd_SetAndShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	restoreConfig := setupTestConfig(t)
	defer restoreConfig()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", file.KeyNeighbours, "8"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Set matching.neighbours = 8")

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "show"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, buf.String(), "Neighbours: 8")
}

func TestConfigSetCmd_RequiresKeyAndValue(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "only-key"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestParseConfigValue(t *testing.T) {
	assert.Equal(t, true, parseConfigValue("true"))
	assert.Equal(t, false, parseConfigValue("false"))
	assert.Equal(t, 42, parseConfigValue("42"))
	assert.Equal(t, "/tmp/data", parseConfigValue("/tmp/data"))
}
