package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCmd_Use(t *testing.T) {
	assert.Equal(t, "recommend [ingredient]...", recommendCmd.Use)
}

func TestRecommendCmd_RequiresIngredients(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestRecommendCmd_HasLimitFlag(t *testing.T) {
	flag := recommendCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
}

func TestRecommendCmd_ExecutesWithIngredients(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "tomato", "onion"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Recommendations:")
	assert.Contains(t, buf.String(), "Tomato Soup")
	assert.Contains(t, buf.String(), "Fried Rice")
}

func TestRecommendCmd_LimitTruncates(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "-n", "1", "tomato"})
	defer func() {
		rootCmd.SetArgs(nil)
		recommendLimit = 0
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Tomato Soup")
	assert.NotContains(t, buf.String(), "Fried Rice")
}

func TestRecommendCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "--json", "tomato"})
	defer func() {
		rootCmd.SetArgs(nil)
		recommendJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"record_id"`)
	assert.Contains(t, buf.String(), `"distance"`)
	assert.Contains(t, buf.String(), `"Tomato Soup"`)
}

func TestRecommendCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	oldService := matchingService
	matchingService = &mockMatchingServiceError{}
	defer func() {
		matchingService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend", "tomato"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "matching failed")
}

func TestOutputRecommendTable_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputRecommendTable(rootCmd, []recommendation{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No recommendations found")
}

func TestOutputRecommendJSON_Empty(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)

	err := outputRecommendJSON(rootCmd, []recommendation{})

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "[]")
}
