// Package cli provides the command-line interface for RecipeML.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/config/file"
	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/storage/sqlite"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driving"
	"github.com/recipeml-labs/recipeml-cli/internal/core/services"
	"github.com/recipeml-labs/recipeml-cli/internal/logger"
	"github.com/recipeml-labs/recipeml-cli/internal/normalisers/corpustext"
	"github.com/recipeml-labs/recipeml-cli/internal/normalisers/ingredient"
	"github.com/recipeml-labs/recipeml-cli/internal/similarity"
	"github.com/recipeml-labs/recipeml-cli/internal/vectorspace"
)

// version is set at build time via ldflags.
var version = "dev"

// Services used by the commands. Wired lazily by ensureServices;
// tests replace them with mocks.
var (
	configStore     driven.ConfigStore
	corpusStore     *sqlite.Store
	matchingService driving.MatchingService
	ingestService   driving.IngestService

	// matchingImpl keeps the concrete service around for watcher wiring.
	matchingImpl *services.MatchingService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "recipeml",
	Short: "Recipe recommendations from the ingredients you have",
	Long: `RecipeML recommends recipes by matching your ingredients against a
local corpus in TF-IDF space. Ingest a recipe dump once, then ask for
recommendations as often as you like.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the default adapters on first use.
func ensureServices() error {
	if matchingService != nil && ingestService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	configStore = cfg

	store, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening corpus store: %w", err)
	}
	corpusStore = store

	matchingImpl = services.NewMatchingService(
		store,
		ingredient.New(),
		corpustext.New(),
		vectorspace.New(),
		similarity.NewBuilder(),
		cfg.GetInt(file.KeyNeighbours),
	)
	matchingService = matchingImpl
	ingestService = services.NewIngestService(store, ingredient.New(), corpustext.New())

	return nil
}
