package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the recommendation model",
	Long: `Fits the TF-IDF vector space over the ingested corpus and builds
the similarity index, then reports the model statistics. Useful for
checking the corpus before serving.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if matchingService == nil {
		return errors.New("matching service not configured")
	}

	if err := matchingService.Build(cmd.Context()); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	info, err := matchingService.Info()
	if err != nil {
		return fmt.Errorf("describing model: %w", err)
	}

	cmd.Printf("Model built: %d recipes, %d terms.\n", info.Records, info.Terms)
	return nil
}
