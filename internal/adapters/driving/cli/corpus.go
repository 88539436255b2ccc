package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Corpus management commands",
	RunE:  runCorpusStats,
}

var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus statistics",
	Args:  cobra.NoArgs,
	RunE:  runCorpusStats,
}

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusStats(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if corpusStore == nil {
		return errors.New("corpus store not configured")
	}

	count, err := corpusStore.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("counting corpus: %w", err)
	}

	cmd.Printf("Corpus: %d recipes\n", count)
	cmd.Printf("Store:  %s\n", corpusStore.Path())
	if count == 0 {
		cmd.Println("\nThe corpus is empty. Run 'recipeml ingest <dump.csv>' first.")
	}
	return nil
}
