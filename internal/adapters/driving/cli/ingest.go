package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [dump.csv]",
	Short: "Ingest a recipe dump into the corpus",
	Long: `Reads a RecipeNLG-shaped CSV dump, normalises each recipe and
replaces the local corpus with the result. Rows without a title or
ingredients are dropped, as are duplicate titles (first one wins).`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if err := ensureServices(); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	report, err := ingestService.Ingest(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Ingested %d recipes from %d rows.\n", report.Kept, report.Total)
	if report.Duplicates > 0 {
		cmd.Printf("  Skipped %d duplicate titles.\n", report.Duplicates)
	}
	if report.Invalid > 0 {
		cmd.Printf("  Skipped %d invalid rows.\n", report.Invalid)
	}
	return nil
}
