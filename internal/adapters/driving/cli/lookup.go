package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [record-id]",
	Short: "Show the full recipe behind a recommendation",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid record id %q", args[0])
	}

	if err := ensureServices(); err != nil {
		return err
	}
	if matchingService == nil {
		return errors.New("matching service not configured")
	}

	ctx := cmd.Context()
	if err := matchingService.Build(ctx); err != nil {
		return fmt.Errorf("building model: %w", err)
	}

	record, err := matchingService.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("no recipe with id %d", id)
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	cmd.Println(recipeNameStyle.Render(record.Name))
	cmd.Println()
	cmd.Println("Ingredients:")
	ingredients := record.RawIngredients
	if len(ingredients) == 0 {
		ingredients = record.Ingredients
	}
	for _, ing := range ingredients {
		cmd.Printf("  - %s\n", ing)
	}
	if len(record.Instructions) > 0 {
		cmd.Println()
		cmd.Println("Instructions:")
		for i, step := range record.Instructions {
			cmd.Printf("  %d. %s\n", i+1, step)
		}
	}
	if record.URL != "" {
		cmd.Println()
		cmd.Println(mutedStyle.Render("Source: " + record.URL))
	}

	return nil
}
