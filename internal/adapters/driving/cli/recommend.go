package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

var (
	recommendLimit int
	recommendJSON  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend [ingredient]...",
	Short: "Recommend recipes for a list of ingredients",
	Long: `Matches the given ingredients against the corpus in TF-IDF space
and prints the closest recipes, best match first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "maximum number of recommendations (default: model setting)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "output recommendations as JSON")
	rootCmd.AddCommand(recommendCmd)
}

// recommendation pairs a match with the recipe behind it for output.
type recommendation struct {
	RecordID    int      `json:"record_id"`
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	URL         string   `json:"url,omitempty"`
	Distance    float64  `json:"distance"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
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

	recs, err := matchingService.Recommend(ctx, args)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuery) {
			return fmt.Errorf("nothing to match: %w", err)
		}
		return fmt.Errorf("recommendation failed: %w", err)
	}
	if recommendLimit > 0 && len(recs) > recommendLimit {
		recs = recs[:recommendLimit]
	}

	out := make([]recommendation, len(recs))
	for i, rec := range recs {
		out[i] = recommendation{RecordID: rec.RecordID, Distance: rec.Distance}
		record, err := matchingService.Lookup(ctx, rec.RecordID)
		if err == nil {
			out[i].Name = record.Name
			out[i].Ingredients = record.Ingredients
			out[i].URL = record.URL
		}
	}

	if recommendJSON {
		return outputRecommendJSON(cmd, out)
	}
	return outputRecommendTable(cmd, out)
}

func outputRecommendJSON(cmd *cobra.Command, recs []recommendation) error {
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecommendTable(cmd *cobra.Command, recs []recommendation) error {
	if len(recs) == 0 {
		cmd.Println("No recommendations found.")
		return nil
	}

	cmd.Println("Recommendations:")
	cmd.Println()
	for i, rec := range recs {
		name := rec.Name
		if name == "" {
			name = fmt.Sprintf("record %d", rec.RecordID)
		}

		cmd.Printf("  %s %s %s\n",
			rankStyle.Render(fmt.Sprintf("[%d]", i+1)),
			recipeNameStyle.Render(name),
			mutedStyle.Render(fmt.Sprintf("(%.3f)", rec.Distance)))
		if len(rec.Ingredients) > 0 {
			cmd.Printf("      %s\n", strings.Join(rec.Ingredients, ", "))
		}
		if rec.URL != "" {
			cmd.Printf("      %s\n", mutedStyle.Render(rec.URL))
		}
		cmd.Println()
	}

	return nil
}
