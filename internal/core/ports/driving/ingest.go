package driving

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// IngestService turns a raw recipe dump into the persisted corpus.
type IngestService interface {
	// Ingest reads a RecipeNLG-shaped CSV dump, normalises and validates
	// each row, deduplicates by title and replaces the corpus store's
	// contents wholesale.
	Ingest(ctx context.Context, csvPath string) (*domain.IngestReport, error)
}
