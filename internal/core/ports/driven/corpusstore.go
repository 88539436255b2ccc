package driven

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// CorpusStore persists recipe records.
// The corpus is replaced wholesale, never partially mutated.
type CorpusStore interface {
	// SaveAll replaces the stored corpus with the given records.
	SaveAll(ctx context.Context, records []domain.RecipeRecord) error

	// LoadAll returns every stored record ordered by position id.
	LoadAll(ctx context.Context) ([]domain.RecipeRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
