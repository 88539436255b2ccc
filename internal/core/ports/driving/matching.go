package driving

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// MatchingService recommends recipes for ingredient queries.
//
// The service is read-mostly: Build constructs an immutable model and swaps
// it in atomically; Recommend and Lookup run lock-free against the active
// model, so in-flight queries are never disturbed by a rebuild.
type MatchingService interface {
	// Build loads the corpus, fits the vector space, constructs the
	// similarity index and atomically activates the new model.
	// Returns domain.ErrCorpusEmpty or domain.ErrEmptyVocabulary when the
	// stored corpus cannot produce a usable model.
	Build(ctx context.Context) error

	// Recommend returns up to the configured number of matches for the
	// given ingredients, closest first. Returns domain.ErrInvalidQuery for
	// an empty or blank ingredient list and domain.ErrModelNotBuilt before
	// the first successful Build.
	Recommend(ctx context.Context, ingredients []string) ([]domain.Recommendation, error)

	// Lookup retrieves a record from the active model's corpus snapshot.
	// Returns domain.ErrRecordNotFound for an id outside the snapshot.
	Lookup(ctx context.Context, id int) (*domain.RecipeRecord, error)

	// Info describes the active model.
	// Returns domain.ErrModelNotBuilt before the first successful Build.
	Info() (*domain.ModelInfo, error)

	// Watch rebuilds the model whenever the watcher reports a corpus
	// change. It blocks until the context is cancelled or the watcher
	// closes. A failed rebuild is logged and the old model stays active.
	Watch(ctx context.Context) error
}
