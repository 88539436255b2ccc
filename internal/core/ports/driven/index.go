package driven

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// IndexBuilder constructs a similarity index over fitted document vectors.
// The distance metric is fixed to cosine.
type IndexBuilder interface {
	// Build indexes the given unit-length vectors. The slice position of
	// each vector is its record id.
	Build(ctx context.Context, vectors []domain.SparseVector) (SimilarityIndex, error)
}

// SimilarityIndex answers nearest-neighbour queries.
// Implementations are immutable after Build and safe for concurrent use.
type SimilarityIndex interface {
	// Nearest returns the k closest records to the query vector, ascending
	// by cosine distance. Ties are broken by ascending record id. If the
	// index holds fewer than k vectors, all of them are returned.
	Nearest(query domain.SparseVector, k int) []Neighbour
}

// Neighbour is a single nearest-neighbour hit.
type Neighbour struct {
	// RecordID is the matched record's position id.
	RecordID int

	// Distance is the cosine distance to the query (0 = identical).
	Distance float64
}
