package driven

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// Vectoriser fits a TF-IDF weighting over a document set.
type Vectoriser interface {
	// Fit learns the vocabulary and IDF weights from the given documents.
	// Fitting is deterministic: the same documents always produce the same
	// model. Returns domain.ErrCorpusEmpty for an empty document set and
	// domain.ErrEmptyVocabulary when no document yields a single term.
	Fit(ctx context.Context, docs []string) (FittedVectoriser, error)
}

// FittedVectoriser is an immutable fitted vector space model.
// It is safe for concurrent use.
type FittedVectoriser interface {
	// Transform projects a text into the fitted space using the learned
	// vocabulary and IDF weights. Terms unseen during fit are ignored;
	// a text with no known terms yields an empty vector.
	Transform(text string) domain.SparseVector

	// DocVector returns the fitted vector of the i-th fit document.
	DocVector(i int) domain.SparseVector

	// Docs returns the number of fit documents.
	Docs() int

	// Terms returns the vocabulary size.
	Terms() int
}
