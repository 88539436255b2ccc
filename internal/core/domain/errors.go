package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidQuery indicates an empty or malformed ingredient list.
	// The caller recovers by re-prompting; the service keeps running.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrRecordNotFound indicates a record id outside the current corpus
	// snapshot. Usually a stale id from a previous model generation.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCorpusEmpty indicates the corpus has no valid records after
	// build-time filtering. Fatal at build, never at query time.
	ErrCorpusEmpty = errors.New("corpus empty")

	// ErrEmptyVocabulary indicates every corpus document was empty after
	// normalisation, leaving nothing to fit. Fatal at build.
	ErrEmptyVocabulary = errors.New("empty vocabulary")

	// ErrModelNotBuilt indicates a query arrived before a successful build.
	ErrModelNotBuilt = errors.New("model not built")

	// ErrInvalidRecord indicates a record with an empty name or an empty
	// normalised ingredient set. Such records are excluded at build time.
	ErrInvalidRecord = errors.New("invalid record")
)
