package domain

import "time"

// Recommendation is a ranked match for an ingredient query.
type Recommendation struct {
	// RecordID identifies the matched recipe within the current
	// model generation's corpus snapshot.
	RecordID int

	// Distance is the cosine distance to the query (0 = identical).
	Distance float64
}

// ModelInfo describes the active vector space model.
type ModelInfo struct {
	// Generation uniquely identifies one build of the model.
	// Callers can use it to detect stale record ids after a swap.
	Generation string

	// BuiltAt is when the model was built.
	BuiltAt time.Time

	// Records is the size of the frozen corpus.
	Records int

	// Terms is the vocabulary size of the fitted vector space.
	Terms int
}

// IngestReport summarises one ingest run.
type IngestReport struct {
	// Total is the number of rows read from the dump.
	Total int

	// Kept is the number of records written to the corpus store.
	Kept int

	// Duplicates is the number of rows dropped as duplicate titles.
	Duplicates int

	// Invalid is the number of rows dropped as malformed or failing
	// the record invariant (empty name or ingredient set).
	Invalid int
}
