package driven

// IngredientNormaliser cleans user- or corpus-supplied ingredient tokens.
// The same normaliser runs at ingest and at query time so both sides of a
// match live in the same feature space.
type IngredientNormaliser interface {
	// Normalise lowercases, trims, strips punctuation and deduplicates
	// tokens, preserving first-seen order. Empty input yields an empty
	// slice, never an error.
	Normalise(tokens []string) []string
}

// CorpusNormaliser normalises free text for vectorisation.
// This path is lossy: it removes stopwords and stems terms so
// that morphological variants ("cooking", "cooked") share vocabulary.
type CorpusNormaliser interface {
	// Normalise lowercases, strips punctuation, collapses whitespace,
	// removes stopwords and stems the remaining terms.
	Normalise(text string) string
}
