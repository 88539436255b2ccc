package domain

// RecipeRecord is a single corpus entry.
// It is the canonical representation after ingest normalisation.
type RecipeRecord struct {
	// ID is the position-based index into the frozen corpus.
	// Stable for the lifetime of one model generation, not across rebuilds.
	ID int

	// Name is the display title.
	Name string

	// RawIngredients is the ingredient list as authored, preserved for display.
	RawIngredients []string

	// Ingredients is the cleaned ingredient token set in first-seen order.
	// Used only for corpus construction, never mutated after build.
	Ingredients []string

	// Instructions is the ordered list of preparation steps.
	Instructions []string

	// Source is an opaque provenance label (e.g. "Gathered", "Recipes1M").
	Source string

	// URL is the source link. May be empty.
	URL string

	// CorpusText is the normalised free text the vector space is fitted on:
	// ingredient tokens plus instructions, lowercased, punctuation-stripped,
	// stopword-free and stemmed.
	CorpusText string
}

// Validate reports whether the record may enter the corpus.
// A record needs a non-empty name and at least one normalised ingredient.
func (r *RecipeRecord) Validate() error {
	if r.Name == "" || len(r.Ingredients) == 0 {
		return ErrInvalidRecord
	}
	return nil
}
