package corpustext

import (
	"regexp"
	"strings"

	"github.com/kljensen/snowball"

	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.CorpusNormaliser = (*Normaliser)(nil)

// punctuation matches every character that is neither a word character
// nor whitespace.
var punctuation = regexp.MustCompile(`[^\w\s]`)

// Normaliser prepares free text for vectorisation.
// The transformation is lossy: stopwords are removed and the remaining
// terms are stemmed, so "cooking", "cooked" and "cooks" all become "cook".
type Normaliser struct{}

// New creates a new corpus text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise lowercases the text, strips punctuation, collapses whitespace,
// removes English stopwords and stems each remaining term.
// Empty or all-stopword input yields an empty string.
func (n *Normaliser) Normalise(text string) string {
	text = strings.ToLower(text)
	text = punctuation.ReplaceAllString(text, "")

	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, term := range fields {
		if IsStopword(term) {
			continue
		}
		stem, err := snowball.Stem(term, "english", false)
		if err != nil || stem == "" {
			stem = term
		}
		out = append(out, stem)
	}

	return strings.Join(out, " ")
}
