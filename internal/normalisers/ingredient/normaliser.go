package ingredient

import (
	"regexp"
	"strings"

	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.IngredientNormaliser = (*Normaliser)(nil)

// punctuation matches every character that is neither a word character
// nor whitespace.
var punctuation = regexp.MustCompile(`[^\w\s]`)

// Normaliser cleans ingredient tokens.
type Normaliser struct{}

// New creates a new ingredient normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise lowercases, trims and strips punctuation from each token, then
// removes duplicates preserving first-seen order. Tokens that become empty
// are dropped. Empty input yields an empty slice.
func (n *Normaliser) Normalise(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))

	for _, tok := range tokens {
		tok = strings.ToLower(strings.TrimSpace(tok))
		tok = punctuation.ReplaceAllString(tok, "")
		tok = strings.Join(strings.Fields(tok), " ")
		if tok == "" {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}

	return out
}
