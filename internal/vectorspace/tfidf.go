package vectorspace

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
	"github.com/recipeml-labs/recipeml-cli/internal/normalisers/corpustext"
)

// Ensure the implementations satisfy the ports.
var (
	_ driven.Vectoriser       = (*TFIDF)(nil)
	_ driven.FittedVectoriser = (*Model)(nil)
)

// TFIDF fits term-frequency/inverse-document-frequency models.
type TFIDF struct{}

// New creates a new TF-IDF vectoriser.
func New() *TFIDF {
	return &TFIDF{}
}

// Model is a fitted TF-IDF vector space.
// Immutable after Fit and safe for concurrent use.
type Model struct {
	vocabulary map[string]int
	idf        []float64
	docs       []domain.SparseVector
}

// Fit learns the vocabulary and IDF weights from the given documents and
// returns the fitted model with every document projected and L2-normalised.
//
// Term weight follows the classic scheme: count(term, doc) * log(N / df(term)).
// English stopwords are excluded from the vocabulary.
func (t *TFIDF) Fit(ctx context.Context, docs []string) (driven.FittedVectoriser, error) {
	if len(docs) == 0 {
		return nil, domain.ErrCorpusEmpty
	}

	// Document frequency per term
	df := make(map[string]int)
	tokenised := make([][]string, len(docs))
	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tokens := tokenise(doc)
		tokenised[i] = tokens

		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	if len(df) == 0 {
		return nil, domain.ErrEmptyVocabulary
	}

	// Lexicographic vocabulary order keeps fitting deterministic.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m := &Model{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for i, term := range terms {
		m.vocabulary[term] = i
		m.idf[i] = math.Log(n / float64(df[term]))
	}

	m.docs = make([]domain.SparseVector, len(docs))
	for i, tokens := range tokenised {
		m.docs[i] = m.weigh(tokens)
	}

	return m, nil
}

// Transform projects a text into the fitted space.
// Terms unseen during fit are ignored; a text with no known terms yields
// an empty vector.
func (m *Model) Transform(text string) domain.SparseVector {
	return m.weigh(tokenise(text))
}

// DocVector returns the fitted vector of the i-th fit document.
func (m *Model) DocVector(i int) domain.SparseVector {
	return m.docs[i]
}

// Docs returns the number of fit documents.
func (m *Model) Docs() int {
	return len(m.docs)
}

// Terms returns the vocabulary size.
func (m *Model) Terms() int {
	return len(m.idf)
}

// weigh builds the L2-normalised TF-IDF vector for a token sequence.
func (m *Model) weigh(tokens []string) domain.SparseVector {
	counts := make(map[int]int)
	for _, tok := range tokens {
		if idx, ok := m.vocabulary[tok]; ok {
			counts[idx]++
		}
	}

	vec := make(domain.SparseVector, len(counts))
	for idx, count := range counts {
		w := float64(count) * m.idf[idx]
		if w != 0 {
			vec[idx] = w
		}
	}
	vec.Normalise()
	return vec
}

// tokenise splits normalised text into terms, dropping stopwords.
// Input is expected to be corpustext-normalised already; the stopword
// filter here keeps the vocabulary clean even for raw callers.
func tokenise(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := fields[:0]
	for _, f := range fields {
		if corpustext.IsStopword(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}
