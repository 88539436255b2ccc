package similarity

import (
	"context"
	"sort"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
)

// Ensure the implementations satisfy the ports.
var (
	_ driven.IndexBuilder    = (*Builder)(nil)
	_ driven.SimilarityIndex = (*Index)(nil)
)

// Builder constructs cosine indexes.
type Builder struct{}

// NewBuilder creates a new index builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// posting records one vector's weight for a term.
type posting struct {
	recordID int
	weight   float64
}

// Index is an inverted-postings cosine index.
// Immutable after Build and safe for concurrent use.
type Index struct {
	postings map[int][]posting
	size     int
}

// Build indexes the given unit-length vectors. The slice position of each
// vector is its record id.
func (b *Builder) Build(ctx context.Context, vectors []domain.SparseVector) (driven.SimilarityIndex, error) {
	idx := &Index{
		postings: make(map[int][]posting),
		size:     len(vectors),
	}

	for id, vec := range vectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for term, weight := range vec {
			idx.postings[term] = append(idx.postings[term], posting{recordID: id, weight: weight})
		}
	}

	// Postings ordered by record id for deterministic accumulation.
	for term := range idx.postings {
		list := idx.postings[term]
		sort.Slice(list, func(i, j int) bool { return list[i].recordID < list[j].recordID })
	}

	return idx, nil
}

// Nearest returns the k closest records to the query vector, ascending by
// cosine distance, ties broken by ascending record id. Records sharing no
// term with the query sit at distance 1 and fill remaining slots in id
// order. If the index holds fewer than k vectors, all are returned.
func (idx *Index) Nearest(query domain.SparseVector, k int) []driven.Neighbour {
	if k <= 0 || idx.size == 0 {
		return nil
	}
	if k > idx.size {
		k = idx.size
	}

	// Accumulate dot products through the postings of the query's terms.
	scores := make(map[int]float64)
	for term, qw := range query {
		for _, p := range idx.postings[term] {
			scores[p.recordID] += qw * p.weight
		}
	}

	scored := make([]driven.Neighbour, 0, len(scores))
	for id, sim := range scores {
		scored = append(scored, driven.Neighbour{RecordID: id, Distance: 1 - sim})
	}
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Distance != scored[j].Distance {
			return scored[i].Distance < scored[j].Distance
		}
		return scored[i].RecordID < scored[j].RecordID
	})

	if len(scored) >= k {
		return scored[:k]
	}

	// Fill remaining slots with unscored records at distance 1.
	result := scored
	for id := 0; id < idx.size && len(result) < k; id++ {
		if _, ok := scores[id]; ok {
			continue
		}
		result = append(result, driven.Neighbour{RecordID: id, Distance: 1})
	}
	return result
}

// Size returns the number of indexed vectors.
func (idx *Index) Size() int {
	return idx.size
}
