package memory

import (
	"context"
	"sync"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
// Useful for tests and ephemeral runs.
type CorpusStore struct {
	mu      sync.RWMutex
	records []domain.RecipeRecord
}

// NewCorpusStore creates a new in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{}
}

// SaveAll replaces the stored corpus with the given records.
func (s *CorpusStore) SaveAll(_ context.Context, records []domain.RecipeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]domain.RecipeRecord, len(records))
	copy(s.records, records)
	return nil
}

// LoadAll returns every stored record ordered by position id.
func (s *CorpusStore) LoadAll(_ context.Context) ([]domain.RecipeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RecipeRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Count returns the number of stored records.
func (s *CorpusStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close releases resources. A no-op for the in-memory store.
func (s *CorpusStore) Close() error {
	return nil
}
