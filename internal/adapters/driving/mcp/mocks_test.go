package mcp

import (
	"context"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
)

// mockMatchingService is a mock implementation of driving.MatchingService.
type mockMatchingService struct {
	recommendations []domain.Recommendation
	records         map[int]*domain.RecipeRecord
	info            *domain.ModelInfo
	err             error
}

func (m *mockMatchingService) Build(_ context.Context) error {
	return m.err
}

func (m *mockMatchingService) Recommend(_ context.Context, _ []string) ([]domain.Recommendation, error) {
	return m.recommendations, m.err
}

func (m *mockMatchingService) Lookup(_ context.Context, id int) (*domain.RecipeRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return record, nil
}

func (m *mockMatchingService) Info() (*domain.ModelInfo, error) {
	if m.info == nil {
		return nil, domain.ErrModelNotBuilt
	}
	return m.info, m.err
}

func (m *mockMatchingService) Watch(_ context.Context) error {
	return m.err
}
