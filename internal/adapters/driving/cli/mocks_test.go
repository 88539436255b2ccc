package cli

import (
	"context"
	"errors"
	"time"

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
	if m.err != nil {
		return nil, m.err
	}
	if m.info == nil {
		return nil, domain.ErrModelNotBuilt
	}
	return m.info, nil
}

func (m *mockMatchingService) Watch(_ context.Context) error {
	return m.err
}

// mockIngestService is a mock implementation of driving.IngestService.
type mockIngestService struct {
	report *domain.IngestReport
	err    error
}

func (m *mockIngestService) Ingest(_ context.Context, _ string) (*domain.IngestReport, error) {
	return m.report, m.err
}

// mockMatchingServiceError always fails.
type mockMatchingServiceError struct {
	mockMatchingService
}

func (m *mockMatchingServiceError) Recommend(_ context.Context, _ []string) ([]domain.Recommendation, error) {
	return nil, errors.New("matching failed")
}

// setupTestServices wires mock services and returns a cleanup function
// restoring the previous wiring.
func setupTestServices() func() {
	oldMatching := matchingService
	oldIngest := ingestService

	matchingService = &mockMatchingService{
		recommendations: []domain.Recommendation{
			{RecordID: 0, Distance: 0.1},
			{RecordID: 1, Distance: 0.4},
		},
		records: map[int]*domain.RecipeRecord{
			0: {
				ID:             0,
				Name:           "Tomato Soup",
				RawIngredients: []string{"2 tomatoes", "1 onion"},
				Ingredients:    []string{"tomato", "onion"},
				Instructions:   []string{"Chop.", "Simmer."},
				URL:            "https://example.com/0",
			},
			1: {
				ID:          1,
				Name:        "Fried Rice",
				Ingredients: []string{"rice", "egg"},
			},
		},
		info: &domain.ModelInfo{
			Generation: "gen-test",
			BuiltAt:    time.Now(),
			Records:    2,
			Terms:      4,
		},
	}
	ingestService = &mockIngestService{
		report: &domain.IngestReport{Total: 10, Kept: 7, Duplicates: 2, Invalid: 1},
	}

	return func() {
		matchingService = oldMatching
		ingestService = oldIngest
	}
}
