package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driving"
	"github.com/recipeml-labs/recipeml-cli/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// Required columns of a RecipeNLG-shaped dump.
// "NER" holds the extracted ingredient entities; "ingredients" the raw
// authored lines. Both are JSON-style string arrays.
var requiredColumns = []string{"title", "ingredients", "directions", "link", "source", "NER"}

// IngestService turns a raw recipe CSV dump into the persisted corpus.
type IngestService struct {
	store       driven.CorpusStore
	ingredients driven.IngredientNormaliser
	corpusText  driven.CorpusNormaliser
}

// NewIngestService creates a new ingest service.
func NewIngestService(
	store driven.CorpusStore,
	ingredients driven.IngredientNormaliser,
	corpusText driven.CorpusNormaliser,
) *IngestService {
	return &IngestService{
		store:       store,
		ingredients: ingredients,
		corpusText:  corpusText,
	}
}

// Ingest reads the CSV dump at csvPath, normalises and validates each row,
// deduplicates by title (keeping the first occurrence) and replaces the
// corpus store's contents wholesale.
//
// Rows with unparseable list fields, an empty title or an empty normalised
// ingredient set are dropped and counted in the report. An ingest that
// keeps zero rows fails with domain.ErrCorpusEmpty and leaves the store
// untouched.
func (s *IngestService) Ingest(ctx context.Context, csvPath string) (*domain.IngestReport, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("opening dump: %w", err)
	}
	defer f.Close()

	logger.Section("Corpus Ingest")
	logger.Debug("Reading %s", csvPath)

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	columns, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	report := &domain.IngestReport{}
	seen := make(map[string]struct{})
	var records []domain.RecipeRecord

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		report.Total++

		record, ok := s.buildRecord(row, columns)
		if !ok {
			report.Invalid++
			continue
		}

		if _, dup := seen[record.Name]; dup {
			report.Duplicates++
			continue
		}
		seen[record.Name] = struct{}{}

		record.ID = len(records)
		records = append(records, record)
	}

	report.Kept = len(records)
	logger.Info("Ingest read %d rows: kept %d, %d duplicates, %d invalid",
		report.Total, report.Kept, report.Duplicates, report.Invalid)

	if len(records) == 0 {
		return report, fmt.Errorf("%w: no valid rows in %s", domain.ErrCorpusEmpty, csvPath)
	}

	if err := s.store.SaveAll(ctx, records); err != nil {
		return report, fmt.Errorf("saving corpus: %w", err)
	}
	return report, nil
}

// buildRecord converts one CSV row into a validated RecipeRecord.
func (s *IngestService) buildRecord(row []string, columns map[string]int) (domain.RecipeRecord, bool) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	rawIngredients, err := parseList(field("ingredients"))
	if err != nil {
		return domain.RecipeRecord{}, false
	}
	entities, err := parseList(field("NER"))
	if err != nil {
		return domain.RecipeRecord{}, false
	}
	directions, err := parseList(field("directions"))
	if err != nil {
		return domain.RecipeRecord{}, false
	}

	record := domain.RecipeRecord{
		Name:           strings.TrimSpace(field("title")),
		RawIngredients: rawIngredients,
		Ingredients:    s.ingredients.Normalise(entities),
		Instructions:   directions,
		Source:         field("source"),
		URL:            field("link"),
	}
	if record.Validate() != nil {
		return domain.RecipeRecord{}, false
	}

	// Corpus text: normalised ingredient tokens plus instructions, run
	// through the lossy vectorisation path.
	raw := strings.Join(record.Ingredients, " ") + " " + strings.Join(directions, " ")
	record.CorpusText = s.corpusText.Normalise(raw)

	return record, true
}

// columnIndex maps required column names to their positions.
func columnIndex(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("dump missing column %q", name)
		}
	}
	return columns, nil
}

// parseList decodes a JSON-style string array field.
func parseList(field string) ([]string, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal([]byte(field), &items); err != nil {
		return nil, err
	}
	return items, nil
}
