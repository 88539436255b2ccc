package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driving"
	"github.com/recipeml-labs/recipeml-cli/internal/logger"
)

// Ensure MatchingService implements the interface.
var _ driving.MatchingService = (*MatchingService)(nil)

// DefaultNeighbours is the number of recommendations returned per query.
const DefaultNeighbours = 6

// selfMatchEpsilon bounds the distance below which a hit is considered an
// exact match of the query.
const selfMatchEpsilon = 1e-9

// model is one immutable build of the vector space.
// All fields are read-only after construction.
type model struct {
	corpus     *domain.Corpus
	fitted     driven.FittedVectoriser
	index      driven.SimilarityIndex
	generation string
	builtAt    time.Time
}

// MatchingService recommends recipes by feature space matching.
//
// Build constructs a fresh model and swaps it in atomically; Recommend and
// Lookup read the active model without locking, so queries in flight during
// a rebuild finish against the snapshot they started with.
type MatchingService struct {
	store       driven.CorpusStore
	ingredients driven.IngredientNormaliser
	corpusText  driven.CorpusNormaliser
	vectoriser  driven.Vectoriser
	builder     driven.IndexBuilder
	watcher     driven.Watcher
	neighbours  int

	buildMu sync.Mutex
	active  atomic.Pointer[model]
}

// NewMatchingService creates a new matching service.
// A neighbours value <= 0 falls back to DefaultNeighbours.
func NewMatchingService(
	store driven.CorpusStore,
	ingredients driven.IngredientNormaliser,
	corpusText driven.CorpusNormaliser,
	vectoriser driven.Vectoriser,
	builder driven.IndexBuilder,
	neighbours int,
) *MatchingService {
	if neighbours <= 0 {
		neighbours = DefaultNeighbours
	}
	return &MatchingService{
		store:       store,
		ingredients: ingredients,
		corpusText:  corpusText,
		vectoriser:  vectoriser,
		builder:     builder,
		neighbours:  neighbours,
	}
}

// SetWatcher sets the corpus watcher used by Watch.
func (s *MatchingService) SetWatcher(w driven.Watcher) {
	s.watcher = w
}

// Build loads the corpus, fits the TF-IDF space, constructs the similarity
// index and atomically activates the new model. Concurrent Build calls are
// serialised; queries keep running against the previous model until the
// swap.
func (s *MatchingService) Build(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	logger.Section("Model Build")

	records, err := s.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	logger.Debug("Loaded %d records from store", len(records))

	corpus, err := domain.NewCorpus(records)
	if err != nil {
		return fmt.Errorf("freezing corpus: %w", err)
	}
	logger.Debug("Corpus frozen: %d valid records", corpus.Len())

	fitted, err := s.vectoriser.Fit(ctx, corpus.Texts())
	if err != nil {
		return fmt.Errorf("fitting vector space: %w", err)
	}
	logger.Debug("Vector space fitted: %d terms", fitted.Terms())

	vectors := make([]domain.SparseVector, corpus.Len())
	for i := range vectors {
		vectors[i] = fitted.DocVector(i)
	}
	index, err := s.builder.Build(ctx, vectors)
	if err != nil {
		return fmt.Errorf("building similarity index: %w", err)
	}

	m := &model{
		corpus:     corpus,
		fitted:     fitted,
		index:      index,
		generation: uuid.New().String(),
		builtAt:    time.Now(),
	}
	s.active.Store(m)

	logger.Info("Model %s active: %d records, %d terms", m.generation, corpus.Len(), fitted.Terms())
	return nil
}

// Recommend returns up to the configured number of matches for the given
// ingredients, ascending by cosine distance.
func (s *MatchingService) Recommend(_ context.Context, ingredients []string) ([]domain.Recommendation, error) {
	m := s.active.Load()
	if m == nil {
		return nil, domain.ErrModelNotBuilt
	}

	tokens := s.ingredients.Normalise(ingredients)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty ingredient list", domain.ErrInvalidQuery)
	}

	// Query text goes through the same lossy normalisation as the corpus
	// so both live in one feature space.
	text := s.corpusText.Normalise(strings.Join(tokens, " "))
	vec := m.fitted.Transform(text)
	logger.Debug("Query %q -> %d weighted terms", text, len(vec))

	// One extra neighbour covers the self-match case when the query text
	// reproduces a corpus document exactly.
	hits := m.index.Nearest(vec, s.neighbours+1)
	hits = dropSelfMatch(hits, m.corpus, text)
	if len(hits) > s.neighbours {
		hits = hits[:s.neighbours]
	}

	recs := make([]domain.Recommendation, len(hits))
	for i, h := range hits {
		recs[i] = domain.Recommendation{RecordID: h.RecordID, Distance: h.Distance}
	}
	return recs, nil
}

// dropSelfMatch removes a leading zero-distance hit whose corpus text is
// identical to the query, i.e. the query originated from the corpus itself.
func dropSelfMatch(hits []driven.Neighbour, corpus *domain.Corpus, queryText string) []driven.Neighbour {
	if len(hits) == 0 || hits[0].Distance > selfMatchEpsilon {
		return hits
	}
	record, err := corpus.Get(hits[0].RecordID)
	if err != nil || record.CorpusText != queryText {
		return hits
	}
	logger.Debug("Dropping self match: record %d", hits[0].RecordID)
	return hits[1:]
}

// Lookup retrieves a record from the active model's corpus snapshot.
func (s *MatchingService) Lookup(_ context.Context, id int) (*domain.RecipeRecord, error) {
	m := s.active.Load()
	if m == nil {
		return nil, domain.ErrModelNotBuilt
	}
	return m.corpus.Get(id)
}

// Info describes the active model.
func (s *MatchingService) Info() (*domain.ModelInfo, error) {
	m := s.active.Load()
	if m == nil {
		return nil, domain.ErrModelNotBuilt
	}
	return &domain.ModelInfo{
		Generation: m.generation,
		BuiltAt:    m.builtAt,
		Records:    m.corpus.Len(),
		Terms:      m.fitted.Terms(),
	}, nil
}

// Watch rebuilds the model whenever the watcher reports a corpus change.
// A failed rebuild keeps the previous model active; serving is never torn
// down by a bad refresh.
func (s *MatchingService) Watch(ctx context.Context) error {
	if s.watcher == nil {
		return fmt.Errorf("watch: no watcher configured")
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path, ok := <-s.watcher.Changes():
			if !ok {
				return nil
			}
			logger.Info("Corpus change detected: %s", path)
			if err := s.Build(ctx); err != nil {
				logger.Warn("Rebuild failed, keeping previous model: %v", err)
			}
		}
	}
}
