package domain

// Corpus is the frozen, position-indexed recipe collection.
// It is built once per model generation and never partially mutated;
// a refresh replaces it wholesale.
type Corpus struct {
	records []RecipeRecord
}

// NewCorpus validates, deduplicates and freezes a set of records.
//
// Records failing Validate are dropped, duplicates (by name, keeping the
// first occurrence) are removed, and the survivors are re-indexed by
// position so ids are dense. Returns ErrCorpusEmpty if nothing survives.
func NewCorpus(records []RecipeRecord) (*Corpus, error) {
	seen := make(map[string]struct{}, len(records))
	kept := make([]RecipeRecord, 0, len(records))

	for i := range records {
		r := records[i]
		if r.Validate() != nil {
			continue
		}
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		r.ID = len(kept)
		kept = append(kept, r)
	}

	if len(kept) == 0 {
		return nil, ErrCorpusEmpty
	}
	return &Corpus{records: kept}, nil
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	return len(c.records)
}

// Get retrieves a record by position id.
// Returns ErrRecordNotFound for an out-of-range id.
func (c *Corpus) Get(id int) (*RecipeRecord, error) {
	if id < 0 || id >= len(c.records) {
		return nil, ErrRecordNotFound
	}
	return &c.records[id], nil
}

// Records returns the underlying slice. Callers must treat it as read-only.
func (c *Corpus) Records() []RecipeRecord {
	return c.records
}

// Texts returns the corpus text of every record, ordered by id.
// This is the document set the vectoriser is fitted on.
func (c *Corpus) Texts() []string {
	texts := make([]string, len(c.records))
	for i := range c.records {
		texts[i] = c.records[i].CorpusText
	}
	return texts
}
