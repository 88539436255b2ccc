package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/recipeml-labs/recipeml-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/recipeml-labs/recipeml-cli/internal/core/domain"
	"github.com/recipeml-labs/recipeml-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is the SQLite-backed corpus store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.recipeml/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".recipeml", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveAll replaces the stored corpus with the given records in one
// transaction.
func (s *Store) SaveAll(ctx context.Context, records []domain.RecipeRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM recipes"); err != nil {
		return fmt.Errorf("clearing corpus: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recipes (id, name, raw_ingredients, ingredients, instructions, source, url, corpus_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		rawIngredients, err := json.Marshal(r.RawIngredients)
		if err != nil {
			return fmt.Errorf("encoding raw ingredients for %q: %w", r.Name, err)
		}
		ingredients, err := json.Marshal(r.Ingredients)
		if err != nil {
			return fmt.Errorf("encoding ingredients for %q: %w", r.Name, err)
		}
		instructions, err := json.Marshal(r.Instructions)
		if err != nil {
			return fmt.Errorf("encoding instructions for %q: %w", r.Name, err)
		}

		_, err = stmt.ExecContext(ctx, r.ID, r.Name, string(rawIngredients),
			string(ingredients), string(instructions), r.Source, r.URL, r.CorpusText)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing corpus: %w", err)
	}
	return nil
}

// LoadAll returns every stored record ordered by position id.
func (s *Store) LoadAll(ctx context.Context) ([]domain.RecipeRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, raw_ingredients, ingredients, instructions, source, url, corpus_text
		FROM recipes ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying corpus: %w", err)
	}
	defer rows.Close()

	var records []domain.RecipeRecord
	for rows.Next() {
		var r domain.RecipeRecord
		var rawIngredients, ingredients, instructions string

		err := rows.Scan(&r.ID, &r.Name, &rawIngredients, &ingredients,
			&instructions, &r.Source, &r.URL, &r.CorpusText)
		if err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		if err := json.Unmarshal([]byte(rawIngredients), &r.RawIngredients); err != nil {
			return nil, fmt.Errorf("decoding raw ingredients for %q: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(ingredients), &r.Ingredients); err != nil {
			return nil, fmt.Errorf("decoding ingredients for %q: %w", r.Name, err)
		}
		if err := json.Unmarshal([]byte(instructions), &r.Instructions); err != nil {
			return nil, fmt.Errorf("decoding instructions for %q: %w", r.Name, err)
		}

		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating corpus: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting corpus: %w", err)
	}
	return count, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		version := migrationVersion(name)
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// migrationVersion extracts the numeric prefix of a migration file name.
func migrationVersion(name string) int {
	prefix, _, _ := strings.Cut(name, "_")
	var version int
	fmt.Sscanf(prefix, "%d", &version) //nolint:errcheck
	return version
}
