package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zeebo/xxh3"

	"resprune/internal/domain"
	"resprune/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const (
	schemaVersion = "1"
	databaseName  = "refs.db"
)

// Index implements ports.ReferenceIndex using SQLite
type Index struct {
	db     *sql.DB
	dir    string
	dbPath string
	stale  bool
}

// Ensure Index implements ReferenceIndex
var _ ports.ReferenceIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index stored under dir
func (idx *Index) Open(dir string) error {
	// Expand ~ in path
	if len(dir) > 0 && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	idx.dir = dir
	idx.dbPath = filepath.Join(dir, databaseName)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+idx.dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps writer sessions and readers serialized
	db.SetMaxOpenConns(1)
	idx.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			path TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS tokens (
			doc_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			token TEXT NOT NULL,
			PRIMARY KEY (doc_id, token)
		) WITHOUT ROWID;
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_tokens_token ON tokens(token);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	var version string
	err = db.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if err := idx.updateMeta(); err != nil {
			db.Close()
			return fmt.Errorf("failed to update metadata: %w", err)
		}
	case err != nil:
		db.Close()
		return fmt.Errorf("failed to read metadata: %w", err)
	default:
		idx.stale = version != schemaVersion
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		err := idx.db.Close()
		idx.db = nil
		return err
	}
	return nil
}

// Dir returns the index directory
func (idx *Index) Dir() string {
	return idx.dir
}

// NeedsFullRebuild returns true if the index was written by another schema version
func (idx *Index) NeedsFullRebuild() bool {
	return idx.stale
}

// Reset drops every document and stamps the current schema version
func (idx *Index) Reset() error {
	_, err := idx.db.Exec(`
		DELETE FROM tokens;
		DELETE FROM documents;
	`)
	if err != nil {
		return err
	}
	if err := idx.updateMeta(); err != nil {
		return err
	}
	idx.stale = false
	return nil
}

// updateMeta records the schema version
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Stats returns document and token counts
func (idx *Index) Stats() (*domain.IndexStats, error) {
	var stats domain.IndexStats
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&stats.Documents); err != nil {
		return nil, err
	}
	if err := idx.db.QueryRow(`SELECT COUNT(*) FROM tokens`).Scan(&stats.Tokens); err != nil {
		return nil, err
	}
	return &stats, nil
}

// BeginTx starts a new writer session
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

// documentID derives the document key from its absolute path
func documentID(path string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(path))
}
