package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/oneirolab/dreamvault/pkg/domain/interfaces"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS dreams (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	content     TEXT NOT NULL,
	occurred_on TEXT NOT NULL,
	clarity     INTEGER NOT NULL,
	emotion     TEXT NOT NULL,
	tags        TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	is_favorite INTEGER NOT NULL DEFAULT 0,
	is_lucid    INTEGER NOT NULL DEFAULT 0,
	related_ids TEXT NOT NULL,
	analysis    TEXT
);
CREATE INDEX IF NOT EXISTS idx_dreams_occurred_on ON dreams (occurred_on);
`

// SQLite is a repository backed by a local SQLite database
type SQLite struct {
	db     *sql.DB
	dreams *dreamRepository
}

var _ interfaces.Repository = &SQLite{}

// New opens (or creates) the database at path and bootstraps the schema
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create database directory", goerr.V("path", path))
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open database", goerr.V("path", path))
	}

	if err := enablePragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "failed to bootstrap schema")
	}

	return &SQLite{
		db:     db,
		dreams: &dreamRepository{db: db},
	}, nil
}

func enablePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return goerr.Wrap(err, "failed to set pragma", goerr.V("pragma", pragma))
		}
	}

	return nil
}

func (s *SQLite) Dreams() interfaces.DreamRepository {
	return s.dreams
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
