// Package db provides access to the MultiWordNet backing store, a SQLite
// database holding per-language record tables plus the shared "common"
// tables. The store is read-only for this module: population and compilation
// from the raw distribution are external concerns.
package db

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/lexgraph/mwn/errors"
)

// Store wraps a MultiWordNet SQLite database. All entity lookups in the
// module go through Select/SelectRow, which compose "<language>_<table>"
// names and report missing tables as an absent outcome rather than an error.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// Open opens the SQLite database at the specified path.
// If logger is provided, logs database operations; otherwise operates silently.
func Open(path string, logger *zap.SugaredLogger) (*Store, error) {
	if logger != nil {
		logger.Debugw("Opening wordnet database", "path", path)
	}
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	// Set busy timeout to 5 seconds
	if _, err := sqlDB.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "set busy timeout")
	}

	if logger != nil {
		logger.Infow("Wordnet database opened", "path", path)
	}

	return &Store{db: sqlDB, logger: logger}, nil
}

// New wraps an existing database handle. Used by tests and callers that
// manage the connection themselves.
func New(sqlDB *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{db: sqlDB, logger: logger}
}

// DB exposes the underlying handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
