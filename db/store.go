package db

import (
	"database/sql"
	"fmt"

	"github.com/lexgraph/mwn/errors"
)

// TableName composes the physical table name for a (language, table) pair,
// e.g. ("latin", "morpho") -> "latin_morpho".
func TableName(language, table string) string {
	return language + "_" + table
}

// Select queries "<language>_<table>" for the given columns. The where
// clause, when non-empty, uses ? placeholders bound to args.
//
// A missing table is not an error: Select returns (nil, nil) and the caller
// treats the corresponding data as empty. Malformed queries and storage
// faults are surfaced unchanged, wrapped with table context only.
func (s *Store) Select(language, table, columns, where string, args ...interface{}) (*sql.Rows, error) {
	name := TableName(language, table)
	query := fmt.Sprintf("SELECT %s FROM %s", columns, name)
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		if IsMissingTable(err) {
			if s.logger != nil {
				s.logger.Debugw("Table absent, treating as empty", "table", name)
			}
			return nil, nil
		}
		return nil, errors.Wrapf(err, "query %s", name)
	}
	return rows, nil
}

// SelectRow is like Select for queries expecting at most one row. The
// returned row is nil when the table is absent.
func (s *Store) SelectRow(language, table, columns, where string, args ...interface{}) (*sql.Row, error) {
	name := TableName(language, table)
	query := fmt.Sprintf("SELECT %s FROM %s", columns, name)
	if where != "" {
		query += " WHERE " + where
	}

	// database/sql defers errors on QueryRow to Scan, so probe for the
	// table first to keep the absent case distinct from scan errors.
	present, err := s.HasTable(language, table)
	if err != nil {
		return nil, err
	}
	if !present {
		if s.logger != nil {
			s.logger.Debugw("Table absent, treating as empty", "table", name)
		}
		return nil, nil
	}
	return s.db.QueryRow(query, args...), nil
}

// HasTable reports whether "<language>_<table>" exists in the store.
func (s *Store) HasTable(language, table string) (bool, error) {
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
		TableName(language, table),
	).Scan(&name)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "probe table")
	}
	return true, nil
}
