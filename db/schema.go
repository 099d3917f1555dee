package db

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lexgraph/mwn/errors"
)

// DDL templates for the per-language record tables. %s is the language code.
// Multi-valued columns (word, phrase, hypers, hypons, principal_parts,
// irregular_forms, alternative_forms, per-pos synset lists) hold
// whitespace-separated tokens within a single field.
var languageTableDDL = map[string]string{
	"synset": `CREATE TABLE IF NOT EXISTS %s_synset (
		id TEXT PRIMARY KEY,
		word TEXT,
		phrase TEXT,
		gloss TEXT
	)`,
	"lemma": `CREATE TABLE IF NOT EXISTS %s_lemma (
		lemma TEXT,
		pos TEXT
	)`,
	"index": `CREATE TABLE IF NOT EXISTS %s_index (
		lemma TEXT PRIMARY KEY,
		id_n TEXT,
		id_v TEXT,
		id_a TEXT,
		id_r TEXT
	)`,
	"morpho": `CREATE TABLE IF NOT EXISTS %s_morpho (
		id TEXT,
		lemma TEXT,
		pos TEXT,
		principal_parts TEXT,
		irregular_forms TEXT,
		alternative_forms TEXT,
		pronunciation TEXT,
		miscellanea TEXT
	)`,
	"relation": `CREATE TABLE IF NOT EXISTS %s_relation (
		type TEXT,
		id_source TEXT,
		id_target TEXT,
		w_source TEXT,
		w_target TEXT,
		status TEXT
	)`,
	"synonyms": `CREATE TABLE IF NOT EXISTS %s_synonyms (
		pos TEXT,
		syn TEXT,
		lemma TEXT
	)`,
	"semfield": `CREATE TABLE IF NOT EXISTS %s_semfield (
		english TEXT,
		synset TEXT
	)`,
}

// Hebrew carries extra script columns in its morpho table.
const hebrewMorphoDDL = `CREATE TABLE IF NOT EXISTS hebrew_morpho (
	id TEXT,
	lemma TEXT,
	pos TEXT,
	principal_parts TEXT,
	irregular_forms TEXT,
	alternative_forms TEXT,
	pronunciation TEXT,
	undotted TEXT,
	dotted_without_dots TEXT,
	variants TEXT,
	translit_dotted TEXT,
	translit_undotted TEXT,
	miscellanea TEXT
)`

var commonTableDDL = []string{
	`CREATE TABLE IF NOT EXISTS common_relation (
		type TEXT,
		id_source TEXT,
		id_target TEXT,
		w_source TEXT,
		w_target TEXT,
		status TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS common_semfield (
		english TEXT,
		synset TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS common_semfield_hierarchy (
		code TEXT,
		english TEXT,
		hypers TEXT,
		hypons TEXT,
		normal TEXT
	)`,
}

// EnsureLanguage creates the record tables for a language. An existing
// distribution normally ships these pre-populated; this is used by tests and
// by `mwn db init` to prepare an empty store.
func (s *Store) EnsureLanguage(language string, tables []string, logger *zap.SugaredLogger) error {
	for _, table := range tables {
		ddl, ok := languageTableDDL[table]
		if !ok {
			return errors.Newf("unknown table kind %q", table)
		}
		stmt := fmt.Sprintf(ddl, language)
		if table == "morpho" && language == "hebrew" {
			stmt = hebrewMorphoDDL
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrapf(err, "create %s", TableName(language, table))
		}
		if logger != nil {
			logger.Debugw("Ensured table", "table", TableName(language, table))
		}
	}
	return nil
}

// EnsureCommon creates the shared reference-space tables.
func (s *Store) EnsureCommon(logger *zap.SugaredLogger) error {
	for _, stmt := range commonTableDDL {
		if _, err := s.db.Exec(stmt); err != nil {
			return errors.Wrap(err, "create common tables")
		}
	}
	if logger != nil {
		logger.Debugw("Ensured common tables")
	}
	return nil
}
