package wordnet

import (
	"database/sql"
	"strings"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
)

// Synset represents one sense, shared by the lemmas that express it.
// Instances are immutable apart from lazily populated caches: each cache
// slot is filled at most meaningfully once, on first access, and reused for
// the instance's lifetime.
type Synset struct {
	store    *db.Store
	id       string
	language Language

	relations       []*Relation
	relationsLoaded bool
	gloss           string
	glossLoaded     bool
	lemmas          []*Lemma
	lemmasLoaded    bool
	semfields       []*Semfield
	semfieldsLoaded bool
}

// LookupSynset resolves a synset id through three-tier fallback: the store
// of the id's origin language first (the authoritative source), then the
// requested language's store, then the reference language's store. A synset
// minted in one language's data set may be referenced from another
// language's relations, so absence from the requested store alone proves
// nothing.
func LookupSynset(store *db.Store, id string, language Language) (*Synset, error) {
	origin, err := OriginLanguage(id)
	if err != nil {
		return nil, err
	}

	for _, lang := range fallbackOrder(origin, language) {
		row, err := store.SelectRow(string(lang), "synset", "id", "id=?", id)
		if err != nil {
			return nil, err
		}
		if row == nil {
			continue
		}
		var got string
		err = row.Scan(&got)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "lookup synset %q in %s", id, lang)
		}
		return &Synset{store: store, id: id, language: language}, nil
	}
	return nil, errors.NewNotFound("synset %q", id)
}

// fallbackOrder yields the store consultation order for a synset lookup,
// with duplicates removed.
func fallbackOrder(origin, requested Language) []Language {
	order := make([]Language, 0, 3)
	for _, lang := range []Language{origin, requested, English} {
		seen := false
		for _, have := range order {
			if have == lang {
				seen = true
				break
			}
		}
		if !seen {
			order = append(order, lang)
		}
	}
	return order
}

// ID returns the synset identifier, "<pos>#<offset>".
func (s *Synset) ID() string { return s.id }

// POS returns the part-of-speech tag embedded in the id.
func (s *Synset) POS() string { return string(s.id[0]) }

// Offset returns the offset portion of the id.
func (s *Synset) Offset() string { return s.id[2:] }

// Language returns the wordnet view the synset was fetched through.
func (s *Synset) Language() Language { return s.language }

// OriginLanguage returns the language the synset was minted in.
func (s *Synset) OriginLanguage() (Language, error) {
	return OriginLanguage(s.id)
}

// Relations returns all outgoing edges: reference-language-wide edges from
// the common space plus this language's own. Populated on first call.
func (s *Synset) Relations() ([]*Relation, error) {
	if s.relationsLoaded {
		return s.relations, nil
	}

	var relations []*Relation
	for _, lang := range []Language{Common, s.language} {
		rows, err := s.store.Select(string(lang), "relation", relationColumns, "id_source=?", s.id)
		if err != nil {
			return nil, err
		}
		batch, err := scanRelations(s.store, lang, rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, batch...)
	}

	s.relations = relations
	s.relationsLoaded = true
	return s.relations, nil
}

// RelationsOfType returns the outgoing edges of one type. Requesting a type
// the synset's part of speech does not define fails with a domain error
// rather than returning an empty result, since that signals caller misuse.
func (s *Synset) RelationsOfType(typ string) ([]*Relation, error) {
	if _, err := RelationTypeName(s.POS(), typ); err != nil {
		return nil, err
	}
	relations, err := s.Relations()
	if err != nil {
		return nil, err
	}
	var matched []*Relation
	for _, r := range relations {
		if r.Type() == typ {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// RelationTo returns the type of the first edge from this synset to target,
// or "" when no direct edge exists.
func (s *Synset) RelationTo(target *Synset) (string, error) {
	relations, err := s.Relations()
	if err != nil {
		return "", err
	}
	for _, r := range relations {
		if r.TargetID() == target.ID() {
			return r.Type(), nil
		}
	}
	return "", nil
}

// hypernyms resolves the targets of the synset's hypernym edges.
func (s *Synset) hypernyms() ([]*Synset, error) {
	relations, err := s.RelationsOfType(Hypernym)
	if err != nil {
		return nil, err
	}
	parents := make([]*Synset, 0, len(relations))
	for _, r := range relations {
		parent, err := r.Target()
		if errors.IsNotFound(err) {
			// Dangling edge in the data; skip rather than fail the walk.
			continue
		}
		if err != nil {
			return nil, err
		}
		parents = append(parents, parent)
	}
	return parents, nil
}

// Gloss returns the free-text sense definition, fetched from the origin
// language's store.
func (s *Synset) Gloss() (string, error) {
	if s.glossLoaded {
		return s.gloss, nil
	}

	origin, err := s.OriginLanguage()
	if err != nil {
		return "", err
	}
	row, err := s.store.SelectRow(string(origin), "synset", "gloss", "id=?", s.id)
	if err != nil {
		return "", err
	}
	if row != nil {
		var gloss sql.NullString
		err = row.Scan(&gloss)
		if err != nil && err != sql.ErrNoRows {
			return "", errors.Wrapf(err, "gloss for %q", s.id)
		}
		s.gloss = gloss.String
	}
	s.glossLoaded = true
	return s.gloss, nil
}

// gapMarkers flag synsets with no lexicalization in a language.
func isGap(word string) bool {
	return strings.EqualFold(strings.TrimSpace(word), "gap!")
}

// containsToken reports whether id is one of the whitespace-separated
// tokens of a multi-valued column.
func containsToken(tokens, id string) bool {
	for _, token := range strings.Fields(tokens) {
		if token == id {
			return true
		}
	}
	return false
}

// Lemmas returns the member words of this synset in the fetching language.
// The word column of the synset table is consulted first; languages without
// one fall back to the per-pos index.
func (s *Synset) Lemmas() ([]*Lemma, error) {
	if s.lemmasLoaded {
		return s.lemmas, nil
	}

	var lemmas []*Lemma
	row, err := s.store.SelectRow(string(s.language), "synset", "word", "id=?", s.id)
	if err != nil {
		return nil, err
	}
	if row != nil {
		var word sql.NullString
		err = row.Scan(&word)
		if err != nil && err != sql.ErrNoRows {
			return nil, errors.Wrapf(err, "words for %q", s.id)
		}
		if word.Valid && !isGap(word.String) {
			for _, form := range strings.Fields(word.String) {
				lemmas = append(lemmas, newLemma(s.store, strings.ToLower(form), s.POS(), s.language))
			}
		}
	} else {
		// No synset table for this language; consult the index. LIKE only
		// prefilters; the id must match a whole token of the column, so a
		// synset n#400 never picks up members of n#4000.
		column := posColumns[s.POS()]
		rows, err := s.store.Select(string(s.language), "index", "lemma, "+column, column+" LIKE ?", "%"+s.id+"%")
		if err != nil {
			return nil, err
		}
		if rows != nil {
			defer rows.Close()
			for rows.Next() {
				var form string
				var ids sql.NullString
				if err := rows.Scan(&form, &ids); err != nil {
					return nil, errors.Wrap(err, "scan index row")
				}
				if isGap(form) || !containsToken(ids.String, s.id) {
					continue
				}
				lemmas = append(lemmas, newLemma(s.store, form, s.POS(), s.language))
			}
			if err := rows.Err(); err != nil {
				return nil, errors.Wrap(err, "iterate index rows")
			}
		}
	}

	s.lemmas = lemmas
	s.lemmasLoaded = true
	return s.lemmas, nil
}

// Semfields returns the semantic fields this synset falls within, from the
// common space first, then the language's own semfield table.
func (s *Synset) Semfields() ([]*Semfield, error) {
	if s.semfieldsLoaded {
		return s.semfields, nil
	}

	names, err := s.semfieldNames(Common)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		names, err = s.semfieldNames(s.language)
		if err != nil {
			return nil, err
		}
	}

	var fields []*Semfield
	for _, name := range names {
		field, err := LookupSemfield(s.store, name, "", s.language)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}

	s.semfields = fields
	s.semfieldsLoaded = true
	return s.semfields, nil
}

func (s *Synset) semfieldNames(lang Language) ([]string, error) {
	row, err := s.store.SelectRow(string(lang), "semfield", "english", "synset=?", s.id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	var english sql.NullString
	err = row.Scan(&english)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "semfields for %q", s.id)
	}
	return strings.Fields(english.String), nil
}
