package wordnet

import (
	"database/sql"
	"strings"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
	"github.com/lexgraph/mwn/morpho"
)

// Lemma represents a canonical word or phrase form. Identity is the
// (form, part of speech) pair; language is deliberately not part of it, so
// the same form fetched through two views compares equal.
type Lemma struct {
	store    *db.Store
	form     string
	pos      string
	language Language
	morphoID string

	synsets        []*Synset
	synsetsLoaded  bool
	synonyms       []*Lemma
	synonymsLoaded bool
	morphoRec      *morpho.Morpho
	morphoLoaded   bool
}

// normalizeForm maps a user-supplied surface form to its stored shape:
// phrases are joined with underscores.
func normalizeForm(form string) string {
	return strings.ReplaceAll(form, " ", "_")
}

func newLemma(store *db.Store, form, pos string, language Language) *Lemma {
	return &Lemma{store: store, form: form, pos: pos, language: language}
}

// LookupLemma resolves a lemma by (form, pos) through the language's
// resolution model. Languages with a morpho table resolve against it;
// all others resolve against the per-pos index.
//
// With the AnyPOS wildcard the form must resolve to exactly one concrete
// part of speech, otherwise the lookup fails with a DisambiguationError
// naming the conflicting candidates. An explicit, unambiguous pos never
// triggers disambiguation, even when the form has senses under other
// parts of speech.
func LookupLemma(store *db.Store, form, pos string, language Language) (*Lemma, error) {
	return LookupLemmaFiltered(store, form, pos, "", "", language)
}

// LookupLemmaFiltered adds the optional morphological id and tag filters
// available for morphology-model languages.
func LookupLemmaFiltered(store *db.Store, form, pos, morphoID, tag string, language Language) (*Lemma, error) {
	form = normalizeForm(form)

	morphoModel, err := store.HasTable(string(language), "morpho")
	if err != nil {
		return nil, err
	}
	if morphoModel {
		return lookupLemmaMorpho(store, form, pos, morphoID, tag, language)
	}
	if morphoID != "" || tag != "" {
		return nil, errors.Newf("morphological filters require a morphology-model language, not %s", language)
	}
	return lookupLemmaIndex(store, form, pos, language)
}

func lookupLemmaIndex(store *db.Store, form, pos string, language Language) (*Lemma, error) {
	if pos != AnyPOS && !validPOS(pos) {
		return nil, errors.Wrapf(errors.ErrMalformedID, "invalid part of speech %q", pos)
	}

	row, err := store.SelectRow(string(language), "index", "id_n, id_v, id_a, id_r", "lemma=?", form)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, errors.NewNotFound("lemma %q (%s)", form, language)
	}

	var ids [4]sql.NullString
	err = row.Scan(&ids[0], &ids[1], &ids[2], &ids[3])
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("lemma %q (%s)", form, language)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lookup lemma %q", form)
	}

	if pos == AnyPOS {
		var candidates []string
		for i, p := range posOrder {
			if ids[i].Valid && strings.TrimSpace(ids[i].String) != "" {
				candidates = append(candidates, p)
			}
		}
		switch len(candidates) {
		case 0:
			return nil, errors.NewNotFound("lemma %q (%s)", form, language)
		case 1:
			pos = candidates[0]
		default:
			return nil, &DisambiguationError{Key: form, Candidates: candidates}
		}
	} else {
		idx := posIndex(pos)
		if !ids[idx].Valid || strings.TrimSpace(ids[idx].String) == "" {
			return nil, errors.NewNotFound("lemma %q has no %s entry", form, pos)
		}
	}

	return newLemma(store, form, pos, language), nil
}

func posIndex(pos string) int {
	for i, p := range posOrder {
		if p == pos {
			return i
		}
	}
	return -1
}

func lookupLemmaMorpho(store *db.Store, form, pos, morphoID, tag string, language Language) (*Lemma, error) {
	where := "lemma=?"
	args := []interface{}{form}
	if validPOS(pos) {
		where += " AND pos=?"
		args = append(args, pos)
	}
	if morphoID != "" {
		where += " AND id=?"
		args = append(args, morphoID)
	}
	if tag != "" {
		where += " AND miscellanea=?"
		args = append(args, tag)
	}

	rows, err := store.Select(string(language), "morpho", morpho.Columns(string(language)), where, args...)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, errors.NewNotFound("lemma %q (%s)", form, language)
	}
	defer rows.Close()

	var matches []*morpho.Morpho
	for rows.Next() {
		m, err := morpho.ScanRow(string(language), rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate morpho rows")
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFound("lemma %q (%s)", form, language)
	case 1:
		m := matches[0]
		l := newLemma(store, m.Lemma(), m.POS(), language)
		l.morphoID = m.ID()
		l.morphoRec = m
		l.morphoLoaded = true
		return l, nil
	default:
		// Never silently pick the first match.
		candidates := make([]string, len(matches))
		for i, m := range matches {
			if t := m.Tag(); t != "" {
				candidates[i] = t
			} else {
				candidates[i] = m.POS()
			}
		}
		return nil, &DisambiguationError{Key: form, Candidates: candidates}
	}
}

// Form returns the dictionary form, with underscores for phrase separators.
func (l *Lemma) Form() string { return l.form }

// Display returns the form with phrase separators restored to spaces.
func (l *Lemma) Display() string { return strings.ReplaceAll(l.form, "_", " ") }

// POS returns the part of speech.
func (l *Lemma) POS() string { return l.pos }

// Language returns the wordnet the lemma was fetched through.
func (l *Lemma) Language() Language { return l.language }

// MorphoID returns the morphological id for morphology-model languages.
func (l *Lemma) MorphoID() string { return l.morphoID }

// Equal reports identity: same form and part of speech. Language does not
// participate.
func (l *Lemma) Equal(other *Lemma) bool {
	return other != nil && l.form == other.form && l.pos == other.pos
}

type lemmaKey struct {
	form string
	pos  string
}

func (l *Lemma) key() lemmaKey {
	return lemmaKey{form: l.form, pos: l.pos}
}

// Morpho returns the morphological record for this lemma. Cached after the
// first call.
func (l *Lemma) Morpho() (*morpho.Morpho, error) {
	if l.morphoLoaded {
		return l.morphoRec, nil
	}
	m, err := morpho.Lookup(l.store, string(l.language), l.form, l.pos)
	if err != nil {
		return nil, err
	}
	l.morphoRec = m
	l.morphoLoaded = true
	return m, nil
}

// Synsets returns the synsets this lemma participates in, resolved through
// the per-pos index. Populated on first call.
func (l *Lemma) Synsets() ([]*Synset, error) {
	if l.synsetsLoaded {
		return l.synsets, nil
	}

	row, err := l.store.SelectRow(string(l.language), "index", "id_n, id_v, id_a, id_r", "lemma=?", l.form)
	if err != nil {
		return nil, err
	}
	if row == nil {
		l.synsetsLoaded = true
		return nil, nil
	}

	var ids [4]sql.NullString
	err = row.Scan(&ids[0], &ids[1], &ids[2], &ids[3])
	if err == sql.ErrNoRows {
		l.synsetsLoaded = true
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "synsets for %q", l.form)
	}

	var list string
	if idx := posIndex(l.pos); idx >= 0 {
		list = ids[idx].String
	} else {
		// Wildcard: first populated part of speech in canonical order.
		for i := range posOrder {
			if ids[i].Valid && strings.TrimSpace(ids[i].String) != "" {
				list = ids[i].String
				break
			}
		}
	}

	var synsets []*Synset
	for _, id := range strings.Fields(list) {
		synset, err := LookupSynset(l.store, id, l.language)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, synset)
	}

	l.synsets = synsets
	l.synsetsLoaded = true
	return l.synsets, nil
}

// Synonyms returns the other members of this lemma's synsets. The synonyms
// table is consulted first; languages without one fall back to the synset
// word and phrase columns. Populated on first call.
func (l *Lemma) Synonyms() ([]*Lemma, error) {
	if l.synonymsLoaded {
		return l.synonyms, nil
	}

	synsets, err := l.Synsets()
	if err != nil {
		return nil, err
	}

	seen := make(map[lemmaKey]bool)
	var synonyms []*Lemma
	add := func(form string) {
		candidate := newLemma(l.store, form, l.pos, l.language)
		if candidate.form == l.form || seen[candidate.key()] {
			return
		}
		seen[candidate.key()] = true
		synonyms = append(synonyms, candidate)
	}

	for _, synset := range synsets {
		rows, err := l.store.Select(string(l.language), "synonyms", "lemma", "pos=? AND syn=?", l.pos, synset.Offset())
		if err != nil {
			return nil, err
		}
		if rows == nil {
			continue
		}
		for rows.Next() {
			var form string
			if err := rows.Scan(&form); err != nil {
				rows.Close()
				return nil, errors.Wrap(err, "scan synonym row")
			}
			add(form)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "iterate synonym rows")
		}
		rows.Close()
	}

	if len(synonyms) == 0 {
		for _, synset := range synsets {
			row, err := l.store.SelectRow(string(l.language), "synset", "word, phrase", "id=?", synset.ID())
			if err != nil {
				return nil, err
			}
			if row == nil {
				continue
			}
			var word, phrase sql.NullString
			err = row.Scan(&word, &phrase)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				return nil, errors.Wrapf(err, "synonyms for %q", l.form)
			}
			for _, form := range strings.Fields(word.String) {
				add(form)
			}
			for _, form := range strings.Fields(phrase.String) {
				add(form)
			}
		}
	}

	l.synonyms = synonyms
	l.synonymsLoaded = true
	return l.synonyms, nil
}

// lexicalNeighbors collects the far ends of lexical edges touching this
// lemma. forward queries edges where this lemma is the source; otherwise
// edges where it is the target.
func (l *Lemma) lexicalNeighbors(typ string, forward bool) ([]*Lemma, error) {
	var columns, where string
	if forward {
		columns, where = "id_target, w_target", "w_source=? AND type=?"
	} else {
		columns, where = "id_source, w_source", "w_target=? AND type=?"
	}

	rows, err := l.store.Select(string(l.language), "relation", columns, where, l.form, typ)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	seen := make(map[lemmaKey]bool)
	var neighbors []*Lemma
	for rows.Next() {
		var id, form sql.NullString
		if err := rows.Scan(&id, &form); err != nil {
			return nil, errors.Wrap(err, "scan lexical relation row")
		}
		if form.String == "" || id.String == "" {
			continue
		}
		candidate := newLemma(l.store, form.String, string(id.String[0]), l.language)
		if seen[candidate.key()] {
			continue
		}
		seen[candidate.key()] = true
		neighbors = append(neighbors, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate lexical relation rows")
	}
	return neighbors, nil
}

// Derivates returns the lemmas derived from this one (edges of type "\"
// pointing at this lemma).
func (l *Lemma) Derivates() ([]*Lemma, error) {
	return l.lexicalNeighbors("\\", false)
}

// DerivatesByPOS filters Derivates by the given part-of-speech letters.
func (l *Lemma) DerivatesByPOS(pos string) ([]*Lemma, error) {
	derivates, err := l.Derivates()
	if err != nil {
		return nil, err
	}
	return filterPOS(derivates, pos), nil
}

// Relatives returns the lemmas this one is lexically related to (edges of
// type "/" from this lemma).
func (l *Lemma) Relatives() ([]*Lemma, error) {
	return l.lexicalNeighbors("/", true)
}

// RelativesByPOS filters Relatives by the given part-of-speech letters.
func (l *Lemma) RelativesByPOS(pos string) ([]*Lemma, error) {
	relatives, err := l.Relatives()
	if err != nil {
		return nil, err
	}
	return filterPOS(relatives, pos), nil
}

// Antonyms returns the lemmas in antonym relation with this one.
func (l *Lemma) Antonyms() ([]*Lemma, error) {
	return l.lexicalNeighbors("!", true)
}

// ComposedOf returns the lemmas this compound is composed of.
func (l *Lemma) ComposedOf() ([]*Lemma, error) {
	return l.lexicalNeighbors("+c", true)
}

// Composes returns the compounds this lemma participates in.
func (l *Lemma) Composes() ([]*Lemma, error) {
	return l.lexicalNeighbors("-c", true)
}

func filterPOS(lemmas []*Lemma, pos string) []*Lemma {
	var filtered []*Lemma
	for _, lemma := range lemmas {
		if strings.Contains(pos, lemma.POS()) {
			filtered = append(filtered, lemma)
		}
	}
	return filtered
}
