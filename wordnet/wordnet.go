package wordnet

import (
	"database/sql"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
)

// MatchMode selects how a form pattern is matched against stored lemmas.
type MatchMode int

const (
	MatchExact MatchMode = iota
	MatchPrefix
	MatchSuffix
	MatchContains
)

// lemmaCacheSize bounds the per-wordnet lemma cache. Interactive use hits
// the same few hundred lemmas over and over; 2048 keeps the working set of
// a large text resident without growing unbounded on corpus scans.
const lemmaCacheSize = 2048

// WordNet is the entry point for one language's view of the resource. It
// caches resolved lemmas and whole-table enumerations for the lifetime of
// the value, so it is cheap to call the same accessor repeatedly.
//
// A WordNet is not safe for concurrent use; open one per goroutine against
// the shared store.
type WordNet struct {
	store    *db.Store
	language Language
	log      *zap.SugaredLogger

	lemmaCache *lru.Cache[lemmaKey, *Lemma]

	lemmas       []*Lemma
	lemmasLoaded bool
	synsets      []*Synset
	synsetsByPOS map[string][]*Synset
	relations    []*Relation
	semfields    []*Semfield
	maxDepths    map[string]int
}

// New opens a language view over the store.
func New(store *db.Store, language Language, log *zap.SugaredLogger) (*WordNet, error) {
	cache, err := lru.New[lemmaKey, *Lemma](lemmaCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create lemma cache")
	}
	return &WordNet{
		store:      store,
		language:   language,
		log:        log,
		lemmaCache: cache,
		maxDepths:  map[string]int{},
	}, nil
}

// Language returns the language this view reads.
func (w *WordNet) Language() Language { return w.language }

// Store returns the underlying record store.
func (w *WordNet) Store() *db.Store { return w.store }

// GetLemma resolves a form with an explicit part of speech, serving repeat
// lookups from the cache. Failed lookups are not cached, so a lemma added
// to the store later is still found.
func (w *WordNet) GetLemma(form, pos string) (*Lemma, error) {
	key := lemmaKey{form: normalizeForm(form), pos: pos}
	if cached, ok := w.lemmaCache.Get(key); ok {
		return cached, nil
	}
	lemma, err := LookupLemma(w.store, form, pos, w.language)
	if err != nil {
		return nil, err
	}
	w.lemmaCache.Add(lemma.key(), lemma)
	return lemma, nil
}

// GetSynset resolves a synset identifier in this view's language.
func (w *WordNet) GetSynset(id string) (*Synset, error) {
	return LookupSynset(w.store, id, w.language)
}

// GetSemfield resolves a semantic field by English name, or by name and
// code when the name alone is ambiguous.
func (w *WordNet) GetSemfield(english, code string) (*Semfield, error) {
	return LookupSemfield(w.store, english, code, w.language)
}

// Lookup finds lemmas whose form matches the pattern under the given mode.
// MatchExact delegates to the single-lemma resolver, honoring the same
// filters; the other modes scan the language's lemma records and return
// every match. The tag filter only applies to morphology-model languages.
func (w *WordNet) Lookup(form, pos, tag string, mode MatchMode) ([]*Lemma, error) {
	if mode == MatchExact {
		lemma, err := LookupLemmaFiltered(w.store, form, pos, "", tag, w.language)
		if err != nil {
			return nil, err
		}
		return []*Lemma{lemma}, nil
	}

	pattern := normalizeForm(form)
	switch mode {
	case MatchPrefix:
		pattern += "%"
	case MatchSuffix:
		pattern = "%" + pattern
	case MatchContains:
		pattern = "%" + pattern + "%"
	default:
		return nil, errors.Newf("unknown match mode %d", mode)
	}

	has, err := w.store.HasTable(string(w.language), "morpho")
	if err != nil {
		return nil, err
	}
	if has {
		return w.scanMorphoLemmas("lemma LIKE ?", pattern, pos, tag)
	}
	return w.scanIndexLemmas("lemma LIKE ?", pattern, pos)
}

// scanMorphoLemmas enumerates morpho rows matching a where clause, with
// optional pos and tag narrowing, deduplicated by form and part of speech.
func (w *WordNet) scanMorphoLemmas(where, pattern, pos, tag string) ([]*Lemma, error) {
	args := []interface{}{pattern}
	if pos != "" && pos != AnyPOS {
		where += " AND pos=?"
		args = append(args, pos)
	}
	if tag != "" {
		where += " AND miscellanea=?"
		args = append(args, tag)
	}

	rows, err := w.store.Select(string(w.language), "morpho", "lemma, pos", where, args...)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	seen := make(map[lemmaKey]bool)
	var lemmas []*Lemma
	for rows.Next() {
		var form, rowPOS string
		if err := rows.Scan(&form, &rowPOS); err != nil {
			return nil, errors.Wrap(err, "scan morpho lemma row")
		}
		lemma := newLemma(w.store, form, rowPOS, w.language)
		if seen[lemma.key()] {
			continue
		}
		seen[lemma.key()] = true
		lemmas = append(lemmas, lemma)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate morpho lemma rows")
	}
	return lemmas, nil
}

// scanIndexLemmas enumerates index rows matching a where clause, yielding
// one lemma per populated part-of-speech column.
func (w *WordNet) scanIndexLemmas(where, pattern, pos string) ([]*Lemma, error) {
	rows, err := w.store.Select(string(w.language), "index", "lemma, id_n, id_v, id_a, id_r", where, pattern)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	var lemmas []*Lemma
	for rows.Next() {
		var form string
		ids := make([]sql.NullString, len(posOrder))
		if err := rows.Scan(&form, &ids[0], &ids[1], &ids[2], &ids[3]); err != nil {
			return nil, errors.Wrap(err, "scan index lemma row")
		}
		for i, rowPOS := range posOrder {
			if !ids[i].Valid || ids[i].String == "" {
				continue
			}
			if pos != "" && pos != AnyPOS && pos != rowPOS {
				continue
			}
			lemmas = append(lemmas, newLemma(w.store, form, rowPOS, w.language))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate index lemma rows")
	}
	return lemmas, nil
}

// Lemmas enumerates every lemma recorded for the language. The result is
// computed once and reused.
func (w *WordNet) Lemmas() ([]*Lemma, error) {
	if w.lemmasLoaded {
		return w.lemmas, nil
	}

	morphoModel, err := w.store.HasTable(string(w.language), "morpho")
	if err != nil {
		return nil, err
	}
	var lemmas []*Lemma
	if morphoModel {
		lemmas, err = w.scanMorphoLemmas("lemma LIKE ?", "%", "", "")
	} else {
		// The dedicated lemma table is the canonical enumeration where the
		// distribution ships one; otherwise derive it from the index.
		lemmas, err = w.scanLemmaTable()
		if err == nil && lemmas == nil {
			lemmas, err = w.scanIndexLemmas("lemma LIKE ?", "%", "")
		}
	}
	if err != nil {
		return nil, err
	}

	w.lemmas = lemmas
	w.lemmasLoaded = true
	return w.lemmas, nil
}

// scanLemmaTable enumerates the language's dedicated lemma table, reporting
// nil when the distribution does not ship one.
func (w *WordNet) scanLemmaTable() ([]*Lemma, error) {
	rows, err := w.store.Select(string(w.language), "lemma", "lemma, pos", "1=1")
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	seen := make(map[lemmaKey]bool)
	var lemmas []*Lemma
	for rows.Next() {
		var form, pos string
		if err := rows.Scan(&form, &pos); err != nil {
			return nil, errors.Wrap(err, "scan lemma row")
		}
		lemma := newLemma(w.store, form, pos, w.language)
		if seen[lemma.key()] {
			continue
		}
		seen[lemma.key()] = true
		lemmas = append(lemmas, lemma)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate lemma rows")
	}
	return lemmas, nil
}

// Synsets enumerates every synset in the language's own synset table. The
// result is computed once and reused.
func (w *WordNet) Synsets() ([]*Synset, error) {
	if w.synsets != nil {
		return w.synsets, nil
	}

	rows, err := w.store.Select(string(w.language), "synset", "id", "1=1")
	if err != nil {
		return nil, err
	}
	if rows == nil {
		w.synsets = []*Synset{}
		return w.synsets, nil
	}
	defer rows.Close()

	var synsets []*Synset
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "scan synset id row")
		}
		synsets = append(synsets, &Synset{store: w.store, id: id, language: w.language})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate synset id rows")
	}

	w.synsets = synsets
	return w.synsets, nil
}

// SynsetsByPOS returns the language's synsets of one part of speech.
func (w *WordNet) SynsetsByPOS(pos string) ([]*Synset, error) {
	if !validPOS(pos) {
		return nil, errors.Wrapf(errors.ErrMalformedID, "part of speech %q", pos)
	}
	if w.synsetsByPOS == nil {
		all, err := w.Synsets()
		if err != nil {
			return nil, err
		}
		byPOS := make(map[string][]*Synset)
		for _, s := range all {
			byPOS[s.POS()] = append(byPOS[s.POS()], s)
		}
		w.synsetsByPOS = byPOS
	}
	return w.synsetsByPOS[pos], nil
}

// Relations enumerates the edges of the common space plus the language's
// own relation table. The result is computed once and reused.
func (w *WordNet) Relations() ([]*Relation, error) {
	if w.relations != nil {
		return w.relations, nil
	}

	relations, err := w.queryRelations("1=1")
	if err != nil {
		return nil, err
	}
	if relations == nil {
		relations = []*Relation{}
	}
	w.relations = relations
	return w.relations, nil
}

// RelationFilter narrows a relation query. Zero-value fields match
// anything. Lexical relations are stored against lemma forms, so filtering
// with Lexical set requires SourceLemma and TargetLemma rather than ids.
type RelationFilter struct {
	Source      string
	Target      string
	SourceLemma string
	TargetLemma string
	Type        string
	Lexical     bool
}

// GetRelations returns the edges matching the filter across the common
// space and the language's own relation table.
func (w *WordNet) GetRelations(filter RelationFilter) ([]*Relation, error) {
	if filter.Lexical && (filter.SourceLemma == "" || filter.TargetLemma == "") {
		return nil, errors.New("lexical relation queries need both lemma forms")
	}

	where := "1=1"
	var args []interface{}
	if filter.Type != "" {
		where += " AND type=?"
		args = append(args, filter.Type)
	}
	if filter.Source != "" {
		where += " AND id_source=?"
		args = append(args, filter.Source)
	}
	if filter.Target != "" {
		where += " AND id_target=?"
		args = append(args, filter.Target)
	}
	if filter.SourceLemma != "" {
		where += " AND w_source=?"
		args = append(args, normalizeForm(filter.SourceLemma))
	}
	if filter.TargetLemma != "" {
		where += " AND w_target=?"
		args = append(args, normalizeForm(filter.TargetLemma))
	}

	relations, err := w.queryRelations(where, args...)
	if err != nil {
		return nil, err
	}
	if !filter.Lexical {
		return relations, nil
	}
	var lexical []*Relation
	for _, r := range relations {
		if r.IsLexical() {
			lexical = append(lexical, r)
		}
	}
	return lexical, nil
}

func (w *WordNet) queryRelations(where string, args ...interface{}) ([]*Relation, error) {
	var relations []*Relation
	for _, lang := range []Language{Common, w.language} {
		rows, err := w.store.Select(string(lang), "relation", relationColumns, where, args...)
		if err != nil {
			return nil, err
		}
		batch, err := scanRelations(w.store, lang, rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, batch...)
	}
	return relations, nil
}

// Semfields enumerates the semantic-field hierarchy. The result is computed
// once and reused.
func (w *WordNet) Semfields() ([]*Semfield, error) {
	if w.semfields != nil {
		return w.semfields, nil
	}

	rows, err := w.store.Select(string(Common), "semfield_hierarchy", "code, english", "1=1")
	if err != nil {
		return nil, err
	}
	if rows == nil {
		w.semfields = []*Semfield{}
		return w.semfields, nil
	}
	defer rows.Close()

	var fields []*Semfield
	for rows.Next() {
		var code, english string
		if err := rows.Scan(&code, &english); err != nil {
			return nil, errors.Wrap(err, "scan semfield hierarchy row")
		}
		fields = append(fields, &Semfield{store: w.store, english: english, code: code, language: w.language})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate semfield hierarchy rows")
	}

	w.semfields = fields
	return w.semfields, nil
}

// SemfieldsByEnglish returns every field carrying the name, one per code.
// Unlike GetSemfield this never reports ambiguity.
func (w *WordNet) SemfieldsByEnglish(english string) ([]*Semfield, error) {
	all, err := w.Semfields()
	if err != nil {
		return nil, err
	}
	english = normalizeForm(english)
	var matched []*Semfield
	for _, f := range all {
		if f.English() == english {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// SemfieldsByCode returns the fields whose code starts with the prefix.
func (w *WordNet) SemfieldsByCode(prefix string) ([]*Semfield, error) {
	all, err := w.Semfields()
	if err != nil {
		return nil, err
	}
	var matched []*Semfield
	for _, f := range all {
		if len(f.Code()) >= len(prefix) && f.Code()[:len(prefix)] == prefix {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// MaxDepthFor returns the deepest hypernym chain among the language's
// synsets of one part of speech. The walk is expensive, so the result is
// memoized per part of speech.
func (w *WordNet) MaxDepthFor(pos string) (int, error) {
	if cached, ok := w.maxDepths[pos]; ok {
		return cached, nil
	}

	synsets, err := w.SynsetsByPOS(pos)
	if err != nil {
		return 0, err
	}
	if w.log != nil {
		w.log.Debugw("computing taxonomy depth", "language", w.language, "pos", pos, "synsets", len(synsets))
	}
	deepest := 0
	for _, s := range synsets {
		d, err := s.MaxDepth()
		if err != nil {
			return 0, err
		}
		if d > deepest {
			deepest = d
		}
	}
	w.maxDepths[pos] = deepest
	return deepest, nil
}
