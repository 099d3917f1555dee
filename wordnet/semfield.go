package wordnet

import (
	"database/sql"
	"strings"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
)

// Semfield is a node in the semantic-field hierarchy shared across
// languages. A (name, code) pair identifies a field uniquely; the name
// alone may be ambiguous.
type Semfield struct {
	store    *db.Store
	english  string
	code     string
	language Language

	synsets       []*Synset
	synsetsLoaded bool
	hypers        []*Semfield
	hypersLoaded  bool
	hypons        []*Semfield
	hyponsLoaded  bool
	normal        *Semfield
	normalLoaded  bool
}

// LookupSemfield resolves a semantic field by English name and optional
// code. When the code is omitted and more than one code matches the name,
// the lookup fails with a DisambiguationError enumerating the candidate
// codes so the caller can re-query with one.
func LookupSemfield(store *db.Store, english, code string, language Language) (*Semfield, error) {
	english = normalizeForm(english)

	where := "english=?"
	args := []interface{}{english}
	if code != "" {
		where += " AND code=?"
		args = append(args, code)
	}

	rows, err := store.Select(string(Common), "semfield_hierarchy", "code, english", where, args...)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, errors.NewNotFound("semfield %q", english)
	}
	defer rows.Close()

	type match struct{ code, english string }
	var matches []match
	for rows.Next() {
		var m match
		if err := rows.Scan(&m.code, &m.english); err != nil {
			return nil, errors.Wrap(err, "scan semfield row")
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate semfield rows")
	}

	switch {
	case len(matches) == 0:
		return nil, errors.NewNotFound("semfield %q", english)
	case len(matches) > 1 && code == "":
		codes := make([]string, len(matches))
		for i, m := range matches {
			codes[i] = m.code
		}
		return nil, &DisambiguationError{Key: english, Candidates: codes}
	default:
		return &Semfield{
			store:    store,
			english:  matches[0].english,
			code:     matches[0].code,
			language: language,
		}, nil
	}
}

// English returns the canonical English name, with underscores for spaces.
func (f *Semfield) English() string { return f.english }

// Code returns the unique identification code.
func (f *Semfield) Code() string { return f.code }

// Language returns the wordnet view the field was fetched through.
func (f *Semfield) Language() Language { return f.language }

// String returns the display name.
func (f *Semfield) String() string {
	return strings.ReplaceAll(f.english, "_", " ")
}

// Synsets returns the synsets falling within this semantic field, from the
// common space plus the fetching language's own semfield table. Populated
// on first call.
func (f *Semfield) Synsets() ([]*Synset, error) {
	if f.synsetsLoaded {
		return f.synsets, nil
	}

	// Drain the member ids before resolving them; LookupSynset must not
	// run while the cursor still holds the connection.
	var ids []string
	for _, lang := range []Language{Common, f.language} {
		rows, err := f.store.Select(string(lang), "semfield", "synset", "english LIKE ?", "%"+f.english+"%")
		if err != nil {
			return nil, err
		}
		if rows == nil {
			continue
		}
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, errors.Wrap(err, "scan semfield synset row")
			}
			ids = append(ids, id)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, errors.Wrap(err, "iterate semfield synset rows")
		}
		rows.Close()
	}

	var synsets []*Synset
	for _, id := range ids {
		synset, err := LookupSynset(f.store, id, f.language)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		synsets = append(synsets, synset)
	}

	f.synsets = synsets
	f.synsetsLoaded = true
	return f.synsets, nil
}

// Hypers returns the immediately broader fields. Populated on first call.
func (f *Semfield) Hypers() ([]*Semfield, error) {
	if f.hypersLoaded {
		return f.hypers, nil
	}
	fields, err := f.neighbors("hypers")
	if err != nil {
		return nil, err
	}
	f.hypers = fields
	f.hypersLoaded = true
	return f.hypers, nil
}

// Hypons returns the immediately narrower fields. Populated on first call.
func (f *Semfield) Hypons() ([]*Semfield, error) {
	if f.hyponsLoaded {
		return f.hypons, nil
	}
	fields, err := f.neighbors("hypons")
	if err != nil {
		return nil, err
	}
	f.hypons = fields
	f.hyponsLoaded = true
	return f.hypons, nil
}

func (f *Semfield) neighbors(column string) ([]*Semfield, error) {
	row, err := f.store.SelectRow(string(Common), "semfield_hierarchy", column, "english=? AND code=?", f.english, f.code)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	var names sql.NullString
	err = row.Scan(&names)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s of semfield %q", column, f.english)
	}

	var fields []*Semfield
	for _, name := range strings.Fields(names.String) {
		neighbor, err := f.resolveByName(name, "")
		if err != nil {
			return nil, err
		}
		if neighbor != nil {
			fields = append(fields, neighbor)
		}
	}
	return fields, nil
}

// Normal returns the basic-level category this field belongs to, resolved
// within the field's own top-level code space. Populated on first call.
func (f *Semfield) Normal() (*Semfield, error) {
	if f.normalLoaded {
		return f.normal, nil
	}

	row, err := f.store.SelectRow(string(Common), "semfield_hierarchy", "normal", "english=? AND code=?", f.english, f.code)
	if err != nil {
		return nil, err
	}
	if row != nil {
		var name sql.NullString
		err = row.Scan(&name)
		if err != nil && err != sql.ErrNoRows {
			return nil, errors.Wrapf(err, "normal of semfield %q", f.english)
		}
		if name.String != "" {
			prefix := f.code
			if len(prefix) > 2 {
				prefix = prefix[:2]
			}
			normal, err := f.resolveByName(name.String, prefix)
			if err != nil {
				return nil, err
			}
			f.normal = normal
		}
	}
	f.normalLoaded = true
	return f.normal, nil
}

// resolveByName fetches the first hierarchy row for a name, optionally
// constrained to a code prefix. The hierarchy's own edges name fields
// without codes; the first row wins, matching the resource's conventions.
func (f *Semfield) resolveByName(name, codePrefix string) (*Semfield, error) {
	where := "english=?"
	args := []interface{}{name}
	if codePrefix != "" {
		where += " AND code LIKE ?"
		args = append(args, codePrefix+"%")
	}

	rows, err := f.store.Select(string(Common), "semfield_hierarchy", "code, english", where, args...)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errors.Wrap(err, "resolve semfield name")
		}
		return nil, nil
	}
	var code, english string
	if err := rows.Scan(&code, &english); err != nil {
		return nil, errors.Wrap(err, "scan semfield name row")
	}
	return &Semfield{store: f.store, english: english, code: code, language: f.language}, nil
}
