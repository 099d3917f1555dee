package morpho

import (
	"strings"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
)

// FormPair is one "key=form" entry from the irregular_forms or
// alternative_forms columns.
type FormPair struct {
	Key  string
	Form string
}

// Morpho represents the morphological record for a lemma in a
// morphologically rich language. Immutable once built.
type Morpho struct {
	language string
	id       string
	lemma    string
	pos      string

	principalParts   []string
	irregularForms   []FormPair
	alternativeForms []FormPair
	pronunciation    string

	// Hebrew script columns; empty for other languages.
	undotted          string
	dottedWithoutDots string
	variants          string
	translitDotted    string
	translitUndotted  string

	tag      string
	features *Features
}

// latinColumns and hebrewColumns mirror the physical column order of the
// respective morpho tables.
const (
	latinColumns  = "id, lemma, pos, principal_parts, irregular_forms, alternative_forms, pronunciation, miscellanea"
	hebrewColumns = "id, lemma, pos, principal_parts, irregular_forms, alternative_forms, pronunciation, undotted, dotted_without_dots, variants, translit_dotted, translit_undotted, miscellanea"
)

// Columns returns the morpho table column list for a language.
func Columns(language string) string {
	if language == "hebrew" {
		return hebrewColumns
	}
	return latinColumns
}

// FromRow builds a Morpho from a full morpho-table row in column order.
func FromRow(language string, fields []string) (*Morpho, error) {
	want := 8
	if language == "hebrew" {
		want = 13
	}
	if len(fields) != want {
		return nil, errors.Wrapf(errors.ErrMalformedID,
			"%s morpho row has %d fields, want %d", language, len(fields), want)
	}

	m := &Morpho{
		language:         language,
		id:               fields[0],
		lemma:            fields[1],
		pos:              fields[2],
		principalParts:   splitTokens(fields[3]),
		irregularForms:   splitPairs(fields[4]),
		alternativeForms: splitPairs(fields[5]),
		pronunciation:    fields[6],
	}
	if language == "hebrew" {
		m.undotted = fields[7]
		m.dottedWithoutDots = fields[8]
		m.variants = fields[9]
		m.translitDotted = fields[10]
		m.translitUndotted = fields[11]
		m.tag = fields[12]
	} else {
		m.tag = fields[7]
	}

	if m.tag != "" {
		features, err := Decode(language, m.tag)
		if err != nil {
			return nil, err
		}
		m.features = features
		if m.pos == "" {
			m.pos = features.POS()
		}
	}
	return m, nil
}

// Lookup fetches the morpho record for (lemma, pos). More than one matching
// row is an ambiguity the caller must resolve with a tag filter.
func Lookup(store *db.Store, language, lemma, pos string) (*Morpho, error) {
	rows, err := store.Select(language, "morpho", Columns(language), "lemma=? AND pos=?", lemma, pos)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		return nil, errors.NewNotFound("no morpho table for %s", language)
	}
	defer rows.Close()

	var matches []*Morpho
	for rows.Next() {
		m, err := ScanRow(language, rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "scan morpho rows")
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFound("no morphology for %q (%s)", lemma, pos)
	case 1:
		return matches[0], nil
	default:
		tags := make([]string, len(matches))
		for i, m := range matches {
			tags[i] = m.Tag()
		}
		return nil, errors.Wrapf(errors.ErrAmbiguous,
			"cannot disambiguate %q between %s", lemma, strings.Join(tags, ", "))
	}
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// ScanRow builds a Morpho from the current row of a full-column morpho
// query.
func ScanRow(language string, row scanner) (*Morpho, error) {
	n := 8
	if language == "hebrew" {
		n = 13
	}
	raw := make([]interface{}, n)
	fields := make([]string, n)
	for i := range raw {
		raw[i] = &fields[i]
	}
	if err := row.Scan(raw...); err != nil {
		return nil, errors.Wrap(err, "scan morpho row")
	}
	return FromRow(language, fields)
}

func splitTokens(s string) []string {
	return strings.Fields(s)
}

func splitPairs(s string) []FormPair {
	var pairs []FormPair
	for _, token := range strings.Fields(s) {
		key, form, found := strings.Cut(token, "=")
		if !found {
			pairs = append(pairs, FormPair{Form: key})
			continue
		}
		pairs = append(pairs, FormPair{Key: key, Form: form})
	}
	return pairs
}

// Language returns the record's language.
func (m *Morpho) Language() string { return m.language }

// ID returns the morphological id, when present.
func (m *Morpho) ID() string { return m.id }

// Lemma returns the dictionary form.
func (m *Morpho) Lemma() string { return m.lemma }

// POS returns the part of speech, decoded from the tag when the column is
// empty.
func (m *Morpho) POS() string { return m.pos }

// PrincipalParts returns the stems used to build inflected forms.
func (m *Morpho) PrincipalParts() []string { return m.principalParts }

// IrregularForms returns the key=form pairs of irregular inflections.
func (m *Morpho) IrregularForms() []FormPair { return m.irregularForms }

// AlternativeForms returns the key=form pairs of alternative spellings.
func (m *Morpho) AlternativeForms() []FormPair { return m.alternativeForms }

// Pronunciation returns the recorded pronunciation, when present.
func (m *Morpho) Pronunciation() string { return m.pronunciation }

// Tag returns the raw fixed-layout tag string.
func (m *Morpho) Tag() string { return m.tag }

// Features returns the decoded tag features, or nil when the record carries
// no tag.
func (m *Morpho) Features() *Features { return m.features }

// Hebrew script accessors. Empty for other languages.

func (m *Morpho) Undotted() string          { return m.undotted }
func (m *Morpho) DottedWithoutDots() string { return m.dottedWithoutDots }
func (m *Morpho) Variants() string          { return m.variants }
func (m *Morpho) TranslitDotted() string    { return m.translitDotted }
func (m *Morpho) TranslitUndotted() string  { return m.translitUndotted }
