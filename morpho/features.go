// Package morpho decodes the fixed-layout morphological tag strings carried
// by morphologically rich languages, and models the backing-store morpho
// record for a lemma.
//
// A tag is a ten-character string where each position encodes one feature as
// a single character, e.g. "n-s---mn3-" for a third-declension masculine
// singular nominative noun. The position layout is declared per language in
// layout.go and consulted by one generic decoder.
package morpho

import (
	"github.com/lexgraph/mwn/errors"
)

// Features holds the grammatical features decoded from a tag string.
type Features struct {
	language string
	tag      string
	values   map[Feature]byte
	names    map[Feature]string
}

// Decode parses a tag string according to the given language's layout.
// An unknown language or a tag of the wrong length is a decoding error;
// unset positions ('-') simply leave the feature empty.
func Decode(language, tag string) (*Features, error) {
	l, ok := layouts[language]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMalformedID, "no tag layout for language %q", language)
	}
	if len(tag) != l.length {
		return nil, errors.Wrapf(errors.ErrMalformedID,
			"tag %q has length %d, want %d", tag, len(tag), l.length)
	}

	f := &Features{
		language: language,
		tag:      tag,
		values:   make(map[Feature]byte),
		names:    make(map[Feature]string),
	}

	pos := tag[0]
	for _, spec := range l.fields {
		if spec.appliesTo != "" && !containsByte(spec.appliesTo, pos) {
			continue
		}
		code := tag[spec.pos]
		name, known := spec.codes[code]
		if !known {
			continue
		}
		f.values[spec.feature] = code
		f.names[spec.feature] = name
	}
	return f, nil
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// Tag returns the raw tag string.
func (f *Features) Tag() string {
	return f.tag
}

// Get returns the single-character code for a feature, or "" when unset or
// not applicable to this part of speech.
func (f *Features) Get(feature Feature) string {
	code, ok := f.values[feature]
	if !ok {
		return ""
	}
	return string(code)
}

// Name returns the verbose reading of a feature, or "" when unset. The group
// feature reads differently per part of speech (declension vs. conjugation).
func (f *Features) Name(feature Feature) string {
	if feature == Group {
		return f.groupName()
	}
	return f.names[feature]
}

func (f *Features) groupName() string {
	code, ok := f.values[Group]
	if !ok {
		return ""
	}
	pos, ok := f.values[POS]
	if !ok {
		return ""
	}
	byPOS, ok := groupNames[pos]
	if !ok {
		return ""
	}
	return byPOS[code]
}

// POS returns the part-of-speech code.
func (f *Features) POS() string {
	return f.Get(POS)
}

// IsIStem reports whether the stem-class position marks an i-stem.
func (f *Features) IsIStem() bool {
	return f.Get(Stem) == "i"
}
