package wordnet

import (
	"github.com/lexgraph/mwn/errors"
)

// Language identifies one wordnet within the MultiWordNet.
type Language string

const (
	// English is the reference language; relations minted for it live in
	// the shared common space.
	English    Language = "english"
	Italian    Language = "italian"
	Spanish    Language = "spanish"
	Hebrew     Language = "hebrew"
	Latin      Language = "latin"
	Romanian   Language = "romanian"
	Portuguese Language = "portuguese"

	// Common is the shared reference space, not a wordnet of its own.
	Common Language = "common"
)

// markerLanguages maps the origin marker embedded in a synset offset to the
// language the synset was minted in. Offsets beginning with a digit belong
// to the reference language.
var markerLanguages = map[byte]Language{
	'N': Italian,
	'W': Italian,
	'Y': Italian,
	'H': Hebrew,
	'S': Spanish,
	'L': Latin,
	'R': Romanian,
	'P': Portuguese,
}

// OriginLanguage decodes the language a synset id was minted in. The id has
// the form "<pos>#<offset>"; the first offset character is a digit for
// reference-language synsets and a language marker otherwise.
//
// This is a pure function: the same id always decodes to the same language.
// It must be consulted before any store lookup that needs the authoritative
// record for a synset.
func OriginLanguage(id string) (Language, error) {
	if len(id) < 3 {
		return "", errors.Wrapf(errors.ErrMalformedID, "synset id %q too short", id)
	}
	if !validPOS(string(id[0])) || id[1] != '#' {
		return "", errors.Wrapf(errors.ErrMalformedID, "synset id %q", id)
	}

	marker := id[2]
	if marker >= '0' && marker <= '9' {
		return English, nil
	}
	lang, ok := markerLanguages[marker]
	if !ok {
		return "", errors.Wrapf(errors.ErrMalformedID,
			"synset id %q has unknown language marker %q", id, string(marker))
	}
	return lang, nil
}

// AnyPOS is the wildcard part of speech. A lemma lookup with AnyPOS must
// resolve to exactly one concrete part of speech or fail.
const AnyPOS = "*"

func validPOS(pos string) bool {
	switch pos {
	case "n", "v", "a", "r":
		return true
	}
	return false
}

// posColumns maps a part of speech to its index-table column.
var posColumns = map[string]string{
	"n": "id_n",
	"v": "id_v",
	"a": "id_a",
	"r": "id_r",
}

// posOrder is the canonical ordering of parts of speech.
var posOrder = []string{"n", "v", "a", "r"}
