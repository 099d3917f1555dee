package morpho

// Feature identifies one grammatical feature decoded from a tag string.
type Feature string

const (
	POS    Feature = "pos"
	Person Feature = "person"
	Degree Feature = "degree"
	Number Feature = "number"
	Tense  Feature = "tense"
	Mood   Feature = "mood"
	Voice  Feature = "voice"
	Gender Feature = "gender"
	Case   Feature = "case"
	Group  Feature = "group"
	Stem   Feature = "stem"
)

// fieldSpec declares where a feature lives in the tag and which codes are
// meaningful there. appliesTo restricts the feature to certain parts of
// speech; empty means any.
type fieldSpec struct {
	feature   Feature
	pos       int
	appliesTo string
	codes     map[byte]string
}

// layout is the fixed-position tag layout for one language.
type layout struct {
	length int
	fields []fieldSpec
}

var posCodes = map[byte]string{
	'n': "noun",
	'v': "verb",
	'a': "adjective",
	'r': "adverb",
	'p': "pronoun",
	'u': "punctuation",
	's': "preposition",
	'c': "conjunction",
	't': "participle",
}

var personCodes = map[byte]string{
	'1': "1st person",
	'2': "2nd person",
	'3': "3rd person",
}

var degreeCodes = map[byte]string{
	'p': "positive",
	'c': "comparative",
	's': "superlative",
}

var numberCodes = map[byte]string{
	's': "singular",
	'd': "dual",
	'p': "plural",
}

var tenseCodes = map[byte]string{
	'p': "present",
	'f': "future",
	'i': "imperfect",
	'r': "perfect",
	'l': "pluperfect",
	't': "future perfect",
}

var moodCodes = map[byte]string{
	'n': "infinitive",
	'i': "indicative",
	'm': "imperative",
	's': "subjunctive",
	'p': "participle",
	'g': "gerund",
	'd': "gerundive",
}

var voiceCodes = map[byte]string{
	'a': "active",
	'p': "passive",
	'm': "middle",
	'd': "deponent",
	's': "semideponent",
}

var genderCodes = map[byte]string{
	'm': "masculine",
	'f': "feminine",
	'n': "neuter",
	'c': "masculine or feminine",
	'a': "masculine or feminine or neuter",
}

var caseCodes = map[byte]string{
	'n': "nominative",
	'g': "genitive",
	'd': "dative",
	'a': "accusative",
	'b': "ablative",
	'v': "vocative",
	'l': "locative",
}

var groupCodes = map[byte]string{
	'1': "1", '2': "2", '3': "3", '4': "4", '5': "5",
	'-': "indeclinable",
}

var stemCodes = map[byte]string{
	'i': "i-stem",
}

// groupNames gives the verbose reading of the group code, which depends on
// the part of speech (declension for nominals, conjugation for verbs).
var groupNames = map[byte]map[byte]string{
	'n': {
		'1': "1st declension",
		'2': "2nd declension",
		'3': "3rd declension",
		'4': "4th declension",
		'5': "5th declension",
		'-': "indeclinable",
	},
	'v': {
		'1': "1st conjugation",
		'2': "2nd conjugation",
		'3': "3rd conjugation",
		'4': "4th conjugation",
	},
	'a': {
		'1': "1st/2nd declension",
		'3': "3rd declension",
	},
}

// tenForms is the shared ten-position core layout: pos, person/degree,
// number, tense, mood, voice, gender, case, group, stem.
var tenForms = []fieldSpec{
	{feature: POS, pos: 0, codes: posCodes},
	{feature: Person, pos: 1, appliesTo: "v", codes: personCodes},
	{feature: Degree, pos: 1, appliesTo: "ar", codes: degreeCodes},
	{feature: Number, pos: 2, codes: numberCodes},
	{feature: Tense, pos: 3, appliesTo: "vt", codes: tenseCodes},
	{feature: Mood, pos: 4, appliesTo: "vt", codes: moodCodes},
	{feature: Voice, pos: 5, appliesTo: "vt", codes: voiceCodes},
	{feature: Gender, pos: 6, codes: genderCodes},
	{feature: Case, pos: 7, codes: caseCodes},
	{feature: Group, pos: 8, codes: groupCodes},
	{feature: Stem, pos: 9, codes: stemCodes},
}

// layouts maps a language to its tag layout. Only morphologically rich
// languages carry tag strings.
var layouts = map[string]layout{
	"latin":  {length: 10, fields: tenForms},
	"hebrew": {length: 10, fields: tenForms},
}

// Languages lists the languages with a declared tag layout.
func Languages() []string {
	out := make([]string, 0, len(layouts))
	for lang := range layouts {
		out = append(out, lang)
	}
	return out
}
