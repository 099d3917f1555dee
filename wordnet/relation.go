package wordnet

import (
	"database/sql"

	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
)

// Hypernym is the upward taxonomy edge followed by all depth and root
// computations.
const Hypernym = "@"

// relationTypes maps (part of speech, type code) to a human-readable name.
// The valid codes differ per part of speech: nouns carry part/member/
// substance and role relations, verbs carry entailment and causation,
// adjectives carry similarity and participles.
var relationTypes = map[string]map[string]string{
	"n": {
		"!":  "antonym (lexical)",
		"@":  "hypernym",
		"~":  "hyponym",
		"#m": "member-of",
		"#s": "substance-of",
		"#p": "part-of",
		"%m": "has-member",
		"%s": "has-substance",
		"%p": "has-part",
		"=":  "attribute",
		"|":  "nearest",
		"+r": "has-role",
		"-r": "is-role-of",
		"+c": "composed-of (lexical)",
		"-c": "composes (lexical)",
		"\\": "derived-from (lexical)",
		"/":  "related-to (lexical)",
	},
	"v": {
		"!":  "antonym (lexical)",
		"@":  "hypernym",
		"~":  "hyponym",
		"*":  "entailment",
		">":  "causes",
		"^":  "also-see",
		"$":  "verb-group",
		"|":  "nearest",
		"+c": "composed-of (lexical)",
		"-c": "composes (lexical)",
		"\\": "derived-from (lexical)",
		"/":  "related-to (lexical)",
	},
	"a": {
		"!":  "antonym (lexical)",
		"@":  "hypernym",
		"~":  "hyponym",
		"&":  "similar-to",
		"<":  "participle (lexical)",
		"\\": "pertains-to (lexical)",
		"=":  "is-value-of",
		"^":  "also-see",
		"|":  "nearest",
		"+c": "composed-of (lexical)",
		"-c": "composes (lexical)",
		"/":  "related-to (lexical)",
	},
	"r": {
		"!":  "antonym (lexical)",
		"@":  "hypernym",
		"~":  "hyponym",
		"\\": "derived-from (lexical)",
		"|":  "nearest",
		"+c": "composed-of (lexical)",
		"-c": "composes (lexical)",
		"/":  "related-to (lexical)",
	},
}

// lexicalTypes are relation types connecting specific surface forms rather
// than whole synsets.
var lexicalTypes = map[string]bool{
	"!":  true,
	"\\": true,
	"/":  true,
	"+c": true,
	"-c": true,
	"<":  true,
}

// RelationTypeName resolves a (pos, type) pair to its human-readable name.
// Requesting a type not defined for the part of speech is a domain error,
// distinct from "no such relations exist".
func RelationTypeName(pos, typ string) (string, error) {
	byPOS, ok := relationTypes[pos]
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidRelationType, "unknown part of speech %q", pos)
	}
	name, ok := byPOS[typ]
	if !ok {
		return "", errors.Wrapf(errors.ErrInvalidRelationType,
			"no relation type %q for %q", typ, pos)
	}
	return name, nil
}

// IsLexicalType reports whether a relation type connects surface forms.
func IsLexicalType(typ string) bool {
	return lexicalTypes[typ]
}

// Relation is a directed typed edge between two synsets, optionally carrying
// the specific source and target surface forms when the edge is lexical.
// Immutable once built.
type Relation struct {
	store *db.Store

	typ      string
	sourceID string
	targetID string
	wSource  string
	wTarget  string
	status   string
	language Language
}

func newRelation(store *db.Store, language Language, typ, sourceID, targetID, wSource, wTarget, status string) *Relation {
	if status == "NEW" {
		status = "new"
	} else if status != "new" {
		status = ""
	}
	return &Relation{
		store:    store,
		typ:      typ,
		sourceID: sourceID,
		targetID: targetID,
		wSource:  wSource,
		wTarget:  wTarget,
		status:   status,
		language: language,
	}
}

// Type returns the relation type code.
func (r *Relation) Type() string { return r.typ }

// TypeName returns the human-readable name of the relation type, resolved
// against the source synset's part of speech.
func (r *Relation) TypeName() (string, error) {
	if r.sourceID == "" {
		return "", errors.Wrap(errors.ErrMalformedID, "relation has no source id")
	}
	return RelationTypeName(string(r.sourceID[0]), r.typ)
}

// SourceID returns the source synset id.
func (r *Relation) SourceID() string { return r.sourceID }

// TargetID returns the target synset id.
func (r *Relation) TargetID() string { return r.targetID }

// SourceForm returns the source surface form for lexical relations, "" otherwise.
func (r *Relation) SourceForm() string { return r.wSource }

// TargetForm returns the target surface form for lexical relations, "" otherwise.
func (r *Relation) TargetForm() string { return r.wTarget }

// IsLexical reports whether the edge connects specific surface forms rather
// than whole synsets.
func (r *Relation) IsLexical() bool {
	return r.wSource != "" && r.wTarget != ""
}

// Status returns "" for ordinary edges and "new" for newly added ones.
func (r *Relation) Status() string { return r.status }

// IsNew reports whether the edge was newly added to the resource.
func (r *Relation) IsNew() bool { return r.status == "new" }

// Language returns the language the edge was fetched through.
func (r *Relation) Language() Language { return r.language }

func (r *Relation) viewLanguage() Language {
	if r.language == Common {
		return English
	}
	return r.language
}

// Source resolves the source synset through fallback resolution.
func (r *Relation) Source() (*Synset, error) {
	return LookupSynset(r.store, r.sourceID, r.viewLanguage())
}

// Target resolves the target synset through fallback resolution.
func (r *Relation) Target() (*Synset, error) {
	return LookupSynset(r.store, r.targetID, r.viewLanguage())
}

// SourceLemma materializes the source surface form as a Lemma, or nil for
// non-lexical relations.
func (r *Relation) SourceLemma() (*Lemma, error) {
	if r.wSource == "" {
		return nil, nil
	}
	return newLemma(r.store, r.wSource, string(r.sourceID[0]), r.viewLanguage()), nil
}

// TargetLemma materializes the target surface form as a Lemma, or nil for
// non-lexical relations.
func (r *Relation) TargetLemma() (*Lemma, error) {
	if r.wTarget == "" {
		return nil, nil
	}
	return newLemma(r.store, r.wTarget, string(r.targetID[0]), r.viewLanguage()), nil
}

// scanRelations drains a relation query into Relation values. The rows must
// carry the full six-column relation shape.
func scanRelations(store *db.Store, language Language, rows *sql.Rows) ([]*Relation, error) {
	if rows == nil {
		return nil, nil
	}
	defer rows.Close()

	var relations []*Relation
	for rows.Next() {
		var typ, sourceID, targetID, wSource, wTarget, status sql.NullString
		if err := rows.Scan(&typ, &sourceID, &targetID, &wSource, &wTarget, &status); err != nil {
			return nil, errors.Wrap(err, "scan relation row")
		}
		relations = append(relations, newRelation(store, language,
			typ.String, sourceID.String, targetID.String,
			wSource.String, wTarget.String, status.String))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate relation rows")
	}
	return relations, nil
}

// relationColumns is the physical column order of the relation tables.
const relationColumns = "type, id_source, id_target, w_source, w_target, status"
