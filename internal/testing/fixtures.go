package testing

import (
	"testing"

	"github.com/lexgraph/mwn/db"
)

// SeedLexicon populates a test store with a small multilingual dataset: an
// English noun taxonomy rooted at entity, a noun/verb homograph, an
// adjective antonym pair, Latin morphology records, an Italian view of the
// dog concept, and a slice of the semantic-field hierarchy.
func SeedLexicon(t *testing.T, store *db.Store) {
	t.Helper()

	synsets := []struct{ id, word, gloss string }{
		{"n#100", "entity", "that which is perceived to exist"},
		{"n#200", "object thing", "a physical entity"},
		{"n#300", "animal beast", "a living organism with voluntary movement"},
		{"n#350", "domestic_animal", "an animal kept by humans"},
		{"n#400", "dog domestic_dog", "a domesticated canine mammal"},
		{"n#500", "run", "a score in baseball"},
		{"v#600", "run", "move fast by using one's feet"},
		{"a#700", "fast", "acting or moving quickly"},
		{"a#800", "slow", "not moving quickly"},
	}
	for _, s := range synsets {
		Exec(t, store, "INSERT INTO english_synset (id, word, gloss) VALUES (?, ?, ?)",
			s.id, s.word, s.gloss)
	}

	index := []struct{ lemma, n, v, a, r string }{
		{"entity", "n#100", "", "", ""},
		{"object", "n#200", "", "", ""},
		{"thing", "n#200", "", "", ""},
		{"animal", "n#300", "", "", ""},
		{"beast", "n#300", "", "", ""},
		{"domestic_animal", "n#350", "", "", ""},
		{"dog", "n#400", "", "", ""},
		{"domestic_dog", "n#400", "", "", ""},
		{"run", "n#500", "v#600", "", ""},
		{"fast", "", "", "a#700", ""},
		{"slow", "", "", "a#800", ""},
	}
	for _, r := range index {
		Exec(t, store, "INSERT INTO english_index (lemma, id_n, id_v, id_a, id_r) VALUES (?, ?, ?, ?, ?)",
			r.lemma, r.n, r.v, r.a, r.r)
	}

	relations := []struct{ typ, source, target, wSource, wTarget string }{
		{"@", "n#200", "n#100", "", ""},
		{"@", "n#300", "n#200", "", ""},
		{"@", "n#350", "n#300", "", ""},
		{"@", "n#400", "n#300", "", ""},
		{"@", "n#400", "n#350", "", ""},
		{"~", "n#300", "n#400", "", ""},
	}
	for _, r := range relations {
		Exec(t, store, "INSERT INTO common_relation (type, id_source, id_target, w_source, w_target, status) VALUES (?, ?, ?, ?, ?, ?)",
			r.typ, r.source, r.target, r.wSource, r.wTarget, "")
	}

	lexical := []struct{ typ, source, target, wSource, wTarget string }{
		{"!", "a#700", "a#800", "fast", "slow"},
		{"!", "a#800", "a#700", "slow", "fast"},
		{"\\", "v#600", "n#500", "run", "run"},
	}
	for _, r := range lexical {
		Exec(t, store, "INSERT INTO english_relation (type, id_source, id_target, w_source, w_target, status) VALUES (?, ?, ?, ?, ?, ?)",
			r.typ, r.source, r.target, r.wSource, r.wTarget, "")
	}

	// Italian view of the dog concept, plus one synset of Italian origin.
	Exec(t, store, "INSERT INTO italian_synset (id, word, gloss) VALUES (?, ?, ?)",
		"n#400", "cane", "mammifero domestico")
	Exec(t, store, "INSERT INTO italian_synset (id, word, gloss) VALUES (?, ?, ?)",
		"n#N900", "cucciolo", "un cane giovane")
	Exec(t, store, "INSERT INTO italian_index (lemma, id_n, id_v, id_a, id_r) VALUES (?, ?, ?, ?, ?)",
		"cane", "n#400", "", "", "")
	Exec(t, store, "INSERT INTO italian_index (lemma, id_n, id_v, id_a, id_r) VALUES (?, ?, ?, ?, ?)",
		"cucciolo", "n#N900", "", "", "")
	Exec(t, store, "INSERT INTO common_relation (type, id_source, id_target, w_source, w_target, status) VALUES (?, ?, ?, ?, ?, ?)",
		"@", "n#N900", "n#400", "", "", "")

	// Latin morphology records. populus is deliberately homographic.
	morpho := []struct{ id, lemma, pos, parts, tag string }{
		{"l001", "canis", "n", "", "n-s---mn3-"},
		{"l002", "populus", "n", "", "n-s---fn2-"},
		{"l003", "populus", "n", "", "n-s---mn2-"},
		{"l004", "amo", "v", "amav amat", "v1spia--1-"},
	}
	for _, m := range morpho {
		Exec(t, store, "INSERT INTO latin_morpho (id, lemma, pos, principal_parts, irregular_forms, alternative_forms, pronunciation, miscellanea) VALUES (?, ?, ?, '', '', '', '', ?)",
			m.id, m.lemma, m.pos, m.tag)
	}
	Exec(t, store, "INSERT INTO latin_index (lemma, id_n, id_v, id_a, id_r) VALUES (?, ?, ?, ?, ?)",
		"canis", "n#400", "", "", "")

	semfields := []struct{ code, english, hypers, hypons, normal string }{
		{"37", "pure_science", "", "biology", ""},
		{"3801", "biology", "pure_science", "zoology botany", "biology"},
		{"380101", "zoology", "biology", "", "biology"},
		{"380102", "botany", "biology", "", "biology"},
		{"76", "art", "", "play", ""},
		{"7601", "play", "art", "", ""},
		{"88", "sport", "", "play", ""},
		{"8801", "play", "sport", "", ""},
	}
	for _, f := range semfields {
		Exec(t, store, "INSERT INTO common_semfield_hierarchy (code, english, hypers, hypons, normal) VALUES (?, ?, ?, ?, ?)",
			f.code, f.english, f.hypers, f.hypons, f.normal)
	}
	memberships := []struct{ english, synset string }{
		{"zoology biology", "n#300"},
		{"zoology", "n#400"},
	}
	for _, m := range memberships {
		Exec(t, store, "INSERT INTO common_semfield (english, synset) VALUES (?, ?)", m.english, m.synset)
	}
}
