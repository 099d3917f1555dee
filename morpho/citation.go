package morpho

// CitationForms expands a Latin record into its dictionary citation forms:
// all principal parts spelled out with the endings implied by the
// conjugation or declension group. For other languages, or when the record
// carries too little information, it falls back to the bare lemma.
func (m *Morpho) CitationForms() []string {
	if m.language != "latin" || m.features == nil {
		return []string{m.lemma}
	}

	switch m.pos {
	case "v":
		return m.verbCitation()
	case "n":
		return m.nounCitation()
	case "a":
		return m.adjectiveCitation()
	}
	return []string{m.lemma}
}

func (m *Morpho) verbCitation() []string {
	pp := m.principalParts
	group := m.features.Get(Group)

	switch len(pp) {
	case 3:
		var thematic string
		switch group {
		case "1":
			thematic = "a"
		case "2", "3":
			thematic = "e"
		default:
			thematic = "i"
		}
		if m.features.Get(Voice) == "a" {
			return []string{
				m.lemma,
				pp[0] + thematic + "re",
				pp[1] + "isse",
				pp[2] + "um",
				group,
			}
		}
		// Deponent paradigm: infinitive in -ri, perfect periphrastic
		return []string{
			m.lemma,
			pp[0] + thematic + "ri",
			pp[2] + "us sum",
			group,
		}
	case 2:
		return []string{m.lemma, pp[0] + "isse", pp[1], group}
	}
	return []string{m.lemma}
}

func (m *Morpho) nounCitation() []string {
	pp := m.principalParts
	if len(pp) == 0 {
		return []string{m.lemma}
	}

	singular := m.features.Get(Number) == "s"
	var genitive string
	switch m.features.Get(Group) {
	case "1":
		genitive = pick(singular, "ae", "arum")
	case "2":
		genitive = pick(singular, "i", "orum")
	case "3":
		genitive = pick(singular, "is", "um")
	case "4":
		genitive = pick(singular, "us", "uum")
	default:
		genitive = pick(singular, "ēi", "erum")
	}

	return []string{m.lemma, pp[0] + genitive, m.features.Get(Gender) + "."}
}

func (m *Morpho) adjectiveCitation() []string {
	pp := m.principalParts
	if len(pp) == 0 {
		return []string{m.lemma}
	}

	switch m.features.Get(Group) {
	case "1":
		return []string{m.lemma, pp[0] + "a", pp[0] + "um"}
	case "3":
		switch m.features.Get(Gender) {
		case "m": // three-termination
			return []string{m.lemma, pp[0] + "is", pp[0] + "e", "m.f.n."}
		case "c": // two-termination
			return []string{m.lemma, pp[0] + "e", "mf.n."}
		case "a": // one-termination
			return []string{m.lemma, "mfn."}
		}
	}
	return []string{m.lemma}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
