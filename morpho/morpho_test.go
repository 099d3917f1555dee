package morpho

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/mwn/errors"
)

func TestDecode_Noun(t *testing.T) {
	// canis: 3rd-declension masculine singular nominative noun
	f, err := Decode("latin", "n-s---mn3-")
	require.NoError(t, err)

	assert.Equal(t, "n", f.Get(POS))
	assert.Equal(t, "noun", f.Name(POS))
	assert.Equal(t, "s", f.Get(Number))
	assert.Equal(t, "singular", f.Name(Number))
	assert.Equal(t, "m", f.Get(Gender))
	assert.Equal(t, "n", f.Get(Case))
	assert.Equal(t, "nominative", f.Name(Case))
	assert.Equal(t, "3", f.Get(Group))
	assert.Equal(t, "3rd declension", f.Name(Group))
	assert.False(t, f.IsIStem())

	// Person only applies to verbs
	assert.Empty(t, f.Get(Person))
	assert.Empty(t, f.Get(Tense))
}

func TestDecode_Verb(t *testing.T) {
	// amo: 1st person singular present indicative active, 1st conjugation
	f, err := Decode("latin", "v1spia--1-")
	require.NoError(t, err)

	assert.Equal(t, "v", f.Get(POS))
	assert.Equal(t, "1", f.Get(Person))
	assert.Equal(t, "1st person", f.Name(Person))
	assert.Equal(t, "present", f.Name(Tense))
	assert.Equal(t, "indicative", f.Name(Mood))
	assert.Equal(t, "active", f.Name(Voice))
	assert.Equal(t, "1st conjugation", f.Name(Group))

	// Degree only applies to adjectives and adverbs
	assert.Empty(t, f.Get(Degree))
}

func TestDecode_AdjectiveDegree(t *testing.T) {
	f, err := Decode("latin", "ap----mn1-")
	require.NoError(t, err)

	assert.Equal(t, "a", f.Get(POS))
	assert.Equal(t, "p", f.Get(Degree))
	assert.Equal(t, "positive", f.Name(Degree))
	assert.Equal(t, "1st/2nd declension", f.Name(Group))
}

func TestDecode_IStem(t *testing.T) {
	f, err := Decode("latin", "n-s---fn3i")
	require.NoError(t, err)
	assert.True(t, f.IsIStem())
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode("latin", "n-s")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedID(err))

	_, err = Decode("english", "n-s---mn3-")
	require.Error(t, err)
	assert.True(t, errors.IsMalformedID(err), "index-model languages have no tag layout")
}

func TestDecode_SamePure(t *testing.T) {
	a, err := Decode("latin", "n-s---mn3-")
	require.NoError(t, err)
	b, err := Decode("latin", "n-s---mn3-")
	require.NoError(t, err)
	assert.Equal(t, a.values, b.values)
}

func TestFromRow_Latin(t *testing.T) {
	m, err := FromRow("latin", []string{
		"l#12345", "canis", "n", "can", "x=canum", "", "'ka.nis", "n-s---mn3-",
	})
	require.NoError(t, err)

	assert.Equal(t, "canis", m.Lemma())
	assert.Equal(t, "n", m.POS())
	assert.Equal(t, []string{"can"}, m.PrincipalParts())
	require.Len(t, m.IrregularForms(), 1)
	assert.Equal(t, FormPair{Key: "x", Form: "canum"}, m.IrregularForms()[0])
	assert.Equal(t, "'ka.nis", m.Pronunciation())
	require.NotNil(t, m.Features())
	assert.Equal(t, "masculine", m.Features().Name(Gender))
}

func TestFromRow_POSFromTag(t *testing.T) {
	m, err := FromRow("latin", []string{
		"", "currere", "", "curr cucurr curs", "", "", "", "v-----mn3-",
	})
	require.NoError(t, err)
	assert.Equal(t, "v", m.POS(), "empty pos column decodes from the tag")
}

func TestFromRow_Hebrew(t *testing.T) {
	m, err := FromRow("hebrew", []string{
		"h#1", "shalom", "n", "", "", "", "", "שלום", "שלום", "", "shalom", "shalom", "n-s---mn--",
	})
	require.NoError(t, err)
	assert.Equal(t, "שלום", m.Undotted())
	assert.Equal(t, "shalom", m.TranslitDotted())
}

func TestFromRow_WrongArity(t *testing.T) {
	_, err := FromRow("latin", []string{"a", "b"})
	require.Error(t, err)
	assert.True(t, errors.IsMalformedID(err))
}

func TestCitationForms_FirstConjugationVerb(t *testing.T) {
	m, err := FromRow("latin", []string{
		"", "amo", "v", "am amav amat", "", "", "", "v1spia--1-",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"amo", "amare", "amavisse", "amatum", "1"}, m.CitationForms())
}

func TestCitationForms_DeponentVerb(t *testing.T) {
	m, err := FromRow("latin", []string{
		"", "sequor", "v", "sequ secut secut", "", "", "", "v1spid--3-",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"sequor", "sequeri", "secutus sum", "3"}, m.CitationForms())
}

func TestCitationForms_Noun(t *testing.T) {
	m, err := FromRow("latin", []string{
		"", "puella", "n", "puell", "", "", "", "n-s---fn1-",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"puella", "puellae", "f."}, m.CitationForms())
}

func TestCitationForms_Adjective(t *testing.T) {
	m, err := FromRow("latin", []string{
		"", "bonus", "a", "bon", "", "", "", "ap----mn1-",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bonus", "bona", "bonum"}, m.CitationForms())
}

func TestCitationForms_NonLatinFallback(t *testing.T) {
	m, err := FromRow("hebrew", []string{
		"", "shalom", "n", "", "", "", "", "", "", "", "", "", "n-s---mn--",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"shalom"}, m.CitationForms())
}
