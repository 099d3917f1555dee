package wordnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/mwn/errors"
)

func TestLookupLemma_ExplicitPOS(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "dog", "n", English)
	require.NoError(t, err)
	assert.Equal(t, "dog", lemma.Form())
	assert.Equal(t, "n", lemma.POS())
	assert.Equal(t, English, lemma.Language())
}

func TestLookupLemma_PhraseNormalization(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "domestic animal", "n", English)
	require.NoError(t, err)
	assert.Equal(t, "domestic_animal", lemma.Form())
	assert.Equal(t, "domestic animal", lemma.Display())
}

func TestLookupLemma_WildcardUnique(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "dog", AnyPOS, English)
	require.NoError(t, err)
	assert.Equal(t, "n", lemma.POS(), "wildcard resolves when only one pos exists")
}

func TestLookupLemma_WildcardAmbiguous(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupLemma(store, "run", AnyPOS, English)
	require.Error(t, err)
	assert.True(t, errors.IsAmbiguous(err))

	var disambig *DisambiguationError
	require.True(t, errors.As(err, &disambig))
	assert.ElementsMatch(t, []string{"n", "v"}, disambig.Candidates)
}

func TestLookupLemma_ExplicitPOSNeverDisambiguates(t *testing.T) {
	store := newLexiconStore(t)

	// run exists as noun and verb; an explicit pos bypasses disambiguation.
	lemma, err := LookupLemma(store, "run", "v", English)
	require.NoError(t, err)
	assert.Equal(t, "v", lemma.POS())
}

func TestLookupLemma_NotFound(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupLemma(store, "unicorn", "n", English)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	// Present form, absent part of speech.
	_, err = LookupLemma(store, "dog", "v", English)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestLookupLemma_MorphologyModel(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "canis", "n", Latin)
	require.NoError(t, err)
	assert.Equal(t, "canis", lemma.Form())
	assert.Equal(t, "l001", lemma.MorphoID())

	record, err := lemma.Morpho()
	require.NoError(t, err)
	assert.Equal(t, "n-s---mn3-", record.Tag())
}

func TestLookupLemma_MorphologyDisambiguation(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupLemma(store, "populus", "n", Latin)
	require.Error(t, err)
	assert.True(t, errors.IsAmbiguous(err))

	var disambig *DisambiguationError
	require.True(t, errors.As(err, &disambig))
	assert.Len(t, disambig.Candidates, 2)

	// A tag filter narrows to one record.
	lemma, err := LookupLemmaFiltered(store, "populus", "n", "", "n-s---fn2-", Latin)
	require.NoError(t, err)
	assert.Equal(t, "l002", lemma.MorphoID())
}

func TestLookupLemmaFiltered_FiltersNeedMorphology(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupLemmaFiltered(store, "dog", "n", "", "n-s---mn3-", English)
	require.Error(t, err)
}

func TestLemmaSynsets(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "run", "v", English)
	require.NoError(t, err)
	synsets, err := lemma.Synsets()
	require.NoError(t, err)
	require.Len(t, synsets, 1)
	assert.Equal(t, "v#600", synsets[0].ID())
}

func TestLemmaSynsets_CrossLanguage(t *testing.T) {
	store := newLexiconStore(t)

	// Latin canis is indexed against the English dog synset; the origin
	// store serves the record.
	lemma, err := LookupLemma(store, "canis", "n", Latin)
	require.NoError(t, err)
	synsets, err := lemma.Synsets()
	require.NoError(t, err)
	require.Len(t, synsets, 1)
	assert.Equal(t, "n#400", synsets[0].ID())
}

func TestLemmaSynonyms(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "dog", "n", English)
	require.NoError(t, err)
	synonyms, err := lemma.Synonyms()
	require.NoError(t, err)
	require.Len(t, synonyms, 1)
	assert.Equal(t, "domestic_dog", synonyms[0].Form())
}

func TestLemmaAntonyms(t *testing.T) {
	store := newLexiconStore(t)

	fast, err := LookupLemma(store, "fast", "a", English)
	require.NoError(t, err)
	antonyms, err := fast.Antonyms()
	require.NoError(t, err)
	require.Len(t, antonyms, 1)
	assert.Equal(t, "slow", antonyms[0].Form())

	slow, err := LookupLemma(store, "slow", "a", English)
	require.NoError(t, err)
	antonyms, err = slow.Antonyms()
	require.NoError(t, err)
	require.Len(t, antonyms, 1)
	assert.Equal(t, "fast", antonyms[0].Form())
}

func TestLemmaDerivates(t *testing.T) {
	store := newLexiconStore(t)

	lemma, err := LookupLemma(store, "run", "n", English)
	require.NoError(t, err)
	derivates, err := lemma.Derivates()
	require.NoError(t, err)
	require.Len(t, derivates, 1)
	assert.Equal(t, "run", derivates[0].Form())
	assert.Equal(t, "v", derivates[0].POS())

	verbs, err := lemma.DerivatesByPOS("v")
	require.NoError(t, err)
	assert.Len(t, verbs, 1)
	nouns, err := lemma.DerivatesByPOS("n")
	require.NoError(t, err)
	assert.Empty(t, nouns)
}

func TestLemmaEqual(t *testing.T) {
	store := newLexiconStore(t)

	a, err := LookupLemma(store, "dog", "n", English)
	require.NoError(t, err)
	b, err := LookupLemma(store, "dog", "n", English)
	require.NoError(t, err)
	c, err := LookupLemma(store, "run", "v", English)
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
