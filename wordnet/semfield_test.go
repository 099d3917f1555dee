package wordnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/mwn/errors"
)

func TestLookupSemfield(t *testing.T) {
	store := newLexiconStore(t)

	field, err := LookupSemfield(store, "zoology", "", English)
	require.NoError(t, err)
	assert.Equal(t, "zoology", field.English())
	assert.Equal(t, "380101", field.Code())

	field, err = LookupSemfield(store, "pure science", "", English)
	require.NoError(t, err)
	assert.Equal(t, "pure_science", field.English())
	assert.Equal(t, "pure science", field.String())
}

func TestLookupSemfield_AmbiguousName(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupSemfield(store, "play", "", English)
	require.Error(t, err)
	assert.True(t, errors.IsAmbiguous(err))

	var disambig *DisambiguationError
	require.True(t, errors.As(err, &disambig))
	assert.ElementsMatch(t, []string{"7601", "8801"}, disambig.Candidates)

	// The code from the error disambiguates.
	field, err := LookupSemfield(store, "play", "8801", English)
	require.NoError(t, err)
	assert.Equal(t, "8801", field.Code())
}

func TestLookupSemfield_NotFound(t *testing.T) {
	store := newLexiconStore(t)

	_, err := LookupSemfield(store, "alchemy", "", English)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSemfieldHierarchy(t *testing.T) {
	store := newLexiconStore(t)

	biology, err := LookupSemfield(store, "biology", "", English)
	require.NoError(t, err)
	zoology, err := LookupSemfield(store, "zoology", "", English)
	require.NoError(t, err)

	hypons, err := biology.Hypons()
	require.NoError(t, err)
	names := make([]string, len(hypons))
	for i, f := range hypons {
		names[i] = f.English()
	}
	assert.Contains(t, names, "zoology")

	hypers, err := zoology.Hypers()
	require.NoError(t, err)
	require.Len(t, hypers, 1)
	assert.Equal(t, "biology", hypers[0].English(), "hierarchy edges are symmetric")
}

func TestSemfieldNormal(t *testing.T) {
	store := newLexiconStore(t)

	zoology, err := LookupSemfield(store, "zoology", "", English)
	require.NoError(t, err)
	normal, err := zoology.Normal()
	require.NoError(t, err)
	require.NotNil(t, normal)
	assert.Equal(t, "biology", normal.English())

	// A top-level field carries no basic-level category.
	art, err := LookupSemfield(store, "art", "", English)
	require.NoError(t, err)
	normal, err = art.Normal()
	require.NoError(t, err)
	assert.Nil(t, normal)
}

func TestSemfieldSynsets(t *testing.T) {
	store := newLexiconStore(t)

	zoology, err := LookupSemfield(store, "zoology", "", English)
	require.NoError(t, err)
	synsets, err := zoology.Synsets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"n#300", "n#400"}, synsetIDs(synsets))

	biology, err := LookupSemfield(store, "biology", "", English)
	require.NoError(t, err)
	synsets, err = biology.Synsets()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"n#300"}, synsetIDs(synsets))
}
