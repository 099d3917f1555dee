package wordnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexgraph/mwn/errors"
	mwntest "github.com/lexgraph/mwn/internal/testing"
)

func synsetIDs(synsets []*Synset) []string {
	ids := make([]string, len(synsets))
	for i, s := range synsets {
		ids[i] = s.ID()
	}
	return ids
}

func TestClosure(t *testing.T) {
	store := newLexiconStore(t)

	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)

	closure, err := dog.Closure(Hypernym, -1)
	require.NoError(t, err)
	ids := synsetIDs(closure)
	assert.ElementsMatch(t, []string{"n#300", "n#350", "n#200", "n#100"}, ids)
	assert.NotContains(t, ids, "n#400", "origin is never part of its closure")

	// Nearest first: the direct parents precede the grandparents.
	assert.ElementsMatch(t, []string{"n#300", "n#350"}, ids[:2])
}

func TestClosure_DepthBound(t *testing.T) {
	store := newLexiconStore(t)

	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)

	closure, err := dog.Closure(Hypernym, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"n#300", "n#350"}, synsetIDs(closure))

	closure, err = dog.Closure(Hypernym, 0)
	require.NoError(t, err)
	assert.Empty(t, closure)
}

func TestClosure_NoDuplicates(t *testing.T) {
	store := newLexiconStore(t)

	// dog reaches animal both directly and through domestic_animal.
	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)
	closure, err := dog.Closure(Hypernym, -1)
	require.NoError(t, err)

	seen := map[string]int{}
	for _, id := range synsetIDs(closure) {
		seen[id]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, id)
	}
}

func TestClosure_UndefinedType(t *testing.T) {
	store := newLexiconStore(t)

	verb, err := LookupSynset(store, "v#600", English)
	require.NoError(t, err)
	_, err = verb.Closure("#p", -1)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidRelationType(err))
}

func TestMaxDepth(t *testing.T) {
	store := newLexiconStore(t)

	tests := []struct {
		id   string
		want int
	}{
		{"n#100", 0},
		{"n#200", 1},
		{"n#300", 2},
		{"n#350", 3},
		{"n#400", 4}, // via domestic_animal
	}
	for _, tt := range tests {
		synset, err := LookupSynset(store, tt.id, English)
		require.NoError(t, err)
		depth, err := synset.MaxDepth()
		require.NoError(t, err)
		assert.Equal(t, tt.want, depth, tt.id)
	}
}

func TestMinDepth(t *testing.T) {
	store := newLexiconStore(t)

	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)
	depth, err := dog.MinDepth()
	require.NoError(t, err)
	assert.Equal(t, 3, depth, "direct animal edge is the shortest chain")

	entity, err := LookupSynset(store, "n#100", English)
	require.NoError(t, err)
	depth, err = entity.MinDepth()
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestDepth_CyclicData(t *testing.T) {
	store := mwntest.CreateTestStore(t, "english")
	for _, id := range []string{"n#1", "n#2"} {
		mwntest.Exec(t, store, "INSERT INTO english_synset (id, word, gloss) VALUES (?, '', '')", id)
	}
	mwntest.Exec(t, store, "INSERT INTO common_relation (type, id_source, id_target, w_source, w_target, status) VALUES ('@', 'n#1', 'n#2', '', '', '')")
	mwntest.Exec(t, store, "INSERT INTO common_relation (type, id_source, id_target, w_source, w_target, status) VALUES ('@', 'n#2', 'n#1', '', '', '')")

	synset, err := LookupSynset(store, "n#1", English)
	require.NoError(t, err)
	depth, err := synset.MaxDepth()
	require.NoError(t, err)
	assert.Equal(t, 2, depth, "the walk terminates; the revisited node contributes zero")

	depth, err = synset.MinDepth()
	require.NoError(t, err)
	assert.Equal(t, 2, depth)
}

func TestRoots(t *testing.T) {
	store := newLexiconStore(t)

	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)
	roots, err := dog.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "n#100", roots[0].ID())

	entity, err := LookupSynset(store, "n#100", English)
	require.NoError(t, err)
	roots, err = entity.Roots()
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "n#100", roots[0].ID(), "a synset with no hypernyms is its own root")
}

func TestPathsToRoot(t *testing.T) {
	store := newLexiconStore(t)

	dog, err := LookupSynset(store, "n#400", English)
	require.NoError(t, err)
	paths, err := dog.PathsToRoot()
	require.NoError(t, err)
	require.Len(t, paths, 2, "one path per hypernym branch")

	for _, path := range paths {
		require.NotEmpty(t, path)
		assert.Equal(t, "n#100", path[0].ID(), "every path starts at the root")
		assert.Equal(t, "n#400", path[len(path)-1].ID(), "every path ends at the synset itself")
	}

	entity, err := LookupSynset(store, "n#100", English)
	require.NoError(t, err)
	paths, err = entity.PathsToRoot()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Len(t, paths[0], 1)
	assert.Equal(t, "n#100", paths[0][0].ID())
}
