package wordnet

import (
	"testing"

	"github.com/lexgraph/mwn/db"
	mwntest "github.com/lexgraph/mwn/internal/testing"
)

func newLexiconStore(t *testing.T) *db.Store {
	t.Helper()
	store := mwntest.CreateTestStore(t, "english", "italian", "latin")
	mwntest.SeedLexicon(t, store)
	return store
}
