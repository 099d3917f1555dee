package testing

import (
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lexgraph/mwn/db"
)

// CreateTestStore creates an in-memory SQLite store with the record tables
// for the given languages plus the common space.
// Automatically registers cleanup via t.Cleanup().
//
// The DSN is a named shared-cache memory database rather than the plain
// ":memory:" form: database/sql pools connections, and with ":memory:"
// every pooled connection gets its own empty database, so a query issued
// while another cursor is open would see no data.
func CreateTestStore(t *testing.T, languages ...string) *db.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	store, err := db.Open("file:"+name+"?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("Failed to create test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})

	if err := store.EnsureCommon(nil); err != nil {
		t.Fatalf("Failed to create common tables: %v", err)
	}
	for _, language := range languages {
		tables := []string{"synset", "index", "relation", "synonyms", "semfield"}
		switch language {
		case "latin", "hebrew":
			tables = []string{"synset", "index", "morpho", "relation"}
		}
		if err := store.EnsureLanguage(language, tables, nil); err != nil {
			t.Fatalf("Failed to create %s tables: %v", language, err)
		}
	}
	return store
}

// Exec runs one statement against the store, failing the test on error.
func Exec(t *testing.T, store *db.Store, stmt string, args ...interface{}) {
	t.Helper()
	if _, err := store.DB().Exec(stmt, args...); err != nil {
		t.Fatalf("Failed to exec %q: %v", stmt, err)
	}
}
