package testing

import (
	"testing"
)

func TestCreateTestStore_VisibleUnderOpenCursor(t *testing.T) {
	store := CreateTestStore(t, "english")
	Exec(t, store, "INSERT INTO english_synset (id, word, gloss) VALUES ('n#1', 'entity', '')")
	Exec(t, store, "INSERT INTO english_synset (id, word, gloss) VALUES ('n#2', 'object', '')")

	// A nested query runs on a second pooled connection while the first
	// cursor is still open; both must see the same database.
	rows, err := store.DB().Query("SELECT id FROM english_synset")
	if err != nil {
		t.Fatalf("Failed to query synsets: %v", err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			t.Fatalf("Failed to scan synset id: %v", err)
		}
		var word string
		if err := store.DB().QueryRow("SELECT word FROM english_synset WHERE id=?", id).Scan(&word); err != nil {
			t.Fatalf("Nested query for %s failed: %v", id, err)
		}
		if word == "" {
			t.Errorf("Nested query for %s saw no data", id)
		}
		seen++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Cursor error: %v", err)
	}
	if seen != 2 {
		t.Errorf("Expected 2 synsets, saw %d", seen)
	}
}
