package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return New(sqlDB, nil)
}

func TestTableName(t *testing.T) {
	assert.Equal(t, "latin_morpho", TableName("latin", "morpho"))
	assert.Equal(t, "common_relation", TableName("common", "relation"))
}

func TestSelect_MissingTableIsAbsent(t *testing.T) {
	store := newTestStore(t)

	rows, err := store.Select("latin", "morpho", "lemma", "pos=?", "n")
	require.NoError(t, err)
	assert.Nil(t, rows, "missing table should report absent, not fail")
}

func TestSelectRow_MissingTableIsAbsent(t *testing.T) {
	store := newTestStore(t)

	row, err := store.SelectRow("english", "index", "id_n", "lemma=?", "dog")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestSelect_MalformedQueryFails(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureCommon(nil))

	_, err := store.Select("common", "relation", "no_such_column", "")
	require.Error(t, err, "malformed queries must surface, unlike missing tables")
}

func TestEnsureLanguageAndQuery(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureLanguage("english", []string{"synset", "index"}, nil))

	_, err := store.DB().Exec(
		"INSERT INTO english_synset (id, word, phrase, gloss) VALUES (?, ?, ?, ?)",
		"n#00001740", "entity", "", "that which exists",
	)
	require.NoError(t, err)

	rows, err := store.Select("english", "synset", "id, gloss", "id=?", "n#00001740")
	require.NoError(t, err)
	require.NotNil(t, rows)
	defer rows.Close()

	require.True(t, rows.Next())
	var id, gloss string
	require.NoError(t, rows.Scan(&id, &gloss))
	assert.Equal(t, "n#00001740", id)
	assert.Equal(t, "that which exists", gloss)
}

func TestHasTable(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureLanguage("latin", []string{"morpho"}, nil))

	present, err := store.HasTable("latin", "morpho")
	require.NoError(t, err)
	assert.True(t, present)

	present, err = store.HasTable("latin", "index")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestEnsureLanguage_HebrewMorphoColumns(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.EnsureLanguage("hebrew", []string{"morpho"}, nil))

	_, err := store.DB().Exec(
		"INSERT INTO hebrew_morpho (lemma, pos, undotted, translit_dotted) VALUES (?, ?, ?, ?)",
		"test", "n", "x", "y",
	)
	require.NoError(t, err)
}

func TestIsMissingTable(t *testing.T) {
	store := newTestStore(t)

	_, err := store.DB().Query("SELECT * FROM nope_synset")
	require.Error(t, err)
	assert.True(t, IsMissingTable(err))
	assert.False(t, IsMissingTable(nil))
}
