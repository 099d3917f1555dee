package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/config"
	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
	"github.com/lexgraph/mwn/logger"
)

// DbCmd groups database maintenance operations.
var DbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the mwn database",
	Long: `Manage the backing SQLite database.

Examples:
  mwn db init                       # Create the record tables
  mwn db init --languages latin     # Only one language's tables
  mwn db stats                      # Per-language record counts`,
}

var dbLanguagesFlag []string

// indexLanguages use the plain per-pos index; the morphology-model
// languages get a morpho table instead of a synonyms one.
var (
	indexLanguages  = []string{"english", "italian", "spanish", "romanian", "portuguese"}
	morphoLanguages = []string{"latin", "hebrew"}
)

var dbInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the record tables",
	Long:  "Create the per-language record tables and the shared common space in the configured database.",
	RunE:  runDbInit,
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-language record counts",
	RunE:  runDbStats,
}

func init() {
	DbCmd.AddCommand(dbInitCmd)
	DbCmd.AddCommand(dbStatsCmd)
	dbInitCmd.Flags().StringSliceVar(&dbLanguagesFlag, "languages", nil, "Languages to initialize (default: all)")
}

func openStore() (*db.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load configuration")
	}
	store, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}
	return store, cfg, nil
}

func isMorphoLanguage(language string) bool {
	for _, l := range morphoLanguages {
		if l == language {
			return true
		}
	}
	return false
}

func runDbInit(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	languages := dbLanguagesFlag
	if len(languages) == 0 {
		languages = append(append([]string{}, indexLanguages...), morphoLanguages...)
	}

	if err := store.EnsureCommon(logger.Logger); err != nil {
		return err
	}
	for _, language := range languages {
		tables := []string{"synset", "lemma", "index", "relation", "synonyms", "semfield"}
		if isMorphoLanguage(language) {
			tables = []string{"synset", "index", "morpho", "relation"}
		}
		if err := store.EnsureLanguage(language, tables, logger.Logger); err != nil {
			return err
		}
	}

	pterm.Success.Printf("Initialized %d languages in %s\n", len(languages), cfg.Database.Path)
	return nil
}

func runDbStats(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Database: %s\n\n", cfg.Database.Path)

	rows := pterm.TableData{{"Language", "Synsets", "Index", "Morpho", "Relations"}}
	for _, language := range append(append([]string{}, indexLanguages...), morphoLanguages...) {
		counts := make([]string, 0, 4)
		for _, table := range []string{"synset", "index", "morpho", "relation"} {
			n, err := countRows(store, language, table)
			if err != nil {
				return err
			}
			counts = append(counts, n)
		}
		rows = append(rows, append([]string{language}, counts...))
	}
	common, err := countRows(store, "common", "relation")
	if err != nil {
		return err
	}
	rows = append(rows, []string{"common", "-", "-", "-", common})

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

// countRows returns the row count as a string, or "-" when the table does
// not exist for the language.
func countRows(store *db.Store, language, table string) (string, error) {
	has, err := store.HasTable(language, table)
	if err != nil {
		return "", err
	}
	if !has {
		return "-", nil
	}
	var n int
	err = store.DB().QueryRow("SELECT COUNT(*) FROM " + db.TableName(language, table)).Scan(&n)
	if err != nil {
		return "", errors.Wrapf(err, "count %s", db.TableName(language, table))
	}
	return fmt.Sprintf("%d", n), nil
}
