package commands

import (
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/config"
	"github.com/lexgraph/mwn/db"
	"github.com/lexgraph/mwn/errors"
	"github.com/lexgraph/mwn/logger"
	"github.com/lexgraph/mwn/wordnet"
)

// openWordNet loads the configuration, opens the backing store and builds
// the language view requested by the --language flag, falling back to the
// configured default language.
func openWordNet(cmd *cobra.Command) (*wordnet.WordNet, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load configuration")
	}

	language, _ := cmd.Flags().GetString("language")
	if language == "" {
		language = cfg.Language
	}

	store, err := db.Open(cfg.Database.Path, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open database")
	}

	wn, err := wordnet.New(store, wordnet.Language(language), logger.Logger)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return wn, func() { store.Close() }, nil
}
