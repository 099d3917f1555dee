package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/cmd/mwn/commands"
	"github.com/lexgraph/mwn/config"
	"github.com/lexgraph/mwn/logger"
)

var rootCmd = &cobra.Command{
	Use:   "mwn",
	Short: "mwn - Multilingual WordNet query tool",
	Long: `mwn - Query the MultiWordNet lexical database.

Resolve words to their senses, inspect synsets and their typed relations,
walk the hypernym taxonomy, and browse the semantic-field hierarchy across
the supported languages.

Examples:
  mwn lookup dog                   # Resolve a word to its senses
  mwn lookup canis --language latin
  mwn synset n#02001223            # Inspect one synset
  mwn depth n#02001223             # Taxonomy depth and root paths
  mwn semfield zoology             # Browse a semantic field
  mwn db init                      # Prepare an empty database
  mwn db stats                     # Per-language record counts`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := logger.InitializeWithLevel(cfg.Log.JSON, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().StringP("language", "l", "", "Wordnet language (default from configuration)")

	rootCmd.AddCommand(commands.LookupCmd)
	rootCmd.AddCommand(commands.SynsetCmd)
	rootCmd.AddCommand(commands.SemfieldCmd)
	rootCmd.AddCommand(commands.DepthCmd)
	rootCmd.AddCommand(commands.DbCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
