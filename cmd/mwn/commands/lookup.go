package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/errors"
	"github.com/lexgraph/mwn/wordnet"
)

// LookupCmd resolves a word to its lemmas and senses.
var LookupCmd = &cobra.Command{
	Use:   "lookup <form>",
	Short: "Resolve a word to its senses",
	Long: `Resolve a surface form to its lemmas and list the synsets each one
participates in.

Without --pos the form must be unambiguous; when it exists under several
parts of speech the command lists the candidates so you can re-run with an
explicit --pos.

Examples:
  mwn lookup dog
  mwn lookup run --pos v
  mwn lookup "domestic animal"
  mwn lookup canis --language latin
  mwn lookup popul --mode prefix --language latin`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

var (
	lookupPOSFlag  string
	lookupTagFlag  string
	lookupModeFlag string
)

func init() {
	LookupCmd.Flags().StringVarP(&lookupPOSFlag, "pos", "p", wordnet.AnyPOS, "Part of speech (n, v, a, r)")
	LookupCmd.Flags().StringVarP(&lookupTagFlag, "tag", "t", "", "Morphological tag filter (morphology-model languages)")
	LookupCmd.Flags().StringVarP(&lookupModeFlag, "mode", "m", "exact", "Match mode: exact, prefix, suffix, contains")
	LookupCmd.Flags().Bool("synonyms", false, "Also list synonyms per lemma")
}

func parseMatchMode(mode string) (wordnet.MatchMode, error) {
	switch mode {
	case "exact":
		return wordnet.MatchExact, nil
	case "prefix":
		return wordnet.MatchPrefix, nil
	case "suffix":
		return wordnet.MatchSuffix, nil
	case "contains":
		return wordnet.MatchContains, nil
	}
	return 0, errors.Newf("unknown match mode %q", mode)
}

func runLookup(cmd *cobra.Command, args []string) error {
	wn, closeStore, err := openWordNet(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	mode, err := parseMatchMode(lookupModeFlag)
	if err != nil {
		return err
	}

	lemmas, err := wn.Lookup(args[0], lookupPOSFlag, lookupTagFlag, mode)
	var disambig *wordnet.DisambiguationError
	if errors.As(err, &disambig) {
		pterm.Warning.Printf("%q is ambiguous between: %s\n", args[0], strings.Join(disambig.Candidates, ", "))
		pterm.Info.Println("Re-run with --pos (or --tag for morphology-model languages)")
		return nil
	}
	if errors.IsNotFound(err) {
		pterm.Warning.Printf("No lemma %q in %s\n", args[0], wn.Language())
		return nil
	}
	if err != nil {
		return err
	}

	showSynonyms, _ := cmd.Flags().GetBool("synonyms")
	for _, lemma := range lemmas {
		pterm.DefaultSection.Printf("%s (%s, %s)", lemma.Display(), lemma.POS(), lemma.Language())

		synsets, err := lemma.Synsets()
		if err != nil {
			return err
		}
		for _, synset := range synsets {
			gloss, err := synset.Gloss()
			if err != nil {
				return err
			}
			fmt.Printf("  %-14s %s\n", synset.ID(), gloss)
		}

		if showSynonyms {
			synonyms, err := lemma.Synonyms()
			if err != nil {
				return err
			}
			forms := make([]string, len(synonyms))
			for i, s := range synonyms {
				forms[i] = s.Display()
			}
			if len(forms) > 0 {
				fmt.Printf("  synonyms: %s\n", strings.Join(forms, ", "))
			}
		}
	}
	return nil
}
