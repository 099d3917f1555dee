package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/errors"
)

// SynsetCmd inspects one synset.
var SynsetCmd = &cobra.Command{
	Use:   "synset <id>",
	Short: "Inspect one synset",
	Long: `Show a synset's gloss, member words, semantic fields and outgoing
typed relations.

Synset ids have the form <pos>#<offset>, e.g. n#02001223. Offsets starting
with a letter belong to a non-English wordnet (N for Italian, L for Latin,
H for Hebrew, ...).

Examples:
  mwn synset n#02001223
  mwn synset n#02001223 --language italian
  mwn synset n#02001223 --type "@"`,
	Args: cobra.ExactArgs(1),
	RunE: runSynset,
}

var synsetTypeFlag string

func init() {
	SynsetCmd.Flags().StringVarP(&synsetTypeFlag, "type", "t", "", "Only show relations of this type code")
}

func runSynset(cmd *cobra.Command, args []string) error {
	wn, closeStore, err := openWordNet(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	synset, err := wn.GetSynset(args[0])
	if errors.IsNotFound(err) {
		pterm.Warning.Printf("No synset %q\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	origin, err := synset.OriginLanguage()
	if err != nil {
		return err
	}
	pterm.DefaultSection.Printf("%s (origin: %s)", synset.ID(), origin)

	gloss, err := synset.Gloss()
	if err != nil {
		return err
	}
	if gloss != "" {
		fmt.Printf("  %s\n", gloss)
	}

	lemmas, err := synset.Lemmas()
	if err != nil {
		return err
	}
	if len(lemmas) > 0 {
		forms := make([]string, len(lemmas))
		for i, l := range lemmas {
			forms[i] = l.Display()
		}
		fmt.Printf("  words: %s\n", strings.Join(forms, ", "))
	}

	fields, err := synset.Semfields()
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.String()
		}
		fmt.Printf("  semfields: %s\n", strings.Join(names, ", "))
	}

	relations, err := synset.Relations()
	if err != nil {
		return err
	}
	if len(relations) == 0 {
		return nil
	}

	rows := pterm.TableData{{"Type", "Name", "Target", "Forms"}}
	for _, r := range relations {
		if synsetTypeFlag != "" && r.Type() != synsetTypeFlag {
			continue
		}
		name, err := r.TypeName()
		if err != nil {
			name = ""
		}
		forms := ""
		if r.IsLexical() {
			forms = r.SourceForm() + " -> " + r.TargetForm()
		}
		rows = append(rows, []string{r.Type(), name, r.TargetID(), forms})
	}
	pterm.Println()
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
