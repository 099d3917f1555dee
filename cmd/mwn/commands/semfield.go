package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/errors"
	"github.com/lexgraph/mwn/wordnet"
)

// SemfieldCmd browses the semantic-field hierarchy.
var SemfieldCmd = &cobra.Command{
	Use:   "semfield <name>",
	Short: "Browse a semantic field",
	Long: `Show a semantic field's position in the hierarchy and the synsets it
contains.

Some field names exist under more than one code; the command lists the
candidate codes so you can re-run with --code.

Examples:
  mwn semfield zoology
  mwn semfield play --code 8801
  mwn semfield zoology --synsets`,
	Args: cobra.ExactArgs(1),
	RunE: runSemfield,
}

var semfieldCodeFlag string

func init() {
	SemfieldCmd.Flags().StringVarP(&semfieldCodeFlag, "code", "c", "", "Field code, for ambiguous names")
	SemfieldCmd.Flags().Bool("synsets", false, "List the synsets in the field")
}

func runSemfield(cmd *cobra.Command, args []string) error {
	wn, closeStore, err := openWordNet(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	field, err := wn.GetSemfield(args[0], semfieldCodeFlag)
	var disambig *wordnet.DisambiguationError
	if errors.As(err, &disambig) {
		pterm.Warning.Printf("%q exists under codes: %s\n", args[0], strings.Join(disambig.Candidates, ", "))
		pterm.Info.Println("Re-run with --code")
		return nil
	}
	if errors.IsNotFound(err) {
		pterm.Warning.Printf("No semantic field %q\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("%s [%s]", field.String(), field.Code())

	hypers, err := field.Hypers()
	if err != nil {
		return err
	}
	if len(hypers) > 0 {
		fmt.Printf("  broader:  %s\n", joinFieldNames(hypers))
	}
	hypons, err := field.Hypons()
	if err != nil {
		return err
	}
	if len(hypons) > 0 {
		fmt.Printf("  narrower: %s\n", joinFieldNames(hypons))
	}
	normal, err := field.Normal()
	if err != nil {
		return err
	}
	if normal != nil {
		fmt.Printf("  category: %s\n", normal.String())
	}

	showSynsets, _ := cmd.Flags().GetBool("synsets")
	if !showSynsets {
		return nil
	}
	synsets, err := field.Synsets()
	if err != nil {
		return err
	}
	pterm.Println()
	for _, synset := range synsets {
		gloss, err := synset.Gloss()
		if err != nil {
			return err
		}
		fmt.Printf("  %-14s %s\n", synset.ID(), gloss)
	}
	return nil
}

func joinFieldNames(fields []*wordnet.Semfield) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}
