package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/lexgraph/mwn/errors"
)

// DepthCmd reports a synset's position in the hypernym taxonomy.
var DepthCmd = &cobra.Command{
	Use:   "depth <id>",
	Short: "Taxonomy depth and root paths of a synset",
	Long: `Walk the hypernym taxonomy above a synset: longest and shortest chain
lengths, the reachable roots, and optionally every path from a root down to
the synset.

Examples:
  mwn depth n#02001223
  mwn depth n#02001223 --paths`,
	Args: cobra.ExactArgs(1),
	RunE: runDepth,
}

func init() {
	DepthCmd.Flags().Bool("paths", false, "Print every root path")
}

func runDepth(cmd *cobra.Command, args []string) error {
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

	maxDepth, err := synset.MaxDepth()
	if err != nil {
		return err
	}
	minDepth, err := synset.MinDepth()
	if err != nil {
		return err
	}
	roots, err := synset.Roots()
	if err != nil {
		return err
	}

	pterm.DefaultSection.Printf("%s", synset.ID())
	fmt.Printf("  max depth: %d\n", maxDepth)
	fmt.Printf("  min depth: %d\n", minDepth)

	rootIDs := make([]string, len(roots))
	for i, r := range roots {
		rootIDs[i] = r.ID()
	}
	fmt.Printf("  roots:     %s\n", strings.Join(rootIDs, ", "))

	showPaths, _ := cmd.Flags().GetBool("paths")
	if !showPaths {
		return nil
	}
	paths, err := synset.PathsToRoot()
	if err != nil {
		return err
	}
	pterm.Println()
	for _, path := range paths {
		ids := make([]string, len(path))
		for i, s := range path {
			ids[i] = s.ID()
		}
		fmt.Printf("  %s\n", strings.Join(ids, " > "))
	}
	return nil
}
