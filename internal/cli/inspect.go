package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
)

func statsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <pattern|preset>",
		Short: "Print the size and length bounds of a pattern",
		Long: `Print the number of combinations and the minimum and maximum length of a
pattern. A registered preset name is looked up first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := flags.openLibrary(cmd)
			if err != nil {
				return err
			}
			tree, err := lib.Resolve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "combinations: %d\n", tree.Combinations())
			fmt.Fprintf(out, "min length:   %d\n", tree.Min())
			fmt.Fprintf(out, "max length:   %d\n", tree.Max())
			return nil
		},
	}
}

func explainCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <pattern|preset>",
		Short: "Print the compiled tree of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := flags.openLibrary(cmd)
			if err != nil {
				return err
			}
			tree, err := lib.Resolve(args[0])
			if err != nil {
				return err
			}
			writeTree(cmd.OutOrStdout(), tree, 0)
			return nil
		},
	}
}

// choices over more literals than this are summarized.
const maxListedLiterals = 8

func writeTree(w io.Writer, g *namegen.Generator, depth int) {
	indent := strings.Repeat("  ", depth)
	if g.Kind() == namegen.KindLiteral {
		fmt.Fprintf(w, "%s%s\n", indent, strconv.Quote(g.Value()))
		return
	}

	children := g.Children()
	fmt.Fprintf(w, "%s%s [%d]\n", indent, g.Kind(), g.Combinations())
	if g.Kind() == namegen.KindChoice && len(children) > maxListedLiterals && literals(children) {
		quoted := make([]string, maxListedLiterals)
		for i, c := range children[:maxListedLiterals] {
			quoted[i] = strconv.Quote(c.Value())
		}
		fmt.Fprintf(w, "%s  %s ... (%d more)\n", indent, strings.Join(quoted, " "), len(children)-maxListedLiterals)
		return
	}
	for _, c := range children {
		writeTree(w, c, depth+1)
	}
}

func literals(gs []*namegen.Generator) bool {
	for _, g := range gs {
		if g.Kind() != namegen.KindLiteral {
			return false
		}
	}
	return true
}
