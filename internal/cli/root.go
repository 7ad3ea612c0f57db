// Package cli implements the namegen command line.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/patternlib"
)

type globalFlags struct {
	library    string
	noCollapse bool
	maxDepth   int
}

// New returns the root command.
func New() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:   "namegen",
		Short: "Generate fantasy names from compact patterns",
		Long: `Generate fantasy names from compact patterns.

Patterns mix symbols that expand to random table entries (s, v, V, c, B, C,
i, m, M, D, d) with literal groups in parentheses and alternatives separated
by '|'. For example "!sV'i" or "<B|C>(ia|ion)".`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.library, "library", "", "YAML file with extra named patterns")
	root.PersistentFlags().BoolVar(&flags.noCollapse, "no-collapse", false, "keep runs of repeated letters")
	root.PersistentFlags().IntVar(&flags.maxDepth, "max-depth", 0, "maximum bracket nesting, 0 for no limit")

	root.AddCommand(
		generateCmd(&flags),
		statsCmd(&flags),
		explainCmd(&flags),
		presetsCmd(&flags),
		serveCmd(),
	)
	return root
}

// Execute runs the root command with args.
func Execute(ctx context.Context, args []string) error {
	root := New()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (f *globalFlags) openLibrary(cmd *cobra.Command) (*patternlib.Library, error) {
	var compileOpts []namegen.Option
	if f.noCollapse {
		compileOpts = append(compileOpts, namegen.WithoutCollapse())
	}
	if f.maxDepth > 0 {
		compileOpts = append(compileOpts, namegen.WithMaxDepth(f.maxDepth))
	}
	lib := patternlib.New(patternlib.WithCompileOptions(compileOpts...))

	if f.library != "" {
		if _, err := lib.LoadFile(cmd.Context(), f.library); err != nil {
			return nil, err
		}
	}
	return lib, nil
}
