package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fantasyname/pkg/namegen"
	"github.com/dmitrymomot/fantasyname/pkg/randomname"
)

const defaultPreset = "whole-name"

func generateCmd(flags *globalFlags) *cobra.Command {
	var (
		preset string
		count  int
		unique bool
		slug   bool
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "generate [pattern]",
		Short: "Print random names for a pattern or preset",
		Long: `Print random names for a pattern or preset, one per line.

Without a pattern or --preset the whole-name preset is used.`,
		Example: `  namegen generate '!sV'"'"'i' -n 5
  namegen generate --preset middle-earth --unique -n 10
  namegen generate --preset greek --slug --seed 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && preset != "" {
				return errors.New("give either a pattern or --preset, not both")
			}
			if count < 1 {
				return fmt.Errorf("-n must be positive, got %d", count)
			}

			lib, err := flags.openLibrary(cmd)
			if err != nil {
				return err
			}

			var tree *namegen.Generator
			switch {
			case len(args) == 1:
				tree, err = lib.Compile(args[0])
			case preset != "":
				tree, err = lib.Generator(preset)
			default:
				tree, err = lib.Generator(defaultPreset)
			}
			if err != nil {
				return err
			}

			opts := randomname.Options{Tree: tree, Unique: unique, Slug: slug}
			if cmd.Flags().Changed("seed") {
				opts.Source = namegen.NewSeededSource(seed)
			}
			gen, err := randomname.New(opts)
			if err != nil {
				return err
			}

			names, err := gen.Batch(count)
			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintln(out, name)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "named pattern to use instead of a pattern argument")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names")
	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "never repeat a name")
	cmd.Flags().BoolVar(&slug, "slug", false, "print lower-case ASCII slugs")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output")
	return cmd
}
