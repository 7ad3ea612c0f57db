package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func presetsCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the named patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := flags.openLibrary(cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCOMBINATIONS\tLENGTH\tDESCRIPTION")
			for _, e := range lib.Entries() {
				tree, err := lib.Compile(e.Pattern)
				if err != nil {
					return fmt.Errorf("preset %s: %w", e.Name, err)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d-%d\t%s\n", e.Name, tree.Combinations(), tree.Min(), tree.Max(), e.Description)
			}
			return tw.Flush()
		},
	}
}
