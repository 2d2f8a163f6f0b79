package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/retirement-planner/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			aliases := map[string][]string{}
			for _, alias := range output.AvailableFormatAliases() {
				name := output.NormalizeFormatName(alias)
				aliases[name] = append(aliases[name], alias)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Formats:")
			for _, name := range output.AvailableFormatterNames() {
				line := fmt.Sprintf("  %-14s .%s", name, output.Extension(name))
				if len(aliases[name]) > 0 {
					line += "  (aliases: " + strings.Join(aliases[name], ", ") + ")"
				}
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, "  all            every format above, with --output")
			return nil
		},
	}
}
