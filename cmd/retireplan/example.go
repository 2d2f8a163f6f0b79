package main

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example FILE",
		Short: "Write an example scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote example scenarios to %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Run `retireplan compare %s` to compare them.\n", args[0])
			return nil
		},
	}
}
