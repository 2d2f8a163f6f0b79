package main

import (
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/spf13/cobra"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare FILE",
		Short: "Run every scenario in a YAML scenario file and compare them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			results, err := a.engine.RunScenarios(commandContext(cmd), cfg)
			if err != nil {
				return err
			}
			return a.render(cmd, results)
		},
	}
}
