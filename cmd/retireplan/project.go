package main

import (
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project one set of parameters through age 90",
		Long: "Project one set of parameters through age 90. Unset flags fall back to " +
			"the [defaults] in the preferences file, then to built-in defaults.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := resolveParameters(cmd, a.prefs.Defaults)
			if err != nil {
				return err
			}
			results, err := a.engine.Compare(commandContext(cmd), name, params)
			if err != nil {
				return err
			}
			return a.render(cmd, results)
		},
	}
	addParameterFlags(cmd)
	cmd.Flags().StringVar(&name, "name", "Projection", "Scenario name shown in the output")
	return cmd
}
