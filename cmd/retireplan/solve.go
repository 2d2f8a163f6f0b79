package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/output"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var showProjection bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the largest annual expenses the portfolio sustains through age 90",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := resolveParameters(cmd, a.prefs.Defaults)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			solved, err := a.engine.SolveSustainableExpenses(ctx, params)
			if errors.Is(err, calculation.ErrNoSustainableLevel) {
				return fmt.Errorf("%w: income and growth cannot cover taxes on any withdrawal", err)
			}
			if err != nil {
				return err
			}

			currency := a.currencyCode()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Sustainable annual expenses: %s\n", output.FormatCurrency(solved.AnnualExpenses, currency))
			fmt.Fprintf(out, "First-year withdrawal:       %s\n", output.FormatCurrency(solved.Withdrawal, currency))
			fmt.Fprintf(out, "Balance at %d:               %s\n", solved.Projection[len(solved.Projection)-1].Age,
				output.FormatCurrency(solved.Projection[len(solved.Projection)-1].RemainingBalance, currency))
			fmt.Fprintf(out, "Search iterations:           %d\n", solved.Iterations)
			if !showProjection {
				return nil
			}

			fmt.Fprintln(out)
			results, err := a.engine.Compare(ctx, "Sustainable", solved.Parameters)
			if err != nil {
				return err
			}
			return a.render(cmd, results)
		},
	}
	addParameterFlags(cmd)
	cmd.Flags().BoolVar(&showProjection, "show-projection", false, "Also render the projection at the solved expense level")
	return cmd
}
