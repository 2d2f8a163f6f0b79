package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/spf13/cobra"
)

var parameterTitles = map[string]string{
	domain.ParamPortfolioBalance:   "Portfolio balance",
	domain.ParamAnnualExpenses:     "Annual expenses",
	domain.ParamNonPortfolioIncome: "Non-portfolio income",
	domain.ParamStartingAge:        "Starting age",
	domain.ParamROI:                "Return on investment (%)",
	domain.ParamTaxRate:            "Tax rate (%)",
	domain.ParamInflationRate:      "Inflation rate (%)",
}

func newInteractiveCmd(a *app) *cobra.Command {
	var accessible bool
	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Enter parameters in a form, then project them",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := parameterValues(a.prefs.Defaults)
			if err != nil {
				return err
			}
			form := huh.NewForm(huh.NewGroup(parameterInputs(values)...)).
				WithAccessible(accessible)
			if err := form.Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
					return nil
				}
				return err
			}

			params, err := parametersFromValues(a.prefs.Defaults, values)
			if err != nil {
				return err
			}
			results, err := a.engine.Compare(commandContext(cmd), "Interactive", params)
			if err != nil {
				return err
			}
			return a.render(cmd, results)
		},
	}
	cmd.Flags().BoolVar(&accessible, "accessible", false, "Plain prompts for screen readers and non-TTY terminals")
	return cmd
}

// parameterValues returns the editable text of every parameter, keyed by name.
func parameterValues(p domain.ProjectionParameters) (map[string]*string, error) {
	values := make(map[string]*string, len(domain.ParameterNames))
	for _, name := range domain.ParameterNames {
		text, err := p.Get(name)
		if err != nil {
			return nil, err
		}
		values[name] = &text
	}
	return values, nil
}

func parameterInputs(values map[string]*string) []huh.Field {
	fields := make([]huh.Field, 0, len(domain.ParameterNames))
	for _, name := range domain.ParameterNames {
		fields = append(fields, huh.NewInput().
			Title(parameterTitles[name]).
			Value(values[name]).
			Validate(validateParameter(name)))
	}
	return fields
}

func validateParameter(name string) func(string) error {
	return func(text string) error {
		var scratch domain.ProjectionParameters
		return scratch.Set(name, text)
	}
}

func parametersFromValues(base domain.ProjectionParameters, values map[string]*string) (domain.ProjectionParameters, error) {
	p := base
	for _, name := range domain.ParameterNames {
		if err := p.Set(name, *values[name]); err != nil {
			return base, err
		}
	}
	return p, nil
}
