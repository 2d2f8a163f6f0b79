package main

import (
	"fmt"
	"time"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/pkg/dateutil"
	"github.com/spf13/cobra"
)

const flagBirthDate = "birth-date"

// parameterFlags maps command line flags onto projection parameters.
var parameterFlags = []struct {
	flag  string
	param string
	usage string
}{
	{"balance", domain.ParamPortfolioBalance, "Portfolio balance at the starting age"},
	{"expenses", domain.ParamAnnualExpenses, "Annual expenses in the first year"},
	{"income", domain.ParamNonPortfolioIncome, "Annual income from outside the portfolio"},
	{"age", domain.ParamStartingAge, "Age in the first projected year"},
	{"roi", domain.ParamROI, "Annual return on the portfolio, in percent"},
	{"tax-rate", domain.ParamTaxRate, "Tax on withdrawals, in percent"},
	{"inflation", domain.ParamInflationRate, "Annual growth of expenses, in percent"},
}

// nowFunc is the clock used to turn a birth date into an age.
var nowFunc = time.Now

func addParameterFlags(cmd *cobra.Command) {
	for _, pf := range parameterFlags {
		cmd.Flags().String(pf.flag, "", pf.usage)
	}
	cmd.Flags().String(flagBirthDate, "", "Birth date (YYYY-MM-DD); sets the starting age to today's age")
	cmd.MarkFlagsMutuallyExclusive("age", flagBirthDate)
}

// resolveParameters applies the flags the user set on top of base. Flags are
// parsed as decimals, so values such as "NaN" or "abc" are rejected.
func resolveParameters(cmd *cobra.Command, base domain.ProjectionParameters) (domain.ProjectionParameters, error) {
	p := base
	for _, pf := range parameterFlags {
		if !cmd.Flags().Changed(pf.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(pf.flag)
		if err != nil {
			return base, err
		}
		if err := p.Set(pf.param, value); err != nil {
			return base, fmt.Errorf("--%s: %w", pf.flag, err)
		}
	}

	if cmd.Flags().Changed(flagBirthDate) {
		value, err := cmd.Flags().GetString(flagBirthDate)
		if err != nil {
			return base, err
		}
		age, err := dateutil.AgeFromBirthDate(value, nowFunc())
		if err != nil {
			return base, fmt.Errorf("--%s: %w", flagBirthDate, err)
		}
		p.StartingAge = age
	}
	return p, nil
}
