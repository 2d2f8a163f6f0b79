package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct {
	Currency string
}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf)
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s: Start=%s Final=%s Peak=%s Longevity=%d\n",
			sc.Name,
			FormatCurrency(sc.InitialBalance, c.Currency),
			FormatCurrency(sc.FinalBalance, c.Currency),
			FormatCurrency(sc.PeakBalance, c.Currency),
			sc.LongevityYears,
		)
		fmt.Fprintf(&buf, "  Withdrawn=%s Taxes=%s FirstWithdrawal=%s Depleted=%s Success=%s\n",
			FormatCurrency(sc.TotalWithdrawn, c.Currency),
			FormatCurrency(sc.TotalTaxes, c.Currency),
			ageOrDash(sc.FirstWithdrawalAge, sc.WithdrawalNeeded),
			ageOrDash(sc.DepletionAge, sc.Depleted),
			FormatPercentage(sc.SuccessRate),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.BalanceChange, c.Currency), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
