package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVDetailedExporter provides the raw yearly projection per scenario/age.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Age", "PortfolioValue", "Withdrawal", "Taxes", "PortfolioGrowth", "RemainingBalance", "IsDepleted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(yr.Age),
				yr.PortfolioValue.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.Taxes.StringFixed(2),
				yr.PortfolioGrowth.StringFixed(2),
				yr.RemainingBalance.StringFixed(2),
				boolToString(yr.IsDepleted()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
