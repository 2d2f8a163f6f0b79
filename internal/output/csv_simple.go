package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "StartingAge", "InitialBalance", "FinalBalance", "PeakBalance", "TotalWithdrawn", "TotalTaxes", "TotalGrowth", "FirstWithdrawalAge", "DepletionAge", "LongevityYears", "SuccessRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			intToString(sc.Parameters.StartingAge),
			sc.InitialBalance.StringFixed(2),
			sc.FinalBalance.StringFixed(2),
			sc.PeakBalance.StringFixed(2),
			sc.TotalWithdrawn.StringFixed(2),
			sc.TotalTaxes.StringFixed(2),
			sc.TotalGrowth.StringFixed(2),
			ageOrBlank(sc.FirstWithdrawalAge, sc.WithdrawalNeeded),
			ageOrBlank(sc.DepletionAge, sc.Depleted),
			intToString(sc.LongevityYears),
			sc.SuccessRate.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
