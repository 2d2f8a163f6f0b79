package output

import (
	"sort"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalBalance     decimal.Decimal
	BalanceChange    decimal.Decimal
	PercentageChange decimal.Decimal
	Sustainable      bool
}

// AnalyzeScenarios picks the scenario whose money lasts longest (see
// domain.ScenarioSummary.LastsLongerThan) and reports its change against the
// starting balance.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].LastsLongerThan(ranks[j]) })
	best := ranks[0]
	delta := best.FinalBalance.Sub(best.InitialBalance)
	pct := decimal.Zero
	if !best.InitialBalance.IsZero() {
		pct = delta.Div(best.InitialBalance).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:     best.Name,
		FinalBalance:     best.FinalBalance,
		BalanceChange:    delta,
		PercentageChange: pct,
		Sustainable:      best.IsSustainable(),
	}
}
