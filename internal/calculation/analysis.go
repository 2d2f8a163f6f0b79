package calculation

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// generateLongTermAnalysis picks the strongest scenarios and phrases the risk picture
func (ce *CalculationEngine) generateLongTermAnalysis(scenarios []domain.ScenarioSummary) domain.LongTermAnalysis {
	var bestBalanceScenario, bestLongevityScenario string
	var best, longest *domain.ScenarioSummary
	depleted := 0

	for i := range scenarios {
		scenario := &scenarios[i]
		if best == nil || scenario.FinalBalance.GreaterThan(best.FinalBalance) {
			best = scenario
			bestBalanceScenario = scenario.Name
		}
		if longest == nil || scenario.LastsLongerThan(*longest) {
			longest = scenario
			bestLongevityScenario = scenario.Name
		}
		if !scenario.IsSustainable() {
			depleted++
		}
	}

	analysis := domain.LongTermAnalysis{
		BestScenarioForBalance:   bestBalanceScenario,
		BestScenarioForLongevity: bestLongevityScenario,
	}

	switch {
	case len(scenarios) == 0:
		analysis.RiskAssessment = "No scenarios to assess"
	case depleted == 0:
		analysis.RiskAssessment = fmt.Sprintf("All scenarios stay funded through age %d", domain.MaxProjectionAge)
	case depleted == len(scenarios):
		analysis.RiskAssessment = fmt.Sprintf("Every scenario depletes the portfolio before age %d", domain.MaxProjectionAge)
	default:
		analysis.RiskAssessment = fmt.Sprintf("%d of %d scenarios deplete the portfolio before age %d", depleted, len(scenarios), domain.MaxProjectionAge)
	}

	for _, scenario := range scenarios {
		switch {
		case !scenario.IsSustainable():
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: reduce expenses or raise income; funds run out at age %d", scenario.Name, scenario.DepletionAge))
		case !scenario.WithdrawalNeeded && len(scenario.Projection) > 0:
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: non-portfolio income covers expenses every year; the surplus is not reinvested", scenario.Name))
		case scenario.FinalBalance.LessThan(scenario.InitialBalance):
			analysis.Recommendations = append(analysis.Recommendations,
				fmt.Sprintf("%s: balance declines from age %d; monitor the withdrawal rate", scenario.Name, scenario.FirstWithdrawalAge))
		}
	}

	return analysis
}
