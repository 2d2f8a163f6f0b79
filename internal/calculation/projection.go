package calculation

import (
	"github.com/rpgo/retirement-planner/internal/domain"
	money "github.com/rpgo/retirement-planner/pkg/decimal"
)

// Project runs the yearly drawdown recurrence from params.StartingAge through
// domain.MaxProjectionAge inclusive. Each year:
//
//	growth     = balance * roi / 100
//	withdrawal = max(expenses - nonPortfolioIncome, 0)
//	taxes      = withdrawal * taxRate / 100
//	remaining  = balance - withdrawal - taxes + growth
//
// after which expenses grow by the inflation rate. Growth is taken on the
// start-of-year balance. Income above expenses is not reinvested.
//
// Project is pure: it keeps no state between calls and returns a fresh slice.
// A starting age above MaxProjectionAge yields an empty slice.
func Project(params domain.ProjectionParameters) []domain.YearlyProjection {
	n := params.ExpectedLength()
	results := make([]domain.YearlyProjection, 0, n)
	if n == 0 {
		return results
	}

	currentBalance := params.PortfolioBalance
	currentExpenses := params.AnnualExpenses
	roi := money.PercentToRate(params.ROI)
	taxRate := money.PercentToRate(params.TaxRate)
	inflation := money.GrowthFactor(params.InflationRate)

	for age := params.StartingAge; age <= domain.MaxProjectionAge; age++ {
		portfolioGrowth := currentBalance.Mul(roi)
		withdrawal := money.MaxZero(currentExpenses.Sub(params.NonPortfolioIncome))
		taxes := withdrawal.Mul(taxRate)
		remainingBalance := currentBalance.Sub(withdrawal).Sub(taxes).Add(portfolioGrowth)

		results = append(results, domain.YearlyProjection{
			Age:              age,
			PortfolioValue:   currentBalance,
			Withdrawal:       withdrawal,
			Taxes:            taxes,
			PortfolioGrowth:  portfolioGrowth,
			RemainingBalance: remainingBalance,
		})

		currentBalance = remainingBalance
		currentExpenses = currentExpenses.Mul(inflation)
	}

	return results
}
