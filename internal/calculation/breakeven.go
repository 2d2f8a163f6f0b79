package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoSustainableLevel is returned when the portfolio runs out even with zero expenses.
	ErrNoSustainableLevel = errors.New("portfolio is depleted even with zero expenses")
	// ErrNoOverlap is returned when two projections cover no common age.
	ErrNoOverlap = errors.New("projections share no ages")
)

const (
	solverMaxIterations = 100
	solverMaxDoublings  = 64
)

var (
	solverTolerance = decimal.NewFromInt(1) // within $1
	half            = decimal.NewFromFloat(0.5)
)

// SolveSustainableExpenses finds, by binary search, the largest starting annual
// expense for which no projected year ends with a negative balance. All other
// parameters are held fixed.
func (ce *CalculationEngine) SolveSustainableExpenses(ctx context.Context, params domain.ProjectionParameters) (*domain.SustainableSpending, error) {
	if params.ExpectedLength() == 0 {
		return nil, fmt.Errorf("starting age %d is past %d: nothing to solve", params.StartingAge, domain.MaxProjectionAge)
	}

	minExpenses := decimal.Zero
	if !staysSolvent(withExpenses(params, minExpenses)) {
		return nil, ErrNoSustainableLevel
	}

	// Grow the upper bound until it depletes the portfolio
	maxExpenses := params.PortfolioBalance.Add(params.NonPortfolioIncome)
	if !maxExpenses.IsPositive() {
		maxExpenses = decimal.NewFromInt(1)
	}
	doublings := 0
	for staysSolvent(withExpenses(params, maxExpenses)) {
		if doublings >= solverMaxDoublings {
			return nil, fmt.Errorf("no depleting expense level found below %s", maxExpenses.StringFixed(2))
		}
		minExpenses = maxExpenses
		maxExpenses = maxExpenses.Mul(decimal.NewFromInt(2))
		doublings++
	}

	iterations := 0
	for ; iterations < solverMaxIterations; iterations++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if maxExpenses.Sub(minExpenses).LessThan(solverTolerance) {
			break
		}
		testExpenses := minExpenses.Add(maxExpenses).Mul(half)
		if staysSolvent(withExpenses(params, testExpenses)) {
			minExpenses = testExpenses
		} else {
			maxExpenses = testExpenses
		}
	}

	expenses := minExpenses.Truncate(2)
	solved := withExpenses(params, expenses)
	projection := Project(solved)
	ce.Logger.Debugf("sustainable expenses %s found after %d iterations", expenses.StringFixed(2), iterations)

	return &domain.SustainableSpending{
		Parameters:     solved,
		AnnualExpenses: expenses,
		Withdrawal:     projection[0].Withdrawal,
		Iterations:     iterations,
		Projection:     projection,
	}, nil
}

func withExpenses(params domain.ProjectionParameters, expenses decimal.Decimal) domain.ProjectionParameters {
	params.AnnualExpenses = expenses
	return params
}

func staysSolvent(params domain.ProjectionParameters) bool {
	for _, year := range Project(params) {
		if year.IsDepleted() {
			return false
		}
	}
	return true
}

// CalculateBalanceCrossover finds the first age at which the projection with the
// higher start-of-year balance changes. Projections are aligned by age. Ties keep
// the previous leader. If no crossover is found, returns nil, nil.
func CalculateBalanceCrossover(projA, projB []domain.YearlyProjection) (*domain.BalanceCrossover, error) {
	byAge := make(map[int]domain.YearlyProjection, len(projB))
	for _, year := range projB {
		byAge[year.Age] = year
	}

	var result *domain.BalanceCrossover
	leader := ""
	compared := 0
	crossovers := 0

	for _, yearA := range projA {
		yearB, ok := byAge[yearA.Age]
		if !ok {
			continue
		}
		compared++

		current := ""
		switch yearA.PortfolioValue.Cmp(yearB.PortfolioValue) {
		case 1:
			current = "a"
		case -1:
			current = "b"
		}
		if current == "" {
			continue
		}
		if leader != "" && current != leader {
			crossovers++
			if result == nil {
				result = &domain.BalanceCrossover{
					Age:         yearA.Age,
					Leader:      current,
					BalanceA:    yearA.PortfolioValue,
					BalanceB:    yearB.PortfolioValue,
					PriorLeader: leader,
				}
			}
		}
		leader = current
	}

	if compared == 0 {
		return nil, ErrNoOverlap
	}
	if result == nil {
		return nil, nil
	}
	result.ComparedYears = compared
	result.CrossoverCount = crossovers
	return result, nil
}
