package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates projections, summaries and scenario comparisons.
// It holds no per-run state and is safe for concurrent use once configured.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project runs the drawdown recurrence for params.
func (ce *CalculationEngine) Project(params domain.ProjectionParameters) []domain.YearlyProjection {
	projection := Project(params)
	if len(projection) == 0 {
		ce.Logger.Warnf("starting age %d is past %d; projection is empty", params.StartingAge, domain.MaxProjectionAge)
		return projection
	}
	last := projection[len(projection)-1]
	ce.Logger.Debugf("projected ages %d-%d: final balance %s", params.StartingAge, last.Age, last.RemainingBalance.StringFixed(2))
	return projection
}

// RunScenario projects and summarizes a single named parameter set
func (ce *CalculationEngine) RunScenario(ctx context.Context, name string, params domain.ProjectionParameters) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary := ce.Summarize(name, params, ce.Project(params))
	if !summary.IsSustainable() {
		ce.Logger.Infof("scenario %q depletes the portfolio at age %d", name, summary.DepletionAge)
	}
	return &summary, nil
}

// RunScenarios runs all scenarios of a configuration and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios provided")
	}

	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		summary, err := ce.RunScenario(ctx, scenario.Name, config.ScenarioParameters(scenario))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		scenarios[i] = *summary
	}

	return &domain.ScenarioComparison{
		Scenarios:          scenarios,
		LongTermProjection: ce.generateLongTermAnalysis(scenarios),
		Assumptions:        config.Base.Assumptions(),
	}, nil
}

// Compare wraps a single projection in a comparison so every formatter can render it.
func (ce *CalculationEngine) Compare(ctx context.Context, name string, params domain.ProjectionParameters) (*domain.ScenarioComparison, error) {
	cfg := &domain.Configuration{Base: params, Scenarios: []domain.Scenario{{Name: name}}}
	return ce.RunScenarios(ctx, cfg)
}

// Summarize computes the aggregate metrics of a projection
func (ce *CalculationEngine) Summarize(name string, params domain.ProjectionParameters, projection []domain.YearlyProjection) domain.ScenarioSummary {
	summary := domain.ScenarioSummary{
		Name:           name,
		Parameters:     params,
		Projection:     projection,
		InitialBalance: params.PortfolioBalance,
		FinalBalance:   params.PortfolioBalance,
		PeakBalance:    params.PortfolioBalance,
		TotalWithdrawn: decimal.Zero,
		TotalTaxes:     decimal.Zero,
		TotalGrowth:    decimal.Zero,
		SuccessRate:    decimal.Zero,
	}
	if len(projection) == 0 {
		return summary
	}

	for i, year := range projection {
		summary.TotalWithdrawn = summary.TotalWithdrawn.Add(year.Withdrawal)
		summary.TotalTaxes = summary.TotalTaxes.Add(year.Taxes)
		summary.TotalGrowth = summary.TotalGrowth.Add(year.PortfolioGrowth)
		if year.RemainingBalance.GreaterThan(summary.PeakBalance) {
			summary.PeakBalance = year.RemainingBalance
		}
		if !summary.WithdrawalNeeded && year.Withdrawal.IsPositive() {
			summary.WithdrawalNeeded = true
			summary.FirstWithdrawalAge = year.Age
		}
		if !summary.Depleted && year.IsDepleted() {
			summary.Depleted = true
			summary.DepletionAge = year.Age
			summary.LongevityYears = i
		}
	}
	summary.FinalBalance = projection[len(projection)-1].RemainingBalance

	if !summary.Depleted {
		summary.LongevityYears = len(projection)
	}
	summary.SuccessRate = ce.calculateDeterministicSuccessRate(projection, summary.LongevityYears)

	return summary
}

// calculateDeterministicSuccessRate is the share of projected years that end funded
func (ce *CalculationEngine) calculateDeterministicSuccessRate(projection []domain.YearlyProjection, longevity int) decimal.Decimal {
	if len(projection) == 0 {
		return decimal.Zero
	}
	if longevity >= len(projection) {
		return decimal.NewFromInt(100)
	}
	return decimal.NewFromInt(int64(longevity)).
		Div(decimal.NewFromInt(int64(len(projection)))).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
