package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyProjection is one simulated year of the drawdown.
type YearlyProjection struct {
	Age              int             `json:"age"`
	PortfolioValue   decimal.Decimal `json:"portfolio_value"` // start of year, before growth and withdrawal
	Withdrawal       decimal.Decimal `json:"withdrawal"`
	Taxes            decimal.Decimal `json:"taxes"`
	PortfolioGrowth  decimal.Decimal `json:"portfolio_growth"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"` // next year's PortfolioValue
}

// IsDepleted returns true if the year ends below zero. A balance of exactly
// zero still covered that year's outflow.
func (yp YearlyProjection) IsDepleted() bool {
	return yp.RemainingBalance.IsNegative()
}

// ScenarioSummary provides a summary of key metrics for a projected scenario
type ScenarioSummary struct {
	Name               string               `json:"name"`
	Parameters         ProjectionParameters `json:"parameters"`
	Projection         []YearlyProjection   `json:"projection"`
	InitialBalance     decimal.Decimal      `json:"initial_balance"`
	FinalBalance       decimal.Decimal      `json:"final_balance"`
	PeakBalance        decimal.Decimal      `json:"peak_balance"`
	TotalWithdrawn     decimal.Decimal      `json:"total_withdrawn"`
	TotalTaxes         decimal.Decimal      `json:"total_taxes"`
	TotalGrowth        decimal.Decimal      `json:"total_growth"`
	WithdrawalNeeded   bool                 `json:"withdrawal_needed"`
	FirstWithdrawalAge int                  `json:"first_withdrawal_age"` // meaningful only if WithdrawalNeeded
	Depleted           bool                 `json:"depleted"`
	DepletionAge       int                  `json:"depletion_age"` // meaningful only if Depleted
	LongevityYears     int                  `json:"longevity_years"`
	SuccessRate        decimal.Decimal      `json:"success_rate"`
}

// IsSustainable reports whether the portfolio never ran out.
func (s ScenarioSummary) IsSustainable() bool {
	return !s.Depleted
}

// LastsLongerThan ranks s ahead of other by how long the money lasts, independent
// of starting age: sustained scenarios first, then the later depletion age, then
// the higher final balance.
func (s ScenarioSummary) LastsLongerThan(other ScenarioSummary) bool {
	if s.Depleted != other.Depleted {
		return !s.Depleted
	}
	if s.Depleted && s.DepletionAge != other.DepletionAge {
		return s.DepletionAge > other.DepletionAge
	}
	return s.FinalBalance.GreaterThan(other.FinalBalance)
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Scenarios          []ScenarioSummary `json:"scenarios"`
	LongTermProjection LongTermAnalysis  `json:"long_term_projection"`
	Assumptions        []string          `json:"assumptions"`
}

// LongTermAnalysis provides analysis of long-term projections
type LongTermAnalysis struct {
	BestScenarioForBalance   string   `json:"best_scenario_for_balance"`
	BestScenarioForLongevity string   `json:"best_scenario_for_longevity"`
	RiskAssessment           string   `json:"risk_assessment"`
	Recommendations          []string `json:"recommendations"`
}

// SustainableSpending is the largest starting annual expense the portfolio can carry to MaxProjectionAge.
type SustainableSpending struct {
	Parameters     ProjectionParameters `json:"parameters"`
	AnnualExpenses decimal.Decimal      `json:"annual_expenses"`
	Withdrawal     decimal.Decimal      `json:"first_year_withdrawal"`
	Iterations     int                  `json:"iterations"`
	Projection     []YearlyProjection   `json:"projection"`
}

// BalanceCrossover describes where one projection's start-of-year balance overtakes another's.
type BalanceCrossover struct {
	Age            int             `json:"age"`
	Leader         string          `json:"leader"` // "a" or "b" from the crossover age onward
	BalanceA       decimal.Decimal `json:"balance_a"`
	BalanceB       decimal.Decimal `json:"balance_b"`
	PriorLeader    string          `json:"prior_leader"`
	ComparedYears  int             `json:"compared_years"`
	CrossoverCount int             `json:"crossover_count"`
}

// Scenario is a named set of overrides on top of a configuration's base parameters.
type Scenario struct {
	Name      string             `json:"name" yaml:"name"`
	Overrides ParameterOverrides `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Configuration is a scenario file: shared base parameters plus scenarios.
type Configuration struct {
	Base      ProjectionParameters `json:"base" yaml:"base"`
	Scenarios []Scenario           `json:"scenarios" yaml:"scenarios"`
}

// ScenarioParameters resolves a scenario against the configuration base.
func (c *Configuration) ScenarioParameters(s Scenario) ProjectionParameters {
	return s.Overrides.Apply(c.Base)
}
