package output

import (
	"testing"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
)

// summary builds a scenario starting at startAge; depletionAge 0 means it
// never runs out of money.
func summary(name string, initial, final int64, startAge, depletionAge int) domain.ScenarioSummary {
	years := domain.MaxProjectionAge - startAge + 1
	s := domain.ScenarioSummary{
		Name:           name,
		Parameters:     domain.ProjectionParameters{StartingAge: startAge},
		InitialBalance: decimal.NewFromInt(initial),
		FinalBalance:   decimal.NewFromInt(final),
		LongevityYears: years,
		SuccessRate:    decimal.NewFromInt(100),
	}
	if depletionAge != 0 {
		s.Depleted = true
		s.DepletionAge = depletionAge
		s.LongevityYears = depletionAge - startAge
		s.SuccessRate = decimal.NewFromInt(int64(s.LongevityYears * 100)).Div(decimal.NewFromInt(int64(years))).Round(2)
	}
	return s
}

func TestAnalyzeScenarios_PrefersLongevity(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			summary("Rich but short", 5000000, -100, 60, 70),
			summary("Modest", 500000, 250000, 60, 0),
		},
	}
	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Modest" {
		t.Fatalf("expected Modest, got %s", rec.ScenarioName)
	}
	if !rec.BalanceChange.Equal(decimal.NewFromInt(-250000)) {
		t.Fatalf("unexpected balance change %s", rec.BalanceChange)
	}
	if !rec.PercentageChange.Equal(decimal.NewFromInt(-50)) {
		t.Fatalf("unexpected percentage change %s", rec.PercentageChange)
	}
}

func TestAnalyzeScenarios_TieBreaksOnFinalBalance(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			summary("Scenario A", 1000000, 1200000, 60, 0),
			summary("Scenario B", 1000000, 1500000, 60, 0),
		},
	}
	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Scenario B" {
		t.Fatalf("expected Scenario B, got %s", rec.ScenarioName)
	}
	if !rec.Sustainable {
		t.Fatalf("expected a scenario with no depletion age to be sustainable")
	}
	if FormatPercentage(rec.PercentageChange) != "50.00%" {
		t.Fatalf("unexpected percentage %s", FormatPercentage(rec.PercentageChange))
	}
}

func TestAnalyzeScenarios_IgnoresStartingAge(t *testing.T) {
	// An earlier start projects more years but does not make the money last longer.
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			summary("Early", 1000000, 200000, 55, 0),
			summary("Lean", 1000000, 900000, 60, 0),
		},
	}
	if rec := AnalyzeScenarios(comparison); rec.ScenarioName != "Lean" {
		t.Fatalf("expected Lean, got %s", rec.ScenarioName)
	}

	// Among depleted scenarios the later depletion age wins even with fewer funded years.
	comparison.Scenarios = []domain.ScenarioSummary{
		summary("Early short", 1000000, -100, 55, 80),
		summary("Late short", 1000000, -500, 70, 84),
	}
	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Late short" {
		t.Fatalf("expected Late short, got %s", rec.ScenarioName)
	}
	if rec.Sustainable {
		t.Fatalf("a depleted pick should not be reported as sustainable")
	}
}

func TestAnalyzeScenarios_DepletionAtAgeZero(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{
			summary("Newborn", 100, -900, 0, 0),
			summary("Funded", 100, 100, 80, 0),
		},
	}
	comparison.Scenarios[0].Depleted = true
	comparison.Scenarios[0].LongevityYears = 0
	comparison.Scenarios[0].SuccessRate = decimal.Zero
	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Funded" {
		t.Fatalf("expected Funded, got %s", rec.ScenarioName)
	}
}

func TestAnalyzeScenarios_ZeroInitialBalance(t *testing.T) {
	comparison := &domain.ScenarioComparison{
		Scenarios: []domain.ScenarioSummary{summary("Empty", 0, -5000, 60, 60)},
	}
	rec := AnalyzeScenarios(comparison)
	if !rec.PercentageChange.IsZero() {
		t.Fatalf("expected zero percentage for a zero starting balance, got %s", rec.PercentageChange)
	}
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	if rec := AnalyzeScenarios(&domain.ScenarioComparison{}); rec.ScenarioName != "" {
		t.Fatalf("expected no recommendation, got %s", rec.ScenarioName)
	}
	if rec := AnalyzeScenarios(nil); rec.ScenarioName != "" {
		t.Fatalf("expected no recommendation for nil results")
	}
}
