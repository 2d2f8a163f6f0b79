package domain

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParameters(t *testing.T) {
	p := DefaultParameters()
	assert.True(t, p.PortfolioBalance.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, p.AnnualExpenses.Equal(decimal.NewFromInt(300000)))
	assert.True(t, p.NonPortfolioIncome.Equal(decimal.NewFromInt(500000)))
	assert.Equal(t, 60, p.StartingAge)
	assert.True(t, p.ROI.Equal(decimal.NewFromInt(4)))
	assert.True(t, p.TaxRate.Equal(decimal.NewFromInt(20)))
	assert.True(t, p.InflationRate.Equal(decimal.RequireFromString("2.5")))
}

func TestNewProjectionParameters(t *testing.T) {
	p, err := NewProjectionParameters(100000, 50000, 0, 89, 0, 0, 0)
	require.NoError(t, err)
	assert.True(t, p.PortfolioBalance.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 89, p.StartingAge)

	tests := []struct {
		name  string
		build func() (ProjectionParameters, error)
		field string
	}{
		{"NaN balance", func() (ProjectionParameters, error) {
			return NewProjectionParameters(math.NaN(), 1, 1, 60, 1, 1, 1)
		}, ParamPortfolioBalance},
		{"Inf roi", func() (ProjectionParameters, error) {
			return NewProjectionParameters(1, 1, 1, 60, math.Inf(1), 1, 1)
		}, ParamROI},
		{"-Inf inflation", func() (ProjectionParameters, error) {
			return NewProjectionParameters(1, 1, 1, 60, 1, 1, math.Inf(-1))
		}, ParamInflationRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			require.ErrorIs(t, err, ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSetAndGet(t *testing.T) {
	p := DefaultParameters()

	require.NoError(t, p.Set(ParamPortfolioBalance, "$1,500,000"))
	require.NoError(t, p.Set(ParamStartingAge, "65"))
	require.NoError(t, p.Set(ParamInflationRate, "3%"))

	v, err := p.Get(ParamPortfolioBalance)
	require.NoError(t, err)
	assert.Equal(t, "1500000", v)
	v, err = p.Get(ParamStartingAge)
	require.NoError(t, err)
	assert.Equal(t, "65", v)
	v, err = p.Get(ParamInflationRate)
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	for _, name := range ParameterNames {
		_, err := p.Get(name)
		assert.NoError(t, err, name)
	}
}

func TestSetRejectsInvalidInput(t *testing.T) {
	p := DefaultParameters()
	before := p

	assert.ErrorIs(t, p.Set(ParamROI, "abc"), ErrInvalidParameter)
	assert.ErrorIs(t, p.Set(ParamTaxRate, "NaN"), ErrInvalidParameter)
	assert.ErrorIs(t, p.Set(ParamStartingAge, "60.5"), ErrInvalidParameter)
	assert.ErrorIs(t, p.Set("salary", "1"), ErrInvalidParameter)
	assert.ErrorIs(t, p.Set(ParamPortfolioBalance, "1e1500000000"), ErrInvalidParameter)
	assert.ErrorIs(t, p.Set(ParamROI, "1e-1500000000"), ErrInvalidParameter)
	_, err := p.Get("salary")
	assert.ErrorIs(t, err, ErrInvalidParameter)

	assert.Equal(t, before, p)
}

func TestValidate(t *testing.T) {
	p := DefaultParameters()
	assert.NoError(t, p.Validate())

	p.InflationRate = decimal.New(1, 1500000000)
	err := p.Validate()
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), ParamInflationRate)
}

func TestExpectedLength(t *testing.T) {
	cases := map[int]int{60: 31, 89: 2, 90: 1, 91: 0, 120: 0, 0: 91}
	for age, want := range cases {
		p := DefaultParameters()
		p.StartingAge = age
		assert.Equal(t, want, p.ExpectedLength(), "age %d", age)
	}
}

func TestParameterOverridesApply(t *testing.T) {
	base := DefaultParameters()
	assert.True(t, ParameterOverrides{}.IsEmpty())
	assert.Equal(t, base, ParameterOverrides{}.Apply(base))

	roi := decimal.NewFromInt(6)
	age := 65
	o := ParameterOverrides{ROI: &roi, StartingAge: &age}
	assert.False(t, o.IsEmpty())

	got := o.Apply(base)
	assert.True(t, got.ROI.Equal(roi))
	assert.Equal(t, 65, got.StartingAge)
	assert.True(t, got.PortfolioBalance.Equal(base.PortfolioBalance))
	// base is not modified
	assert.Equal(t, 60, base.StartingAge)
	assert.True(t, base.ROI.Equal(decimal.NewFromInt(4)))

	cfg := Configuration{Base: base, Scenarios: []Scenario{{Name: "late", Overrides: o}}}
	assert.Equal(t, 65, cfg.ScenarioParameters(cfg.Scenarios[0]).StartingAge)
}

func TestYearlyProjectionHelpers(t *testing.T) {
	yp := YearlyProjection{Withdrawal: decimal.NewFromInt(100), Taxes: decimal.NewFromInt(20), RemainingBalance: decimal.Zero}
	assert.False(t, yp.IsDepleted(), "ending exactly at zero is still funded")

	yp.RemainingBalance = decimal.NewFromInt(-1)
	assert.True(t, yp.IsDepleted())

	assert.True(t, ScenarioSummary{}.IsSustainable())
	assert.False(t, ScenarioSummary{Depleted: true, DepletionAge: 80}.IsSustainable())
	assert.False(t, ScenarioSummary{Depleted: true, DepletionAge: 0}.IsSustainable())
}

func TestLastsLongerThan(t *testing.T) {
	funded := ScenarioSummary{FinalBalance: decimal.NewFromInt(10)}
	richer := ScenarioSummary{FinalBalance: decimal.NewFromInt(20)}
	early := ScenarioSummary{Depleted: true, DepletionAge: 70, FinalBalance: decimal.NewFromInt(1000)}
	late := ScenarioSummary{Depleted: true, DepletionAge: 80, FinalBalance: decimal.NewFromInt(-1000)}
	atZero := ScenarioSummary{Depleted: true, DepletionAge: 0}

	assert.True(t, funded.LastsLongerThan(late))
	assert.False(t, late.LastsLongerThan(funded))
	assert.True(t, richer.LastsLongerThan(funded))
	assert.True(t, late.LastsLongerThan(early))
	assert.True(t, early.LastsLongerThan(atZero))
	assert.False(t, funded.LastsLongerThan(funded))
}

func TestAssumptions(t *testing.T) {
	a := DefaultParameters().Assumptions()
	require.Len(t, a, 5)
	assert.Equal(t, "Rate of return: 4% annually on the start-of-year balance", a[0])
	assert.Equal(t, "Expense inflation: 2.5% annually", a[1])
	assert.Equal(t, "Tax rate: 20% of every portfolio withdrawal", a[2])
	assert.Equal(t, "Projection horizon: age 60 through 90", a[4])
}

func TestParameterOverridesSetAndGet(t *testing.T) {
	var o ParameterOverrides
	require.NoError(t, o.Set(ParamAnnualExpenses, "80,000"))
	require.NoError(t, o.Set(ParamStartingAge, "65"))

	text, ok := o.Get(ParamAnnualExpenses)
	assert.True(t, ok)
	assert.Equal(t, "80000", text)

	text, ok = o.Get(ParamStartingAge)
	assert.True(t, ok)
	assert.Equal(t, "65", text)

	_, ok = o.Get(ParamROI)
	assert.False(t, ok)

	err := o.Set(ParamROI, "nan")
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Nil(t, o.ROI)

	assert.ErrorIs(t, o.Set("bogus", "1"), ErrInvalidParameter)

	p := o.Apply(DefaultParameters())
	assert.Equal(t, 65, p.StartingAge)
	assert.True(t, p.AnnualExpenses.Equal(decimal.NewFromInt(80000)))
}
