package domain

import (
	"errors"
	"fmt"

	money "github.com/rpgo/retirement-planner/pkg/decimal"
	"github.com/shopspring/decimal"
)

// MaxProjectionAge is the last age (inclusive) every projection runs to.
const MaxProjectionAge = 90

// ErrInvalidParameter is returned when a projection parameter is non-finite,
// non-numeric or, for the starting age, not an integer.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameter names as used in scenario files, preferences and error messages.
const (
	ParamPortfolioBalance   = "portfolio_balance"
	ParamAnnualExpenses     = "annual_expenses"
	ParamNonPortfolioIncome = "non_portfolio_income"
	ParamStartingAge        = "starting_age"
	ParamROI                = "roi"
	ParamTaxRate            = "tax_rate"
	ParamInflationRate      = "inflation_rate"
)

// ParameterNames lists every parameter in display order.
var ParameterNames = []string{
	ParamPortfolioBalance,
	ParamAnnualExpenses,
	ParamNonPortfolioIncome,
	ParamStartingAge,
	ParamROI,
	ParamTaxRate,
	ParamInflationRate,
}

// ProjectionParameters is the immutable input of a projection. ROI, TaxRate and
// InflationRate are percentages (4 means 4%).
type ProjectionParameters struct {
	PortfolioBalance   decimal.Decimal `json:"portfolio_balance" yaml:"portfolio_balance" toml:"portfolio_balance"`
	AnnualExpenses     decimal.Decimal `json:"annual_expenses" yaml:"annual_expenses" toml:"annual_expenses"`
	NonPortfolioIncome decimal.Decimal `json:"non_portfolio_income" yaml:"non_portfolio_income" toml:"non_portfolio_income"`
	StartingAge        int             `json:"starting_age" yaml:"starting_age" toml:"starting_age"`
	ROI                decimal.Decimal `json:"roi" yaml:"roi" toml:"roi"`
	TaxRate            decimal.Decimal `json:"tax_rate" yaml:"tax_rate" toml:"tax_rate"`
	InflationRate      decimal.Decimal `json:"inflation_rate" yaml:"inflation_rate" toml:"inflation_rate"`
}

// DefaultParameters returns the planner's starting values.
func DefaultParameters() ProjectionParameters {
	return ProjectionParameters{
		PortfolioBalance:   decimal.NewFromInt(2000000),
		AnnualExpenses:     decimal.NewFromInt(300000),
		NonPortfolioIncome: decimal.NewFromInt(500000),
		StartingAge:        60,
		ROI:                decimal.NewFromInt(4),
		TaxRate:            decimal.NewFromInt(20),
		InflationRate:      decimal.NewFromFloat(2.5),
	}
}

// NewProjectionParameters builds parameters from floats, rejecting NaN and infinities.
func NewProjectionParameters(portfolioBalance, annualExpenses, nonPortfolioIncome float64, startingAge int, roi, taxRate, inflationRate float64) (ProjectionParameters, error) {
	p := ProjectionParameters{StartingAge: startingAge}
	fields := []struct {
		name  string
		value float64
		dst   *decimal.Decimal
	}{
		{ParamPortfolioBalance, portfolioBalance, &p.PortfolioBalance},
		{ParamAnnualExpenses, annualExpenses, &p.AnnualExpenses},
		{ParamNonPortfolioIncome, nonPortfolioIncome, &p.NonPortfolioIncome},
		{ParamROI, roi, &p.ROI},
		{ParamTaxRate, taxRate, &p.TaxRate},
		{ParamInflationRate, inflationRate, &p.InflationRate},
	}
	for _, f := range fields {
		d, err := money.FromFloat(f.value)
		if err != nil {
			return ProjectionParameters{}, invalid(f.name, err)
		}
		*f.dst = d
	}
	return p, nil
}

// Set parses text into the named parameter. The receiver is left unchanged on error.
func (p *ProjectionParameters) Set(name, text string) error {
	d, err := money.Parse(text)
	if err != nil {
		return invalid(name, err)
	}
	switch name {
	case ParamPortfolioBalance:
		p.PortfolioBalance = d
	case ParamAnnualExpenses:
		p.AnnualExpenses = d
	case ParamNonPortfolioIncome:
		p.NonPortfolioIncome = d
	case ParamStartingAge:
		age, err := integralAge(d)
		if err != nil {
			return invalid(name, err)
		}
		p.StartingAge = age
	case ParamROI:
		p.ROI = d
	case ParamTaxRate:
		p.TaxRate = d
	case ParamInflationRate:
		p.InflationRate = d
	default:
		return fmt.Errorf("%w: unknown parameter %q", ErrInvalidParameter, name)
	}
	return nil
}

// Get returns the named parameter formatted for editing.
func (p ProjectionParameters) Get(name string) (string, error) {
	switch name {
	case ParamPortfolioBalance:
		return p.PortfolioBalance.String(), nil
	case ParamAnnualExpenses:
		return p.AnnualExpenses.String(), nil
	case ParamNonPortfolioIncome:
		return p.NonPortfolioIncome.String(), nil
	case ParamStartingAge:
		return fmt.Sprintf("%d", p.StartingAge), nil
	case ParamROI:
		return p.ROI.String(), nil
	case ParamTaxRate:
		return p.TaxRate.String(), nil
	case ParamInflationRate:
		return p.InflationRate.String(), nil
	}
	return "", fmt.Errorf("%w: unknown parameter %q", ErrInvalidParameter, name)
}

// Validate checks that every decimal parameter is within the range Parse accepts.
func (p ProjectionParameters) Validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{ParamPortfolioBalance, p.PortfolioBalance},
		{ParamAnnualExpenses, p.AnnualExpenses},
		{ParamNonPortfolioIncome, p.NonPortfolioIncome},
		{ParamROI, p.ROI},
		{ParamTaxRate, p.TaxRate},
		{ParamInflationRate, p.InflationRate},
	}
	for _, f := range fields {
		if err := money.CheckRange(f.value); err != nil {
			return invalid(f.name, err)
		}
	}
	return nil
}

// ExpectedLength is the number of yearly records a projection of p produces.
func (p ProjectionParameters) ExpectedLength() int {
	if p.StartingAge > MaxProjectionAge {
		return 0
	}
	return MaxProjectionAge - p.StartingAge + 1
}

func integralAge(d decimal.Decimal) (int, error) {
	if !d.Equal(d.Truncate(0)) {
		return 0, fmt.Errorf("starting age must be a whole number, got %s", d)
	}
	if !d.Abs().LessThan(decimal.NewFromInt(1 << 31)) {
		return 0, fmt.Errorf("starting age %s out of range", d)
	}
	return int(d.IntPart()), nil
}

func invalid(name string, err error) error {
	return fmt.Errorf("%w %s: %v", ErrInvalidParameter, name, err)
}

// ParameterOverrides replaces selected fields of a base parameter set.
type ParameterOverrides struct {
	PortfolioBalance   *decimal.Decimal `json:"portfolio_balance,omitempty" yaml:"portfolio_balance,omitempty"`
	AnnualExpenses     *decimal.Decimal `json:"annual_expenses,omitempty" yaml:"annual_expenses,omitempty"`
	NonPortfolioIncome *decimal.Decimal `json:"non_portfolio_income,omitempty" yaml:"non_portfolio_income,omitempty"`
	StartingAge        *int             `json:"starting_age,omitempty" yaml:"starting_age,omitempty"`
	ROI                *decimal.Decimal `json:"roi,omitempty" yaml:"roi,omitempty"`
	TaxRate            *decimal.Decimal `json:"tax_rate,omitempty" yaml:"tax_rate,omitempty"`
	InflationRate      *decimal.Decimal `json:"inflation_rate,omitempty" yaml:"inflation_rate,omitempty"`
}

// Apply returns a copy of base with every set override applied.
func (o ParameterOverrides) Apply(base ProjectionParameters) ProjectionParameters {
	p := base
	if o.PortfolioBalance != nil {
		p.PortfolioBalance = *o.PortfolioBalance
	}
	if o.AnnualExpenses != nil {
		p.AnnualExpenses = *o.AnnualExpenses
	}
	if o.NonPortfolioIncome != nil {
		p.NonPortfolioIncome = *o.NonPortfolioIncome
	}
	if o.StartingAge != nil {
		p.StartingAge = *o.StartingAge
	}
	if o.ROI != nil {
		p.ROI = *o.ROI
	}
	if o.TaxRate != nil {
		p.TaxRate = *o.TaxRate
	}
	if o.InflationRate != nil {
		p.InflationRate = *o.InflationRate
	}
	return p
}

// Set parses text into the named override, leaving the others untouched.
func (o *ParameterOverrides) Set(name, text string) error {
	var p ProjectionParameters
	if err := p.Set(name, text); err != nil {
		return err
	}
	switch name {
	case ParamPortfolioBalance:
		o.PortfolioBalance = &p.PortfolioBalance
	case ParamAnnualExpenses:
		o.AnnualExpenses = &p.AnnualExpenses
	case ParamNonPortfolioIncome:
		o.NonPortfolioIncome = &p.NonPortfolioIncome
	case ParamStartingAge:
		o.StartingAge = &p.StartingAge
	case ParamROI:
		o.ROI = &p.ROI
	case ParamTaxRate:
		o.TaxRate = &p.TaxRate
	case ParamInflationRate:
		o.InflationRate = &p.InflationRate
	}
	return nil
}

// Get returns the named override formatted for editing, and whether it is set.
func (o ParameterOverrides) Get(name string) (string, bool) {
	var p ProjectionParameters
	set := false
	switch name {
	case ParamPortfolioBalance:
		set = o.PortfolioBalance != nil
	case ParamAnnualExpenses:
		set = o.AnnualExpenses != nil
	case ParamNonPortfolioIncome:
		set = o.NonPortfolioIncome != nil
	case ParamStartingAge:
		set = o.StartingAge != nil
	case ParamROI:
		set = o.ROI != nil
	case ParamTaxRate:
		set = o.TaxRate != nil
	case ParamInflationRate:
		set = o.InflationRate != nil
	}
	if !set {
		return "", false
	}
	text, err := o.Apply(p).Get(name)
	return text, err == nil
}

// IsEmpty reports whether no override is set.
func (o ParameterOverrides) IsEmpty() bool {
	return o == ParameterOverrides{}
}

// Assumptions describes the modeling assumptions behind a projection of p.
func (p ProjectionParameters) Assumptions() []string {
	return []string{
		fmt.Sprintf("Rate of return: %s%% annually on the start-of-year balance", p.ROI.String()),
		fmt.Sprintf("Expense inflation: %s%% annually", p.InflationRate.String()),
		fmt.Sprintf("Tax rate: %s%% of every portfolio withdrawal", p.TaxRate.String()),
		"Non-portfolio income is flat; income above expenses is not reinvested",
		fmt.Sprintf("Projection horizon: age %d through %d", p.StartingAge, MaxProjectionAge),
	}
}
