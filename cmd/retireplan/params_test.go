package main

import (
	"testing"
	"time"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addParameterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestResolveParameters_UnsetFlagsKeepBase(t *testing.T) {
	base := domain.DefaultParameters()
	p, err := resolveParameters(flagCommand(t), base)
	require.NoError(t, err)
	assert.Equal(t, base, p)
}

func TestResolveParameters_FlagsOverrideBase(t *testing.T) {
	p, err := resolveParameters(flagCommand(t,
		"--balance", "$1,250,000",
		"--expenses", "80000",
		"--age", "62",
		"--roi", "5.5%",
	), domain.DefaultParameters())
	require.NoError(t, err)

	assert.True(t, p.PortfolioBalance.Equal(decimal.NewFromInt(1250000)))
	assert.True(t, p.AnnualExpenses.Equal(decimal.NewFromInt(80000)))
	assert.Equal(t, 62, p.StartingAge)
	assert.True(t, p.ROI.Equal(decimal.RequireFromString("5.5")))
	assert.True(t, p.TaxRate.Equal(decimal.NewFromInt(20)), "unset flags keep the base value")
}

func TestResolveParameters_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nan", []string{"--roi", "NaN"}},
		{"infinite", []string{"--balance", "-Inf"}},
		{"text", []string{"--expenses", "lots"}},
		{"fractional age", []string{"--age", "60.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveParameters(flagCommand(t, tt.args...), domain.DefaultParameters())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)
		})
	}
}

func TestResolveParameters_BirthDate(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	p, err := resolveParameters(flagCommand(t, "--birth-date", "1965-06-02"), domain.DefaultParameters())
	require.NoError(t, err)
	assert.Equal(t, 59, p.StartingAge)

	_, err = resolveParameters(flagCommand(t, "--birth-date", "2030-01-01"), domain.DefaultParameters())
	assert.ErrorContains(t, err, "in the future")

	_, err = resolveParameters(flagCommand(t, "--birth-date", "06/02/1965"), domain.DefaultParameters())
	assert.ErrorContains(t, err, "YYYY-MM-DD")
}

func TestParameterValuesRoundTrip(t *testing.T) {
	base := domain.DefaultParameters()
	values, err := parameterValues(base)
	require.NoError(t, err)
	assert.Equal(t, "2000000", *values[domain.ParamPortfolioBalance])
	assert.Equal(t, "2.5", *values[domain.ParamInflationRate])

	*values[domain.ParamStartingAge] = "65"
	p, err := parametersFromValues(base, values)
	require.NoError(t, err)
	assert.Equal(t, 65, p.StartingAge)
	assert.True(t, p.PortfolioBalance.Equal(base.PortfolioBalance))
}

func TestValidateParameter(t *testing.T) {
	assert.NoError(t, validateParameter(domain.ParamROI)("4.25"))
	assert.ErrorIs(t, validateParameter(domain.ParamROI)("nan"), domain.ErrInvalidParameter)
	assert.ErrorIs(t, validateParameter(domain.ParamStartingAge)("60.5"), domain.ErrInvalidParameter)
}
