package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDirHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "retireplan"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "retireplan", "config.toml"), PreferencesPath())
}

func TestLoadPreferencesDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	assert.False(t, Exists())
	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "console", prefs.Output.Format)
	assert.Equal(t, "USD", prefs.Output.Currency)
	assert.True(t, prefs.Defaults.PortfolioBalance.Equal(domain.DefaultParameters().PortfolioBalance))
}

func TestSaveAndLoadPreferences(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	prefs := DefaultPreferences()
	prefs.Defaults.AnnualExpenses = decimal.NewFromInt(90000)
	prefs.Defaults.StartingAge = 67
	prefs.Output.Format = "csv"
	prefs.Output.Currency = "EUR"
	prefs.Output.Directory = "/tmp/reports"

	require.NoError(t, SavePreferences(prefs))
	assert.True(t, Exists())

	loaded, err := LoadPreferences()
	require.NoError(t, err)
	assert.True(t, loaded.Defaults.AnnualExpenses.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, 67, loaded.Defaults.StartingAge)
	assert.True(t, loaded.Defaults.InflationRate.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, "csv", loaded.Output.Format)
	assert.Equal(t, "EUR", loaded.Output.Currency)
	assert.Equal(t, "/tmp/reports", loaded.Output.Directory)
}

func TestLoadPreferencesPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := "[defaults]\nroi = 6.5\nstarting_age = 58\n\n[output]\ncurrency = \"gbp\"\n"
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "retireplan"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte(content), 0o644))

	prefs, err := LoadPreferences()
	require.NoError(t, err)
	assert.True(t, prefs.Defaults.ROI.Equal(decimal.NewFromFloat(6.5)))
	assert.Equal(t, 58, prefs.Defaults.StartingAge)
	assert.True(t, prefs.Defaults.TaxRate.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "GBP", prefs.Output.Currency)
	assert.Equal(t, "console", prefs.Output.Format)
}

func TestLoadPreferencesRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "retireplan"), 0o755))
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte("[output\nformat = "), 0o644))

	prefs, err := LoadPreferences()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing preferences")
	assert.Equal(t, "console", prefs.Output.Format)
}

func TestLoadPreferencesRejectsHugeExponent(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "retireplan"), 0o755))
	content := "[defaults]\nportfolio_balance = \"1e1500000000\"\n"
	require.NoError(t, os.WriteFile(PreferencesPath(), []byte(content), 0o644))

	prefs, err := LoadPreferences()
	require.ErrorIs(t, err, domain.ErrInvalidParameter)
	assert.True(t, prefs.Defaults.PortfolioBalance.Equal(domain.DefaultParameters().PortfolioBalance))
}

func TestEncodePreferences(t *testing.T) {
	text, err := EncodePreferences(DefaultPreferences())
	require.NoError(t, err)
	assert.Contains(t, text, "[defaults]")
	assert.Contains(t, text, "starting_age = 60")
	assert.Contains(t, text, "[output]")
	assert.Contains(t, text, `format = "console"`)
}

func TestOutputFormatEnvOverride(t *testing.T) {
	prefs := DefaultPreferences()
	t.Setenv("RETIREPLAN_FORMAT", "")
	assert.Equal(t, "console", OutputFormat(prefs))

	t.Setenv("RETIREPLAN_FORMAT", "json")
	assert.Equal(t, "json", OutputFormat(prefs))
}
