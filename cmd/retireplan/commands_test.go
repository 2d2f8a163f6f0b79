package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the preferences file at a fresh directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RETIREPLAN_FORMAT", "")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

var shortRun = []string{"--balance", "100000", "--expenses", "70000", "--income", "10000", "--age", "88", "--roi", "0", "--tax-rate", "0", "--inflation", "0"}

func TestProjectCommand_CSV(t *testing.T) {
	isolate(t)
	stdout, _, err := execute(t, append([]string{"project", "-f", "csv"}, shortRun...)...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Projection,88,100000.00,-80000.00,100000.00,180000.00,0.00,0.00,88,89,1,33.33", lines[1])
}

func TestProjectCommand_DefaultFormatIsConsole(t *testing.T) {
	isolate(t)
	stdout, _, err := execute(t, append([]string{"project", "--name", "Short"}, shortRun...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "RETIREMENT PORTFOLIO PROJECTION")
	assert.Contains(t, stdout, "SCENARIO 1: Short")
	assert.Contains(t, stdout, "age 89")
}

func TestProjectCommand_InvalidInput(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "project", "--roi", "NaN")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)

	_, _, err = execute(t, "project", "--age", "60", "--birth-date", "1965-01-01")
	assert.Error(t, err, "age and birth date are mutually exclusive")

	_, _, err = execute(t, "project", "-f", "yaml")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = execute(t, "project", "--balance", "1e1500000000")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestProjectCommand_PreferencesBetweenDefaultsAndFlags(t *testing.T) {
	isolate(t)
	prefs := config.DefaultPreferences()
	prefs.Defaults.ROI = decimal.NewFromInt(7)
	prefs.Defaults.TaxRate = decimal.NewFromInt(15)
	prefs.Output.Format = "json"
	require.NoError(t, config.SavePreferences(prefs))

	stdout, _, err := execute(t, "project", "--tax-rate", "30", "--age", "91")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"roi": "7"`, "preference beats the built-in default")
	assert.Contains(t, stdout, `"tax_rate": "30"`, "flag beats the preference")
	assert.Contains(t, stdout, `"projection": []`)
}

func TestProjectCommand_WritesReportDirectory(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	stdout, _, err := execute(t, append([]string{"project", "-f", "json", "-o", dir}, shortRun...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote ")

	matches, err := filepath.Glob(filepath.Join(dir, "retirement_report_json_*.json"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestProjectCommand_VerboseLogsToStderr(t *testing.T) {
	isolate(t)
	_, stderr, err := execute(t, "project", "-v", "-f", "csv", "--age", "91")
	require.NoError(t, err)
	assert.Contains(t, stderr, "WARN")
	assert.Contains(t, stderr, "projection is empty")
}

func TestExampleAndCompareCommands(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	stdout, _, err := execute(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote example scenarios to "+path)

	stdout, _, err = execute(t, "compare", path, "-f", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, stdout, "RETIREMENT SCENARIO SUMMARY")
	assert.Contains(t, stdout, "Baseline:")
	assert.Contains(t, stdout, "Stress Test:")
	assert.Contains(t, stdout, "Recommended: Lean Spending")
}

func TestCompareCommand_Errors(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "compare")
	assert.Error(t, err, "file argument is required")

	_, _, err = execute(t, "compare", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("base:\n  roi: .nan\nscenarios:\n  - name: A\n"), 0o644))
	_, _, err = execute(t, "compare", bad)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestSolveCommand(t *testing.T) {
	isolate(t)
	stdout, _, err := execute(t, "solve", "--balance", "100000", "--income", "0", "--age", "89", "--roi", "0", "--tax-rate", "0", "--inflation", "0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sustainable annual expenses: $50,000.00")
	assert.Contains(t, stdout, "Search iterations:")
	assert.NotContains(t, stdout, "RETIREMENT PORTFOLIO PROJECTION")

	stdout, _, err = execute(t, "solve", "--show-projection", "--age", "85")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SCENARIO 1: Sustainable")
}

func TestSolveCommand_NoSustainableLevel(t *testing.T) {
	isolate(t)
	_, _, err := execute(t, "solve", "--balance=-1000", "--income", "0")
	assert.ErrorIs(t, err, calculation.ErrNoSustainableLevel)
}

func TestFormatsCommand(t *testing.T) {
	isolate(t)
	stdout, _, err := execute(t, "formats")
	require.NoError(t, err)
	for _, name := range output.AvailableFormatterNames() {
		assert.Contains(t, stdout, name)
	}
	assert.Contains(t, stdout, "aliases: csv-detailed")
	assert.Contains(t, stdout, ".pdf")
}

func TestConfigCommands(t *testing.T) {
	isolate(t)
	stdout, _, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "using defaults")
	assert.Contains(t, stdout, "[defaults]")

	stdout, _, err = execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved to "+config.PreferencesPath())
	assert.True(t, config.Exists())

	_, _, err = execute(t, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	assert.NoError(t, err)

	stdout, _, err = execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Status: loaded")
}
