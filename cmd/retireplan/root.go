package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/output"
	"github.com/spf13/cobra"
)

// app holds the state shared by every command of one invocation.
type app struct {
	verbose  bool
	format   string
	currency string
	output   string

	prefs  config.Preferences
	engine *calculation.CalculationEngine
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{prefs: config.DefaultPreferences(), engine: calculation.NewCalculationEngine()}

	root := &cobra.Command{
		Use:   "retireplan",
		Short: "Retirement portfolio projection",
		Long: "Project a retirement portfolio year by year through age 90: growth, " +
			"withdrawals, taxes and the balance left at the end of each year.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log calculation details to stderr")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format (see `retireplan formats`)")
	root.PersistentFlags().StringVar(&a.currency, "currency", "", "ISO currency code for amounts (default from preferences)")
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Write a timestamped report into this directory instead of stdout")

	root.AddCommand(
		newProjectCmd(a),
		newCompareCmd(a),
		newSolveCmd(a),
		newExampleCmd(a),
		newFormatsCmd(),
		newInteractiveCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads preferences and installs the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	prefs, err := config.LoadPreferences()
	if err != nil {
		return err
	}
	a.prefs = prefs

	level, err := calculation.ParseLevel(prefs.Logging.Level)
	if err != nil {
		return fmt.Errorf("preferences: %w", err)
	}
	if a.verbose {
		level = calculation.LevelDebug
	}
	a.engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), level))
	return nil
}

func (a *app) formatName() string {
	if a.format != "" {
		return a.format
	}
	return config.OutputFormat(a.prefs)
}

func (a *app) currencyCode() string {
	if a.currency != "" {
		return a.currency
	}
	return a.prefs.Output.Currency
}

// render writes results to stdout, or to report files when an output directory is set.
func (a *app) render(cmd *cobra.Command, results *domain.ScenarioComparison) error {
	dir := a.output
	if dir == "" {
		dir = a.prefs.Output.Directory
	}
	if dir != "" {
		paths, err := output.GenerateReport(results, a.formatName(), output.ReportOptions{
			Directory: dir,
			Currency:  a.currencyCode(),
		})
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
		}
		return err
	}

	f, err := output.NewFormatter(a.formatName(), a.currencyCode())
	if err != nil {
		return err
	}
	data, err := f.Format(results)
	if err != nil {
		return fmt.Errorf("formatting %s output: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
