package main

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Preferences file: %s\n", config.PreferencesPath())
			if config.Exists() {
				fmt.Fprintln(out, "Status: loaded")
			} else {
				fmt.Fprintln(out, "Status: using defaults (no preferences file)")
			}
			fmt.Fprintln(out)

			text, err := config.EncodePreferences(a.prefs)
			if err != nil {
				return err
			}
			fmt.Fprint(out, text)
			return nil
		},
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a preferences file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if config.Exists() && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", config.PreferencesPath())
			}
			if err := config.SavePreferences(config.DefaultPreferences()); err != nil {
				return fmt.Errorf("saving preferences: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to %s\n", config.PreferencesPath())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing preferences file")
	return cmd
}
