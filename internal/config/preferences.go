package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/retirement-planner/internal/domain"
)

const appName = "retireplan"

// Preferences holds per-user defaults for the CLI.
type Preferences struct {
	Defaults domain.ProjectionParameters `toml:"defaults"`
	Output   OutputPreferences           `toml:"output"`
	Logging  LoggingPreferences          `toml:"logging"`
}

// OutputPreferences selects how results are rendered.
type OutputPreferences struct {
	Format    string `toml:"format"`
	Currency  string `toml:"currency"`
	Directory string `toml:"directory,omitempty"`
}

// LoggingPreferences holds the log threshold.
type LoggingPreferences struct {
	Level string `toml:"level"`
}

// DefaultPreferences returns the preferences used when no file exists.
func DefaultPreferences() Preferences {
	return Preferences{
		Defaults: domain.DefaultParameters(),
		Output: OutputPreferences{
			Format:   "console",
			Currency: "USD",
		},
		Logging: LoggingPreferences{
			Level: "warn",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadPreferences reads the preferences file, returning defaults if it doesn't exist.
func LoadPreferences() (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(PreferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if err := toml.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences(), fmt.Errorf("parsing preferences: %w", err)
	}
	if err := prefs.Defaults.Validate(); err != nil {
		return DefaultPreferences(), fmt.Errorf("preferences defaults: %w", err)
	}
	prefs.Output.Currency = strings.ToUpper(strings.TrimSpace(prefs.Output.Currency))

	return prefs, nil
}

// SavePreferences writes the preferences to disk.
func SavePreferences(prefs Preferences) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(PreferencesPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(prefs)
}

// EncodePreferences renders prefs as TOML text.
func EncodePreferences(prefs Preferences) (string, error) {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(prefs); err != nil {
		return "", fmt.Errorf("encoding preferences: %w", err)
	}
	return sb.String(), nil
}

// OutputFormat returns the format from the env var or preferences, in that order.
func OutputFormat(prefs Preferences) string {
	if format := os.Getenv("RETIREPLAN_FORMAT"); format != "" {
		return format
	}
	return prefs.Output.Format
}

// Exists returns true if a preferences file exists on disk.
func Exists() bool {
	_, err := os.Stat(PreferencesPath())
	return err == nil
}
