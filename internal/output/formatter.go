package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(results *domain.ScenarioComparison) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

var nowFunc = time.Now

// WriteFormatted runs a formatter and writes output to a timestamped file named
// after the formatter, with extension ext, inside dir ("" means the working directory).
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, dir, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", err
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := filepath.Join(dir, fmt.Sprintf("retirement_report_%s_%s.%s", f.Name(), nowFunc().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// formatterFactories builds each formatter for a currency code.
var formatterFactories = map[string]func(currency string) Formatter{
	"console":      func(c string) Formatter { return ConsoleVerboseFormatter{Currency: c} },
	"console-lite": func(c string) Formatter { return ConsoleFormatter{Currency: c} },
	"csv":          func(string) Formatter { return CSVSummarizer{} },
	"detailed-csv": func(string) Formatter { return CSVDetailedExporter{} },
	"json":         func(string) Formatter { return JSONFormatter{} },
	"html":         func(c string) Formatter { return HTMLFormatter{Currency: c} },
	"pdf":          func(c string) Formatter { return PDFFormatter{Currency: c} },
}

// extensions maps canonical names to report file extensions.
var extensions = map[string]string{
	"console":      "txt",
	"console-lite": "txt",
	"csv":          "csv",
	"detailed-csv": "csv",
	"json":         "json",
	"html":         "html",
	"pdf":          "pdf",
}

// NewFormatter builds the named formatter rendering amounts in currency.
func NewFormatter(name, currency string) (Formatter, error) {
	factory, ok := formatterFactories[NormalizeFormatName(name)]
	if !ok {
		return nil, unsupported(name)
	}
	return factory(currency), nil
}

// Extension returns the report file extension for a format name.
func Extension(name string) string {
	if ext, ok := extensions[NormalizeFormatName(name)]; ok {
		return ext
	}
	return "txt"
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"console-verbose": "console",
	"verbose":         "console",
	"table":           "console",
	"summary":         "console-lite",
	"csv-detailed":    "detailed-csv",
	"csv-summary":     "csv",
	"html-report":     "html",
	"json-pretty":     "json",
	"pdf-report":      "pdf",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatterFactories))
	for name := range formatterFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
