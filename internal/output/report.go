package output

import (
	"fmt"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// ReportOptions controls where and how GenerateReport writes files.
type ReportOptions struct {
	Directory string
	Currency  string
}

// GenerateReport writes results in the named format to a timestamped file and
// returns its path. "all" writes every registered format.
func GenerateReport(results *domain.ScenarioComparison, format string, opts ReportOptions) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var paths []string
		for _, name := range AvailableFormatterNames() {
			written, err := GenerateReport(results, name, opts)
			if err != nil {
				return paths, err
			}
			paths = append(paths, written...)
		}
		return paths, nil
	}

	f, err := NewFormatter(format, opts.Currency)
	if err != nil {
		return nil, err
	}
	path, err := WriteFormatted(f, results, opts.Directory, Extension(format))
	if err != nil {
		return nil, fmt.Errorf("writing %s report: %w", f.Name(), err)
	}
	return []string{path}, nil
}
