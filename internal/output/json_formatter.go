package output

import (
	"encoding/json"

	"github.com/rpgo/retirement-planner/internal/domain"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
// Decimal amounts are emitted as JSON strings to keep them exact.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
