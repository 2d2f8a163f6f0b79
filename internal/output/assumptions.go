package output

import (
	"github.com/rpgo/retirement-planner/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs
// when a comparison carries none of its own.
var DefaultAssumptions = domain.DefaultParameters().Assumptions()

// assumptionsFor returns the comparison's assumptions or the defaults.
func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
