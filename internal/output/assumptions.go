package output

import (
	"github.com/rpgo/pension-gap/internal/domain"
)

// DefaultAssumptions lists the fixed modeling assumptions rendered below the
// per-run assumptions in detailed outputs.
var DefaultAssumptions = []string{
	"Statutory pension: earnings points x pension value (40.79 EUR, +2% p.a.)",
	"Contribution ceiling held at 96,600 EUR; average income indexed with wage growth",
	"Health 14.6% + 2.5%, long-term care 3.6%; private premiums +3% p.a.",
	"Income tax: 2025 allowance and zones held constant (no indexing)",
	"Private payouts are treated as already taxed",
}

// AssumptionLines returns the run's assumptions followed by the fixed ones.
func AssumptionLines(result *domain.ProjectionResult) []string {
	lines := make([]string, 0, len(result.Assumptions)+len(DefaultAssumptions))
	lines = append(lines, result.Assumptions...)
	return append(lines, DefaultAssumptions...)
}
