package output

import (
	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/shopspring/decimal"
)

// Gap statuses.
const (
	StatusCovered     = "covered"
	StatusPartial     = "partial"
	StatusUnreachable = "unreachable"
)

// Assessment summarizes a projection for headline display.
type Assessment struct {
	Status string
	// CostOfWaiting is the extra monthly saving the longest delay horizon
	// needs over starting now. Zero when either payment is unbounded.
	CostOfWaiting decimal.Decimal
	LongestDelay  int
}

// AnalyzeGap classifies the coverage and prices the longest delay horizon.
// A gap counts as covered only when the engine reports full coverage, which
// it does once the remaining top-up is zero.
func AnalyzeGap(result *domain.ProjectionResult) Assessment {
	var a Assessment
	switch {
	case result.RequiredSaving.Unbounded:
		a.Status = StatusUnreachable
	case result.Coverage.Equal(decimal.NewFromInt(1)):
		a.Status = StatusCovered
	default:
		a.Status = StatusPartial
	}

	now, ok := result.DelayScenario(0)
	if !ok || len(result.Delays) == 0 {
		return a
	}
	last := result.Delays[len(result.Delays)-1]
	a.LongestDelay = last.DelayYears
	if now.RequiredSaving.Unbounded || last.RequiredSaving.Unbounded {
		return a
	}
	a.CostOfWaiting = last.RequiredSaving.Amount.Sub(now.RequiredSaving.Amount)
	return a
}
