package calculation

import (
	"math"

	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/pkg/decimal"
)

// Chart segment keys.
const (
	SegmentTargetToday    = "target_today"
	SegmentTargetInflated = "target_inflated"
	SegmentStatutory      = "statutory_net"
	SegmentPrivate        = "private_payout"
	SegmentGap            = "gap"
)

// ChartFigures are the monthly amounts shown on the income chart.
type ChartFigures struct {
	TargetToday    float64
	TargetInflated float64
	StatutoryNet   float64
	PrivatePayout  float64
	Shortfall      float64
}

// ChartSegments lays out the bar chart: two target bars followed by the
// stacked projection of statutory pension, private payout and gap.
func ChartSegments(f ChartFigures) []domain.ChartSegment {
	seg := func(key, label, stack string, v float64, color string) domain.ChartSegment {
		return domain.ChartSegment{
			Key:   key,
			Label: label,
			Stack: stack,
			Value: decimal.Cents(math.Max(0, v)),
			Color: color,
		}
	}
	return []domain.ChartSegment{
		seg(SegmentTargetToday, "Target income today", "target_today", f.TargetToday, "#94a3b8"),
		seg(SegmentTargetInflated, "Target income at retirement", "target_inflated", f.TargetInflated, "#64748b"),
		seg(SegmentStatutory, "Statutory pension (net)", "projection", f.StatutoryNet, "#2563eb"),
		seg(SegmentPrivate, "Private plan payout", "projection", f.PrivatePayout, "#16a34a"),
		seg(SegmentGap, "Income gap", "projection", f.Shortfall, "#dc2626"),
	}
}
