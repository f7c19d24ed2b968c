package calculation

import (
	"math"

	"github.com/rpgo/pension-gap/internal/domain"
)

// StatutoryEstimate is the gross statutory pension at retirement.
type StatutoryEstimate struct {
	WorkYears            int
	WageGrowth           float64
	EarningsPoints       float64
	PensionValuePerPoint float64
	GrossMonthly         float64
}

// WageGrowth is the annual income growth implied by the inflation rate.
func WageGrowth(inflation float64, cal domain.PensionCalibration) float64 {
	return clamp(inflation+cal.WageGrowthMargin, 0, cal.MaxWageGrowth)
}

// EarningsPoints sums the points accrued over workYears. Year i projects both
// the person's income and the average income forward at growth g; income
// above the contribution ceiling does not accrue.
func EarningsPoints(grossMonthly float64, workYears int, g float64, cal domain.PensionCalibration) float64 {
	annual := grossMonthly * 12
	var total float64
	for i := 0; i < workYears; i++ {
		factor := math.Pow(1+g, float64(i))
		average := cal.AverageAnnualIncome * factor
		if average <= 0 {
			continue
		}
		contributable := math.Min(annual*factor, cal.ContributionCeiling)
		total += clamp(contributable/average, 0, cal.MaxPointsPerYear)
	}
	return total
}

// PensionValueAt projects the value of one earnings point years ahead.
func PensionValueAt(years float64, cal domain.PensionCalibration) float64 {
	return cal.PensionValuePerPoint * math.Pow(1+cal.PensionValueGrowth, years)
}

// EstimateStatutoryPension converts a career into a gross monthly pension at
// retirement.
func EstimateStatutoryPension(grossMonthly float64, axis TimeAxis, inflation float64, cal domain.PensionCalibration) StatutoryEstimate {
	workYears := axis.WorkYears
	if workYears < 0 {
		workYears = 0
	}
	g := WageGrowth(inflation, cal)
	points := EarningsPoints(grossMonthly, workYears, g, cal)
	value := PensionValueAt(axis.FractionalYears(), cal)

	return StatutoryEstimate{
		WorkYears:            workYears,
		WageGrowth:           g,
		EarningsPoints:       points,
		PensionValuePerPoint: value,
		GrossMonthly:         points * value,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
