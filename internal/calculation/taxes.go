package calculation

import (
	"math"

	"github.com/rpgo/pension-gap/internal/domain"
)

// TAX APPROXIMATION ASSUMPTIONS:
//
// 1. Only the statutory pension is taxed; private payouts are treated as
//    already taxed.
// 2. The taxable share of the pension is fixed by the retirement year.
// 3. Bands are held at their calibration values for every projection year
//    (no indexing of the allowance or band limits).
// 4. Solidarity surcharge and special-expense deductions are ignored.

// PensionTaxableShare is the fraction of the statutory pension subject to
// income tax for a cohort retiring in year.
func PensionTaxableShare(year int) float64 {
	switch {
	case year <= 2005:
		return 0.50
	case year <= 2020:
		return clamp(0.50+0.02*float64(year-2005), 0.50, 0.80)
	case year <= 2057:
		return clamp(0.80+0.01*float64(year-2020), 0.80, 1.00)
	default:
		return 1.00
	}
}

// IncomeTaxCalculator approximates the progressive income tax with bands
// whose marginal rate is flat or rises linearly.
type IncomeTaxCalculator struct {
	Bands                 []domain.TaxBand
	ChurchTaxRate         float64
	ReducedChurchTaxRate  float64
	ReducedChurchTaxAreas []domain.Jurisdiction
}

// NewIncomeTaxCalculator creates a tax calculator from a calibration table
func NewIncomeTaxCalculator(cal domain.TaxCalibration) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{
		Bands:                 cal.Bands,
		ChurchTaxRate:         cal.ChurchTaxRate,
		ReducedChurchTaxRate:  cal.ReducedChurchTaxRate,
		ReducedChurchTaxAreas: cal.ReducedChurchTaxAreas,
	}
}

// CalculateAnnualTax returns the income tax on an annual taxable income.
func (tc *IncomeTaxCalculator) CalculateAnnualTax(taxable float64) float64 {
	var tax float64
	for _, band := range tc.Bands {
		if taxable <= band.Lower {
			break
		}
		upper := band.Upper
		if upper <= band.Lower {
			upper = math.Inf(1)
		}
		inBand := math.Min(taxable, upper) - band.Lower
		tax += inBand * band.StartRate
		if band.EndRate != band.StartRate && !math.IsInf(upper, 1) {
			// marginal rate rises linearly across the band
			tax += (band.EndRate - band.StartRate) * inBand * inBand / (2 * (upper - band.Lower))
		}
	}
	return tax
}

// CalculateMonthlyTax returns the monthly income tax on a monthly gross
// pension of which share is taxable.
func (tc *IncomeTaxCalculator) CalculateMonthlyTax(grossMonthly, share float64) float64 {
	if grossMonthly <= 0 || share <= 0 {
		return 0
	}
	return tc.CalculateAnnualTax(grossMonthly*12*share) / 12
}

// ChurchTaxRateFor returns the church tax rate applied to income tax in j.
func (tc *IncomeTaxCalculator) ChurchTaxRateFor(j domain.Jurisdiction) float64 {
	for _, area := range tc.ReducedChurchTaxAreas {
		if area == j {
			return tc.ReducedChurchTaxRate
		}
	}
	return tc.ChurchTaxRate
}

// CalculateChurchTax returns the church tax on an income tax amount.
func (tc *IncomeTaxCalculator) CalculateChurchTax(incomeTax float64, j domain.Jurisdiction, applicable bool) float64 {
	if !applicable || incomeTax <= 0 {
		return 0
	}
	return incomeTax * tc.ChurchTaxRateFor(j)
}
