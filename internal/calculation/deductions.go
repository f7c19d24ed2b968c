package calculation

import (
	"math"

	"github.com/rpgo/pension-gap/internal/domain"
)

// Deductions breaks down what is taken off the gross statutory pension.
type Deductions struct {
	HealthCare     float64
	PrivatePremium float64
	TaxableShare   float64
	IncomeTax      float64
	ChurchTax      float64
	Net            float64
}

// Total is the sum of all deductions.
func (d Deductions) Total() float64 {
	return d.HealthCare + d.PrivatePremium + d.IncomeTax + d.ChurchTax
}

// HealthCareRate is the combined health and long-term care rate charged on a
// pension under legal insurance. With the reduced contribution the pensioner
// carries half of the health rates; care is always paid in full.
func HealthCareRate(cal domain.InsuranceCalibration, reduced bool) float64 {
	health := cal.GeneralHealthRate + cal.SupplementalHealthRate
	if reduced {
		health /= 2
	}
	return health + cal.LongTermCareRate
}

// EscalatedPremium projects a private premium years ahead at medical inflation.
func EscalatedPremium(premium, years float64, cal domain.InsuranceCalibration) float64 {
	if premium <= 0 {
		return 0
	}
	return premium * math.Pow(1+cal.MedicalInflation, years)
}

// DeductionCalculator turns a gross statutory pension into a net pension.
type DeductionCalculator struct {
	Insurance domain.InsuranceCalibration
	TaxCalc   *IncomeTaxCalculator
}

// NewDeductionCalculator creates a deduction calculator from a calibration table
func NewDeductionCalculator(cal domain.Calibration) *DeductionCalculator {
	return &DeductionCalculator{
		Insurance: cal.Insurance,
		TaxCalc:   NewIncomeTaxCalculator(cal.Tax),
	}
}

// Calculate computes the deductions on a monthly gross pension for a person
// retiring axis.RetirementDate. Amounts are nominal at retirement.
func (dc *DeductionCalculator) Calculate(gross float64, p domain.PersonalInputs, axis TimeAxis) Deductions {
	var d Deductions

	switch p.HealthInsurance {
	case domain.InsurancePrivate:
		d.PrivatePremium = EscalatedPremium(p.PrivatePremium.InexactFloat64(), axis.FractionalYears(), dc.Insurance)
	default:
		if gross > 0 {
			d.HealthCare = gross * HealthCareRate(dc.Insurance, p.ReducedContribution)
		}
	}

	d.TaxableShare = PensionTaxableShare(axis.RetirementDate.Year())
	d.IncomeTax = dc.TaxCalc.CalculateMonthlyTax(gross, d.TaxableShare)
	d.ChurchTax = dc.TaxCalc.CalculateChurchTax(d.IncomeTax, p.Jurisdiction, p.ChurchTax)
	d.Net = math.Max(0, gross-d.Total())
	return d
}
