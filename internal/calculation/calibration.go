package calculation

import (
	"github.com/rpgo/pension-gap/internal/domain"
)

// MODEL CALIBRATION (German statutory scheme, 2025 values):
//
// 1. Average annual income 50,493 EUR; contribution ceiling 96,600 EUR held
//    constant over the projection (only the average income is indexed).
// 2. Wage growth = inflation + 1 point, bounded to [0%, 6%].
// 3. Pension value per earnings point 40.79 EUR, growing 2% per year.
// 4. Health 14.6% general + 2.5% supplemental, long-term care 3.6%;
//    private premiums grow with 3% medical inflation.
// 5. Income tax: allowance 12,096 EUR, two progression zones with linearly
//    rising marginal rates (14% -> 24% -> 42%), then 42% and 45% flat.
// 6. Church tax 8% of income tax in Bavaria and Baden-Wuerttemberg, 9% elsewhere.

// DefaultCalibration returns the built-in calibration table. Every call
// returns a fresh copy.
func DefaultCalibration() domain.Calibration {
	return domain.Calibration{
		Pension: domain.PensionCalibration{
			AverageAnnualIncome:  50493,
			ContributionCeiling:  96600,
			MaxPointsPerYear:     2.05,
			WageGrowthMargin:     0.01,
			MaxWageGrowth:        0.06,
			PensionValuePerPoint: 40.79,
			PensionValueGrowth:   0.02,
		},
		Insurance: domain.InsuranceCalibration{
			GeneralHealthRate:      0.146,
			SupplementalHealthRate: 0.025,
			LongTermCareRate:       0.036,
			MedicalInflation:       0.03,
		},
		Tax: domain.TaxCalibration{
			Bands: []domain.TaxBand{
				{Lower: 12096, Upper: 17443, StartRate: 0.14, EndRate: 0.24},
				{Lower: 17443, Upper: 68480, StartRate: 0.24, EndRate: 0.42},
				{Lower: 68480, Upper: 277825, StartRate: 0.42, EndRate: 0.42},
				{Lower: 277825, Upper: 0, StartRate: 0.45, EndRate: 0.45},
			},
			ChurchTaxRate:         0.09,
			ReducedChurchTaxRate:  0.08,
			ReducedChurchTaxAreas: []domain.Jurisdiction{domain.Bayern, domain.BadenWuerttemberg},
		},
	}
}
