package calculation

import (
	"time"

	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/pkg/decimal"
	stddec "github.com/shopspring/decimal"
)

// ProjectionEngine orchestrates the pension gap projection. It holds only
// immutable configuration; Project may be called concurrently.
type ProjectionEngine struct {
	Calibration   domain.Calibration
	DeductionCalc *DeductionCalculator
	DelayHorizons []int
	Logger        Logger
}

// NewProjectionEngine creates an engine with the built-in calibration
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWithCalibration(DefaultCalibration())
}

// NewProjectionEngineWithCalibration creates an engine with a custom calibration table
func NewProjectionEngineWithCalibration(cal domain.Calibration) *ProjectionEngine {
	return &ProjectionEngine{
		Calibration:   cal,
		DeductionCalc: NewDeductionCalculator(cal),
		DelayHorizons: DefaultDelayHorizons,
		Logger:        NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Project computes a fresh projection for the person as seen on asOf. The
// only errors are domain.ErrImplausibleBirthDate and domain.ErrRetirementInPast.
func (pe *ProjectionEngine) Project(asOf time.Time, personal domain.PersonalInputs, assumptions domain.EconomicAssumptions) (*domain.ProjectionResult, error) {
	p := personal.Normalized()
	a := assumptions.Clamped()

	axis, err := BuildTimeAxis(asOf, p)
	if err != nil {
		pe.Logger.Warnf("projection rejected: %v", err)
		return nil, err
	}

	inflation := a.InflationRate.InexactFloat64()
	terms := NewMoneyTerms(inflation, axis.FractionalYears(), a.TodaysPurchasingPower)
	accRate, decRate := ProjectionRates(a)

	statutory := EstimateStatutoryPension(p.GrossMonthlyIncome.InexactFloat64(), axis, inflation, pe.Calibration.Pension)
	deductions := pe.DeductionCalc.Calculate(statutory.GrossMonthly, p, axis)

	targetToday := p.TargetNetIncome.InexactFloat64()
	desired := p.DesiredSaving.InexactFloat64()

	gap := SolveGap(GapInputs{
		DesiredSaving:      desired,
		StatutoryNet:       terms.FromNominal(deductions.Net),
		Target:             terms.FromToday(targetToday),
		AccumulationRate:   accRate,
		DecumulationRate:   decRate,
		MonthsToRetirement: axis.MonthsToRetirement,
		PayoutMonths:       axis.PayoutMonths,
	})

	delays := DelayScenarios(gap.RequiredCapital, desired, accRate, axis.MonthsToRetirement, pe.DelayHorizons)

	pe.Logger.Debugf("time axis: %d months to retirement (%s), %d payout months, %d work years",
		axis.MonthsToRetirement, axis.RetirementDate.Format("2006-01-02"), axis.PayoutMonths, axis.WorkYears)
	pe.Logger.Debugf("statutory: %.2f points x %.2f = %.2f gross, net %.2f",
		statutory.EarningsPoints, statutory.PensionValuePerPoint, statutory.GrossMonthly, deductions.Net)
	pe.Logger.Debugf("gap: target %.2f, private payout %.2f, shortfall %.2f, capital %.2f, coverage %.4f",
		terms.FromToday(targetToday), gap.PrivatePayout, gap.Shortfall, gap.RequiredCapital, gap.Coverage)

	result := &domain.ProjectionResult{
		AsOf:                  axis.AsOf,
		RetirementDate:        axis.RetirementDate,
		MonthsToRetirement:    axis.MonthsToRetirement,
		YearsToRetirement:     axis.YearsToRetirement,
		PayoutMonths:          axis.PayoutMonths,
		TodaysPurchasingPower: a.TodaysPurchasingPower,
		InflationFactor:       stddec.NewFromFloat(terms.InflationFactor).Round(6),
		Statutory: domain.StatutoryPension{
			WorkYears:            statutory.WorkYears,
			EarningsPoints:       stddec.NewFromFloat(statutory.EarningsPoints).Round(4),
			PensionValuePerPoint: decimal.Cents(statutory.PensionValuePerPoint),
			GrossMonthly:         decimal.Cents(statutory.GrossMonthly),
			HealthCareDeduction:  decimal.Cents(deductions.HealthCare),
			PrivatePremium:       decimal.Cents(deductions.PrivatePremium),
			TaxableShare:         stddec.NewFromFloat(deductions.TaxableShare).Round(4),
			IncomeTax:            decimal.Cents(deductions.IncomeTax),
			ChurchTax:            decimal.Cents(deductions.ChurchTax),
			NetMonthly:           decimal.Cents(deductions.Net),
		},
		StatutoryGross:     decimal.Cents(terms.FromNominal(statutory.GrossMonthly)),
		StatutoryNet:       decimal.Cents(terms.FromNominal(deductions.Net)),
		PrivateCapital:     decimal.Cents(gap.PrivateCapital),
		PrivatePayout:      decimal.Cents(gap.PrivatePayout),
		TargetToday:        decimal.Cents(targetToday),
		TargetAtRetirement: decimal.Cents(targetToday * terms.InflationFactor),
		Target:             decimal.Cents(terms.FromToday(targetToday)),
		Shortfall:          decimal.Cents(gap.Shortfall),
		RequiredCapital:    decimal.Cents(gap.RequiredCapital),
		RequiredSaving:     toDomainPayment(gap.TopUp),
		DesiredSaving:      decimal.Cents(desired),
		Coverage:           stddec.NewFromFloat(gap.Coverage),
		Delays:             toDomainDelays(delays),
		Chart: ChartSegments(ChartFigures{
			TargetToday:    targetToday,
			TargetInflated: targetToday * terms.InflationFactor,
			StatutoryNet:   terms.FromNominal(deductions.Net),
			PrivatePayout:  gap.PrivatePayout,
			Shortfall:      gap.Shortfall,
		}),
		Assumptions: a.GenerateAssumptions(),
	}

	return result, nil
}

func toDomainPayment(p Payment) domain.Payment {
	amount, ok := p.Amount()
	if !ok {
		return domain.Payment{Unbounded: true}
	}
	return domain.Payment{Amount: decimal.Cents(amount)}
}

func toDomainDelays(delays []DelayOutcome) []domain.DelayScenario {
	out := make([]domain.DelayScenario, 0, len(delays))
	for _, d := range delays {
		out = append(out, domain.DelayScenario{
			DelayYears:       d.DelayYears,
			SavingMonths:     d.SavingMonths,
			RequiredSaving:   toDomainPayment(d.RequiredSaving),
			ProjectedCapital: decimal.Cents(d.ProjectedCapital),
			Contributions:    decimal.Cents(d.Contributions),
			Interest:         decimal.Cents(d.Interest),
		})
	}
	return out
}
