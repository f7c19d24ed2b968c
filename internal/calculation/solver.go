package calculation

import (
	"math"

	"github.com/rpgo/pension-gap/internal/domain"
)

// paymentEpsilon is the top-up below which the shortfall counts as closed.
const paymentEpsilon = 1e-9

// MoneyTerms converts amounts into the money terms selected for display:
// nominal money of the retirement date, or today's purchasing power.
type MoneyTerms struct {
	InflationFactor float64
	Today           bool
}

// NewMoneyTerms builds the conversion for an inflation rate over years.
func NewMoneyTerms(inflation, years float64, today bool) MoneyTerms {
	return MoneyTerms{
		InflationFactor: math.Pow(1+inflation, years),
		Today:           today,
	}
}

// FromNominal converts an amount in retirement-date money.
func (mt MoneyTerms) FromNominal(v float64) float64 {
	if mt.Today && mt.InflationFactor > 0 {
		return v / mt.InflationFactor
	}
	return v
}

// FromToday converts an amount in today's money.
func (mt MoneyTerms) FromToday(v float64) float64 {
	if mt.Today {
		return v
	}
	return v * mt.InflationFactor
}

// ProjectionRates returns the monthly accumulation and decumulation rates. In
// today's-purchasing-power mode inflation is subtracted from both annual rates
// first, which may leave a negative real rate.
func ProjectionRates(a domain.EconomicAssumptions) (accumulation, decumulation float64) {
	acc := a.AccumulationReturn.InexactFloat64()
	dec := a.DecumulationReturn.InexactFloat64()
	if a.TodaysPurchasingPower {
		infl := a.InflationRate.InexactFloat64()
		acc -= infl
		dec -= infl
	}
	return MonthlyRate(acc), MonthlyRate(dec)
}

// GapInputs are the already-converted figures the solver works on. StatutoryNet
// and Target must be in the same money terms the rates produce.
type GapInputs struct {
	DesiredSaving      float64
	StatutoryNet       float64
	Target             float64
	AccumulationRate   float64
	DecumulationRate   float64
	MonthsToRetirement int
	PayoutMonths       int
}

// GapResult is the outcome of the gap solve.
type GapResult struct {
	PrivateCapital  float64
	PrivatePayout   float64
	Shortfall       float64
	RequiredCapital float64
	TopUp           Payment
	Coverage        float64
}

// SolveGap projects the private plan, measures the remaining shortfall against
// the target and solves for the capital and additional monthly saving that
// close it.
func SolveGap(in GapInputs) GapResult {
	capital := FutureValueAnnuity(in.DesiredSaving, in.AccumulationRate, in.MonthsToRetirement)
	payout := PayoutFromCapital(capital, in.DecumulationRate, in.PayoutMonths)

	shortfall := math.Max(0, in.Target-(in.StatutoryNet+payout))
	required := PresentValueAnnuity(shortfall, in.DecumulationRate, in.PayoutMonths)
	topUp := PaymentForFutureValue(required, in.AccumulationRate, in.MonthsToRetirement)

	return GapResult{
		PrivateCapital:  capital,
		PrivatePayout:   payout,
		Shortfall:       shortfall,
		RequiredCapital: required,
		TopUp:           topUp,
		Coverage:        Coverage(in.DesiredSaving, topUp),
	}
}

// Coverage is the share of the total monthly saving need already planned. It
// is exactly 1 only when no top-up remains and 0 when the top-up is unbounded.
func Coverage(desired float64, topUp Payment) float64 {
	amount, ok := topUp.Amount()
	if !ok {
		return 0
	}
	if amount <= paymentEpsilon {
		return 1
	}
	total := desired + amount
	if total <= 0 || desired <= 0 {
		return 0
	}
	c := clamp(desired/total, 0, 1)
	if c >= 1 {
		c = math.Nextafter(1, 0)
	}
	return c
}
