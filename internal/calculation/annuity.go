package calculation

import "math"

// zeroRateEpsilon is the rate magnitude below which the linear (zero-rate)
// formulas are used.
const zeroRateEpsilon = 1e-12

// MonthlyRate converts an annual rate to the monthly rate compounded monthly.
func MonthlyRate(annual float64) float64 {
	return annual / 12
}

// Payment is a level monthly payment that is either a finite amount or
// unbounded (no finite payment reaches the goal).
type Payment struct {
	amount    float64
	unbounded bool
}

// Bounded wraps a finite payment amount.
func Bounded(amount float64) Payment { return Payment{amount: amount} }

// Unbounded is the payment of a goal that cannot be reached.
func Unbounded() Payment { return Payment{unbounded: true} }

// IsUnbounded reports whether no finite payment exists.
func (p Payment) IsUnbounded() bool { return p.unbounded }

// Amount returns the finite amount and whether it is bounded.
func (p Payment) Amount() (float64, bool) { return p.amount, !p.unbounded }

// IsZero reports whether the payment is bounded and exactly zero.
func (p Payment) IsZero() bool { return !p.unbounded && p.amount == 0 }

// PresentValueAnnuity is the present value of n ordinary payments of pmt at
// monthly rate r.
func PresentValueAnnuity(pmt, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if math.Abs(r) < zeroRateEpsilon {
		return pmt * float64(n)
	}
	return pmt * (1 - math.Pow(1+r, -float64(n))) / r
}

// FutureValueAnnuity is the value after n ordinary payments of pmt at monthly
// rate r.
func FutureValueAnnuity(pmt, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if math.Abs(r) < zeroRateEpsilon {
		return pmt * float64(n)
	}
	return pmt * (math.Pow(1+r, float64(n)) - 1) / r
}

// PaymentForFutureValue is the level payment whose future value after n
// periods at rate r equals fv.
func PaymentForFutureValue(fv, r float64, n int) Payment {
	if fv <= 0 {
		return Bounded(0)
	}
	if n <= 0 {
		return Unbounded()
	}
	factor := FutureValueAnnuity(1, r, n)
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Unbounded()
	}
	return Bounded(fv / factor)
}

// PayoutFromCapital is the monthly withdrawal a lump sum supports over n
// periods at rate r.
func PayoutFromCapital(capital, r float64, n int) float64 {
	if capital <= 0 || n <= 0 {
		return 0
	}
	factor := PresentValueAnnuity(1, r, n)
	if factor <= 0 {
		return 0
	}
	return capital / factor
}
