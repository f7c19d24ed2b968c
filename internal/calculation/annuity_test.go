package calculation

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnnuityZeroRateIsLinear checks the zero-rate fallback is exact
func TestAnnuityZeroRateIsLinear(t *testing.T) {
	for _, n := range []int{0, 1, 12, 360, 540} {
		for _, pmt := range []float64{0, 1, 123.45, 2000} {
			assert.Equal(t, pmt*float64(n), PresentValueAnnuity(pmt, 0, n), "pv n=%d pmt=%v", n, pmt)
			assert.Equal(t, pmt*float64(n), FutureValueAnnuity(pmt, 0, n), "fv n=%d pmt=%v", n, pmt)
		}
	}
	// below the epsilon the linear formula is used as well
	assert.Equal(t, 1200.0, FutureValueAnnuity(100, 1e-13, 12))
}

func TestAnnuityNonPositivePeriods(t *testing.T) {
	for _, n := range []int{0, -1, -24} {
		assert.Zero(t, PresentValueAnnuity(100, 0.005, n))
		assert.Zero(t, FutureValueAnnuity(100, 0.005, n))
	}
}

func TestAnnuityKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"FV 200/month at 7% over 30 years", FutureValueAnnuity(200, MonthlyRate(0.07), 360), 243994.199155},
		{"PV 1000/month at 2% over 18 years", PresentValueAnnuity(1000, MonthlyRate(0.02), 216), 181268.743182},
		{"Payout of 100k at 2% over 18 years", PayoutFromCapital(100000, MonthlyRate(0.02), 216), 551.667090},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.got, 1e-4)
		})
	}

	p := PaymentForFutureValue(100000, MonthlyRate(0.07), 360)
	amount, ok := p.Amount()
	require.True(t, ok)
	assert.InDelta(t, 81.969162, amount, 1e-5)
}

// TestPaymentRoundTrip: paying the solved payment reproduces the future value
func TestPaymentRoundTrip(t *testing.T) {
	rates := []float64{0, 1e-13, MonthlyRate(0.01), MonthlyRate(0.07), MonthlyRate(0.15), MonthlyRate(-0.02), MonthlyRate(-0.10)}
	periods := []int{1, 12, 96, 360, 600}
	payments := []float64{0, 0.01, 50, 200, 12500}

	for _, r := range rates {
		for _, n := range periods {
			for _, pmt := range payments {
				t.Run(fmt.Sprintf("r=%g/n=%d/pmt=%g", r, n, pmt), func(t *testing.T) {
					fv := FutureValueAnnuity(pmt, r, n)
					p := PaymentForFutureValue(fv, r, n)
					amount, ok := p.Amount()
					require.True(t, ok)
					assert.InEpsilon(t, pmt+1, amount+1, 1e-9)
				})
			}
		}
	}
}

func TestPaymentForFutureValueEdgeCases(t *testing.T) {
	assert.True(t, PaymentForFutureValue(0, 0.01, 12).IsZero())
	assert.True(t, PaymentForFutureValue(-5, 0.01, 12).IsZero())
	assert.True(t, PaymentForFutureValue(1000, 0.01, 0).IsUnbounded())
	assert.True(t, PaymentForFutureValue(1000, 0.01, -3).IsUnbounded())
	// (1-1)^2 - 1 over -2 collapses the compounding factor to zero
	assert.True(t, PaymentForFutureValue(1000, -2, 2).IsUnbounded())

	amount, ok := PaymentForFutureValue(1200, 0, 12).Amount()
	require.True(t, ok)
	assert.Equal(t, 100.0, amount)
}

func TestPayoutFromCapitalNonPositive(t *testing.T) {
	for _, r := range []float64{0, 0.001, -0.001, 0.05} {
		assert.Zero(t, PayoutFromCapital(0, r, 120))
		assert.Zero(t, PayoutFromCapital(-1000, r, 120))
		assert.Zero(t, PayoutFromCapital(1000, r, 0))
		assert.Zero(t, PayoutFromCapital(1000, r, -12))
	}
	assert.Equal(t, 10.0, PayoutFromCapital(1200, 0, 120))
}

// TestPayoutInvertsPresentValue: drawing the payout exhausts the capital
func TestPayoutInvertsPresentValue(t *testing.T) {
	r := MonthlyRate(0.03)
	payout := PayoutFromCapital(250000, r, 300)
	assert.InDelta(t, 250000, PresentValueAnnuity(payout, r, 300), 1e-6)
}

func TestPaymentTags(t *testing.T) {
	b := Bounded(12.5)
	amount, ok := b.Amount()
	assert.True(t, ok)
	assert.Equal(t, 12.5, amount)
	assert.False(t, b.IsUnbounded())
	assert.False(t, b.IsZero())

	u := Unbounded()
	_, ok = u.Amount()
	assert.False(t, ok)
	assert.True(t, u.IsUnbounded())
	assert.False(t, u.IsZero())
	assert.False(t, math.IsInf(amount, 0))
}
