package output

import (
	"strconv"

	"github.com/rpgo/pension-gap/internal/domain"
	pgdecimal "github.com/rpgo/pension-gap/pkg/decimal"
	"github.com/shopspring/decimal"
)

// unboundedMark stands in for a payment no finite amount can satisfy.
const unboundedMark = "–"

// FormatCurrency formats a decimal as a euro amount, e.g. "1.234,50 €".
func FormatCurrency(amount decimal.Decimal) string {
	return pgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPayment formats a payment, rendering unbounded payments as a dash.
func FormatPayment(p domain.Payment) string {
	if p.Unbounded {
		return unboundedMark
	}
	return FormatCurrency(p.Amount)
}

// FormatPercentage formats a fraction as a percentage with 1 decimal, e.g. 0.7114 -> "71.1%".
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatCoverage formats a coverage ratio like FormatPercentage but truncates
// instead of rounding, so only full coverage reads "100.0%".
func FormatCoverage(coverage decimal.Decimal) string {
	if coverage.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return FormatPercentage(coverage)
	}
	return coverage.Mul(decimal.NewFromInt(100)).Truncate(1).StringFixed(1) + "%"
}

// csvPayment renders a payment for machine-readable output; unbounded is left empty.
func csvPayment(p domain.Payment) string {
	if p.Unbounded {
		return ""
	}
	return p.Amount.StringFixed(2)
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
