package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/pension-gap/internal/domain"
)

// ConsoleFormatter renders a human-readable projection report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(r *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer

	terms := "nominal money at retirement"
	if r.TodaysPurchasingPower {
		terms = "today's purchasing power"
	}

	fmt.Fprintln(&buf, "PENSION GAP PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 50))
	fmt.Fprintf(&buf, "As of:                 %s\n", r.AsOf.Format("2006-01-02"))
	fmt.Fprintf(&buf, "Retirement:            %s (%d months)\n", r.RetirementDate.Format("2006-01-02"), r.MonthsToRetirement)
	fmt.Fprintf(&buf, "Payout period:         %d months\n", r.PayoutMonths)
	fmt.Fprintf(&buf, "Amounts in:            %s\n", terms)
	fmt.Fprintln(&buf)

	s := r.Statutory
	fmt.Fprintln(&buf, "STATUTORY PENSION (nominal, at retirement)")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "  Work years:            %d\n", s.WorkYears)
	fmt.Fprintf(&buf, "  Earnings points:       %s\n", s.EarningsPoints.StringFixed(2))
	fmt.Fprintf(&buf, "  Value per point:       %s\n", FormatCurrency(s.PensionValuePerPoint))
	fmt.Fprintf(&buf, "  Gross pension:         %s\n", FormatCurrency(s.GrossMonthly))
	if !s.PrivatePremium.IsZero() {
		fmt.Fprintf(&buf, "  Private premium:      -%s\n", FormatCurrency(s.PrivatePremium))
	} else {
		fmt.Fprintf(&buf, "  Health & care:        -%s\n", FormatCurrency(s.HealthCareDeduction))
	}
	fmt.Fprintf(&buf, "  Income tax (%s):  -%s\n", FormatPercentage(s.TaxableShare), FormatCurrency(s.IncomeTax))
	if !s.ChurchTax.IsZero() {
		fmt.Fprintf(&buf, "  Church tax:           -%s\n", FormatCurrency(s.ChurchTax))
	}
	fmt.Fprintf(&buf, "  Net pension:           %s\n", FormatCurrency(s.NetMonthly))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONTHLY INCOME AT RETIREMENT")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "  Target:                %s\n", FormatCurrency(r.Target))
	fmt.Fprintf(&buf, "  Statutory (net):       %s\n", FormatCurrency(r.StatutoryNet))
	fmt.Fprintf(&buf, "  Private plan payout:   %s\n", FormatCurrency(r.PrivatePayout))
	fmt.Fprintf(&buf, "  Gap:                   %s\n", FormatCurrency(r.Shortfall))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SAVING")
	fmt.Fprintln(&buf, strings.Repeat("-", 50))
	fmt.Fprintf(&buf, "  Planned saving:        %s\n", FormatCurrency(r.DesiredSaving))
	fmt.Fprintf(&buf, "  Projected capital:     %s\n", FormatCurrency(r.PrivateCapital))
	fmt.Fprintf(&buf, "  Capital to close gap:  %s\n", FormatCurrency(r.RequiredCapital))
	fmt.Fprintf(&buf, "  Additional saving:     %s\n", FormatPayment(r.RequiredSaving))
	fmt.Fprintf(&buf, "  Coverage:              %s\n", FormatCoverage(r.Coverage))
	fmt.Fprintln(&buf)

	if len(r.Delays) > 0 {
		fmt.Fprintln(&buf, "COST OF WAITING")
		fmt.Fprintln(&buf, strings.Repeat("-", 50))
		for _, d := range r.Delays {
			fmt.Fprintf(&buf, "  Start in %d years: %s per month (capital %s, interest %s)\n",
				d.DelayYears, FormatPayment(d.RequiredSaving), FormatCurrency(d.ProjectedCapital), FormatCurrency(d.Interest))
		}
		fmt.Fprintln(&buf)
	}

	a := AnalyzeGap(r)
	switch a.Status {
	case StatusCovered:
		fmt.Fprintln(&buf, "Result: target income is covered.")
	case StatusUnreachable:
		fmt.Fprintln(&buf, "Result: the gap cannot be closed by saving before retirement.")
	default:
		fmt.Fprintf(&buf, "Result: save %s more per month to close the gap.\n", FormatPayment(r.RequiredSaving))
		if a.CostOfWaiting.IsPositive() {
			fmt.Fprintf(&buf, "Waiting %d years raises that by %s per month.\n", a.LongestDelay, FormatCurrency(a.CostOfWaiting))
		}
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, line := range AssumptionLines(r) {
		fmt.Fprintf(&buf, "• %s\n", line)
	}
	return buf.Bytes(), nil
}
