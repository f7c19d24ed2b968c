package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a monthly amount that may be unbounded, e.g. when no months
// remain to accumulate a required capital.
type Payment struct {
	Amount    decimal.Decimal `json:"amount"`
	Unbounded bool            `json:"unbounded"`
}

// IsZero reports whether the payment is bounded and exactly zero.
func (p Payment) IsZero() bool {
	return !p.Unbounded && p.Amount.IsZero()
}

// StatutoryPension is the statutory pension breakdown at retirement, in
// nominal money of the retirement date.
type StatutoryPension struct {
	WorkYears            int             `json:"work_years"`
	EarningsPoints       decimal.Decimal `json:"earnings_points"`
	PensionValuePerPoint decimal.Decimal `json:"pension_value_per_point"`
	GrossMonthly         decimal.Decimal `json:"gross_monthly"`
	HealthCareDeduction  decimal.Decimal `json:"health_care_deduction"`
	PrivatePremium       decimal.Decimal `json:"private_premium"`
	TaxableShare         decimal.Decimal `json:"taxable_share"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	ChurchTax            decimal.Decimal `json:"church_tax"`
	NetMonthly           decimal.Decimal `json:"net_monthly"`
}

// DelayScenario shows the effect of starting to save later.
type DelayScenario struct {
	DelayYears       int             `json:"delay_years"`
	SavingMonths     int             `json:"saving_months"`
	RequiredSaving   Payment         `json:"required_saving"`
	ProjectedCapital decimal.Decimal `json:"projected_capital"`
	Contributions    decimal.Decimal `json:"contributions"`
	Interest         decimal.Decimal `json:"interest"`
}

// ChartSegment is one labeled bar segment for the income chart.
type ChartSegment struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Stack string          `json:"stack"`
	Value decimal.Decimal `json:"value"`
	Color string          `json:"color"`
}

// ProjectionResult is the complete outcome of one projection. Amounts are
// monthly and, unless the field says otherwise, expressed in the money terms
// selected by TodaysPurchasingPower.
type ProjectionResult struct {
	AsOf                  time.Time `json:"as_of"`
	RetirementDate        time.Time `json:"retirement_date"`
	MonthsToRetirement    int       `json:"months_to_retirement"`
	YearsToRetirement     int       `json:"years_to_retirement"`
	PayoutMonths          int       `json:"payout_months"`
	TodaysPurchasingPower bool      `json:"todays_purchasing_power"`

	InflationFactor decimal.Decimal `json:"inflation_factor"`

	Statutory          StatutoryPension `json:"statutory"`
	StatutoryGross     decimal.Decimal  `json:"statutory_gross"`
	StatutoryNet       decimal.Decimal  `json:"statutory_net"`
	PrivateCapital     decimal.Decimal  `json:"private_capital"`
	PrivatePayout      decimal.Decimal  `json:"private_payout"`
	TargetToday        decimal.Decimal  `json:"target_today"`
	TargetAtRetirement decimal.Decimal  `json:"target_at_retirement"` // nominal
	Target             decimal.Decimal  `json:"target"`

	Shortfall       decimal.Decimal `json:"shortfall"`
	RequiredCapital decimal.Decimal `json:"required_capital"`
	RequiredSaving  Payment         `json:"required_saving"`
	DesiredSaving   decimal.Decimal `json:"desired_saving"`
	Coverage        decimal.Decimal `json:"coverage"`

	Delays []DelayScenario `json:"delays"`
	Chart  []ChartSegment  `json:"chart"`

	Assumptions []string `json:"assumptions"`
}

// DelayScenario returns the scenario for the given delay, if computed.
func (r *ProjectionResult) DelayScenario(years int) (DelayScenario, bool) {
	for _, d := range r.Delays {
		if d.DelayYears == years {
			return d, true
		}
	}
	return DelayScenario{}, false
}
