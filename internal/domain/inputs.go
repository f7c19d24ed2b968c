package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/pension-gap/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Jurisdiction is a German federal state code.
type Jurisdiction string

const (
	BadenWuerttemberg     Jurisdiction = "BW"
	Bayern                Jurisdiction = "BY"
	Berlin                Jurisdiction = "BE"
	Brandenburg           Jurisdiction = "BB"
	Bremen                Jurisdiction = "HB"
	Hamburg               Jurisdiction = "HH"
	Hessen                Jurisdiction = "HE"
	MecklenburgVorpommern Jurisdiction = "MV"
	Niedersachsen         Jurisdiction = "NI"
	NordrheinWestfalen    Jurisdiction = "NW"
	RheinlandPfalz        Jurisdiction = "RP"
	Saarland              Jurisdiction = "SL"
	Sachsen               Jurisdiction = "SN"
	SachsenAnhalt         Jurisdiction = "ST"
	SchleswigHolstein     Jurisdiction = "SH"
	Thueringen            Jurisdiction = "TH"
)

// Jurisdictions lists all sixteen state codes in display order.
var Jurisdictions = []Jurisdiction{
	BadenWuerttemberg, Bayern, Berlin, Brandenburg, Bremen, Hamburg, Hessen,
	MecklenburgVorpommern, Niedersachsen, NordrheinWestfalen, RheinlandPfalz,
	Saarland, Sachsen, SachsenAnhalt, SchleswigHolstein, Thueringen,
}

// ParseJurisdiction resolves a state code case-insensitively.
func ParseJurisdiction(s string) (Jurisdiction, error) {
	code := Jurisdiction(strings.ToUpper(strings.TrimSpace(s)))
	if code.Valid() {
		return code, nil
	}
	return "", fmt.Errorf("unknown jurisdiction %q", s)
}

// Valid reports whether j is one of the sixteen state codes.
func (j Jurisdiction) Valid() bool {
	for _, known := range Jurisdictions {
		if j == known {
			return true
		}
	}
	return false
}

// InsuranceMode selects how health and long-term care are paid in retirement.
type InsuranceMode string

const (
	InsuranceLegal   InsuranceMode = "legal"
	InsurancePrivate InsuranceMode = "private"
)

// Valid reports whether m is a known insurance mode.
func (m InsuranceMode) Valid() bool {
	return m == InsuranceLegal || m == InsurancePrivate
}

// Input bounds enforced at the boundary.
const (
	MinRetirementAge  = 55
	MaxRetirementAge  = 75
	MinLifeExpectancy = 70
	MaxLifeExpectancy = 100
	MinPlausibleAge   = 0
	MaxPlausibleAge   = 110
)

// Rate caps applied before any projection.
var (
	MaxInflationRate      = decimal.NewFromFloat(0.10)
	MaxAccumulationReturn = decimal.NewFromFloat(0.15)
	MaxDecumulationReturn = decimal.NewFromFloat(0.10)
)

// PersonalInputs holds everything the projection needs to know about the person.
type PersonalInputs struct {
	BirthDate           time.Time       `yaml:"birth_date" json:"birth_date"`
	CareerStart         time.Time       `yaml:"career_start" json:"career_start"`
	Jurisdiction        Jurisdiction    `yaml:"jurisdiction" json:"jurisdiction"`
	GrossMonthlyIncome  decimal.Decimal `yaml:"gross_monthly_income" json:"gross_monthly_income"`
	ChurchTax           bool            `yaml:"church_tax" json:"church_tax"`
	RetirementAge       int             `yaml:"retirement_age" json:"retirement_age"`
	LifeExpectancy      int             `yaml:"life_expectancy" json:"life_expectancy"`
	HealthInsurance     InsuranceMode   `yaml:"health_insurance" json:"health_insurance"`
	ReducedContribution bool            `yaml:"reduced_contribution" json:"reduced_contribution"` // legal insurance only
	PrivatePremium      decimal.Decimal `yaml:"private_premium" json:"private_premium"`           // monthly, today's money
	TargetNetIncome     decimal.Decimal `yaml:"target_net_income" json:"target_net_income"`       // monthly, today's money
	DesiredSaving       decimal.Decimal `yaml:"desired_saving" json:"desired_saving"`             // monthly contribution
}

// Normalized returns a copy with negative amounts floored to zero and the
// bounded integers clamped. The receiver is not modified.
func (p PersonalInputs) Normalized() PersonalInputs {
	out := p
	out.GrossMonthlyIncome = floorZero(p.GrossMonthlyIncome)
	out.PrivatePremium = floorZero(p.PrivatePremium)
	out.TargetNetIncome = floorZero(p.TargetNetIncome)
	out.DesiredSaving = floorZero(p.DesiredSaving)
	out.RetirementAge = clampInt(p.RetirementAge, MinRetirementAge, MaxRetirementAge)
	out.LifeExpectancy = clampInt(p.LifeExpectancy, MinLifeExpectancy, MaxLifeExpectancy)
	if !out.HealthInsurance.Valid() {
		out.HealthInsurance = InsuranceLegal
	}
	if out.HealthInsurance != InsuranceLegal {
		out.ReducedContribution = false
	}
	return out
}

// RetirementDate is the birth day shifted by the retirement age.
func (p PersonalInputs) RetirementDate() time.Time {
	return dateutil.AddYears(dateutil.DateOnly(p.BirthDate), p.RetirementAge)
}

// EconomicAssumptions are the rate inputs of a projection.
type EconomicAssumptions struct {
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	AccumulationReturn    decimal.Decimal `yaml:"accumulation_return" json:"accumulation_return"`
	DecumulationReturn    decimal.Decimal `yaml:"decumulation_return" json:"decumulation_return"`
	TodaysPurchasingPower bool            `yaml:"todays_purchasing_power" json:"todays_purchasing_power"`
}

// Clamped returns a copy with every rate bounded to [0, cap].
func (a EconomicAssumptions) Clamped() EconomicAssumptions {
	out := a
	out.InflationRate = clampDecimal(a.InflationRate, decimal.Zero, MaxInflationRate)
	out.AccumulationReturn = clampDecimal(a.AccumulationReturn, decimal.Zero, MaxAccumulationReturn)
	out.DecumulationReturn = clampDecimal(a.DecumulationReturn, decimal.Zero, MaxDecumulationReturn)
	return out
}

// GenerateAssumptions creates a human readable list of the rate assumptions.
func (a EconomicAssumptions) GenerateAssumptions() []string {
	mode := "nominal values at retirement"
	if a.TodaysPurchasingPower {
		mode = "values in today's purchasing power"
	}
	return []string{
		fmt.Sprintf("Inflation: %.1f%% annually", a.InflationRate.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		fmt.Sprintf("Return while saving: %.1f%% annually", a.AccumulationReturn.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		fmt.Sprintf("Return while drawing down: %.1f%% annually", a.DecumulationReturn.Mul(decimal.NewFromInt(100)).InexactFloat64()),
		"Display: " + mode,
	}
}

// Configuration is the content of a scenario file.
type Configuration struct {
	Personal    PersonalInputs      `yaml:"personal" json:"personal"`
	Assumptions EconomicAssumptions `yaml:"assumptions" json:"assumptions"`
	Calibration Calibration         `yaml:"calibration" json:"calibration"`
}

func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func clampDecimal(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.LessThan(lo) {
		return lo
	}
	if d.GreaterThan(hi) {
		return hi
	}
	return d
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
