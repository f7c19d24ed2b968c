package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectionRequest is the body of POST /v1/projection. Dates are YYYY-MM-DD.
type ProjectionRequest struct {
	AsOf        string                     `json:"as_of"` // optional, defaults to today
	Personal    PersonalRequest            `json:"personal"`
	Assumptions domain.EconomicAssumptions `json:"assumptions"`
}

// PersonalRequest mirrors domain.PersonalInputs with wire-friendly types.
type PersonalRequest struct {
	BirthDate           string          `json:"birth_date"`
	CareerStart         string          `json:"career_start"`
	Jurisdiction        string          `json:"jurisdiction"`
	GrossMonthlyIncome  decimal.Decimal `json:"gross_monthly_income"`
	ChurchTax           bool            `json:"church_tax"`
	RetirementAge       int             `json:"retirement_age"`
	LifeExpectancy      int             `json:"life_expectancy"`
	HealthInsurance     string          `json:"health_insurance"`
	ReducedContribution bool            `json:"reduced_contribution"`
	PrivatePremium      decimal.Decimal `json:"private_premium"`
	TargetNetIncome     decimal.Decimal `json:"target_net_income"`
	DesiredSaving       decimal.Decimal `json:"desired_saving"`
}

// errBadRequest marks request errors that are the client's to fix.
var errBadRequest = errors.New("invalid request")

func badRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errBadRequest, fmt.Sprintf(format, args...))
}

// ToDomain converts the wire request, resolving a missing as_of to today.
func (r ProjectionRequest) ToDomain(today time.Time) (time.Time, domain.PersonalInputs, error) {
	asOf := dateutil.DateOnly(today)
	if r.AsOf != "" {
		d, err := dateutil.ParseDate(r.AsOf)
		if err != nil {
			return time.Time{}, domain.PersonalInputs{}, badRequest("as_of: %v", err)
		}
		asOf = d
	}

	p := r.Personal
	birth, err := dateutil.ParseDate(p.BirthDate)
	if err != nil {
		return time.Time{}, domain.PersonalInputs{}, badRequest("birth_date: %v", err)
	}
	career, err := dateutil.ParseDate(p.CareerStart)
	if err != nil {
		return time.Time{}, domain.PersonalInputs{}, badRequest("career_start: %v", err)
	}
	jurisdiction, err := domain.ParseJurisdiction(p.Jurisdiction)
	if err != nil {
		return time.Time{}, domain.PersonalInputs{}, badRequest("jurisdiction: %v", err)
	}
	insurance := domain.InsuranceMode(p.HealthInsurance)
	if insurance == "" {
		insurance = domain.InsuranceLegal
	}
	if !insurance.Valid() {
		return time.Time{}, domain.PersonalInputs{}, badRequest("health_insurance must be 'legal' or 'private'")
	}

	return asOf, domain.PersonalInputs{
		BirthDate:           birth,
		CareerStart:         career,
		Jurisdiction:        jurisdiction,
		GrossMonthlyIncome:  p.GrossMonthlyIncome,
		ChurchTax:           p.ChurchTax,
		RetirementAge:       p.RetirementAge,
		LifeExpectancy:      p.LifeExpectancy,
		HealthInsurance:     insurance,
		ReducedContribution: p.ReducedContribution,
		PrivatePremium:      p.PrivatePremium,
		TargetNetIncome:     p.TargetNetIncome,
		DesiredSaving:       p.DesiredSaving,
	}, nil
}
