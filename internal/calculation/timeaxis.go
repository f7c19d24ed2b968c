package calculation

import (
	"math"
	"time"

	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/pkg/dateutil"
)

// Payout duration bounds in years.
const (
	MinPayoutYears = 5
	MaxPayoutYears = 45
)

// TimeAxis holds the date spans every later stage works with.
type TimeAxis struct {
	AsOf               time.Time
	RetirementDate     time.Time
	MonthsToRetirement int
	YearsToRetirement  int
	PayoutYears        int
	PayoutMonths       int
	WorkYears          int
}

// FractionalYears is the months to retirement expressed in years.
func (ta TimeAxis) FractionalYears() float64 {
	return float64(ta.MonthsToRetirement) / 12
}

// BuildTimeAxis derives the spans for a person relative to asOf. It fails with
// a domain error when the birth date is implausible or retirement is not in
// the future.
func BuildTimeAxis(asOf time.Time, p domain.PersonalInputs) (TimeAxis, error) {
	asOf = dateutil.DateOnly(asOf)
	birth := dateutil.DateOnly(p.BirthDate)

	age := dateutil.Age(birth, asOf)
	if age < domain.MinPlausibleAge || age > domain.MaxPlausibleAge {
		return TimeAxis{}, domain.ErrImplausibleBirthDate
	}

	retirement := p.RetirementDate()
	months := dateutil.MonthsBetween(asOf, retirement)
	if months <= 0 {
		return TimeAxis{}, domain.ErrRetirementInPast
	}

	payoutYears := PayoutYears(p.RetirementAge, p.LifeExpectancy)

	workYears := dateutil.YearsBetween(dateutil.DateOnly(p.CareerStart), retirement)
	if workYears < 0 {
		workYears = 0
	}

	return TimeAxis{
		AsOf:               asOf,
		RetirementDate:     retirement,
		MonthsToRetirement: months,
		YearsToRetirement:  dateutil.YearsBetween(asOf, retirement),
		PayoutYears:        payoutYears,
		PayoutMonths:       int(math.Round(float64(payoutYears) * 12)),
		WorkYears:          workYears,
	}, nil
}

// PayoutYears is the retirement duration clamped to [MinPayoutYears, MaxPayoutYears].
func PayoutYears(retirementAge, lifeExpectancy int) int {
	years := lifeExpectancy - retirementAge
	if years < MinPayoutYears {
		return MinPayoutYears
	}
	if years > MaxPayoutYears {
		return MaxPayoutYears
	}
	return years
}
