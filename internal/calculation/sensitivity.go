package calculation

// DefaultDelayHorizons are the delayed-start horizons in years; zero is the
// reference of starting now.
var DefaultDelayHorizons = []int{0, 4, 8}

// DelayOutcome is the saving picture when contributions start later.
type DelayOutcome struct {
	DelayYears       int
	SavingMonths     int
	RequiredSaving   Payment
	ProjectedCapital float64
	Contributions    float64
	Interest         float64
}

// DelayScenarios recomputes the required saving for each horizon with a
// shortened accumulation window, holding the required capital fixed, and
// splits the planned saving's projected capital into contributions and
// interest.
func DelayScenarios(requiredCapital, desired, accRate float64, monthsToRetirement int, horizons []int) []DelayOutcome {
	out := make([]DelayOutcome, 0, len(horizons))
	for _, delay := range horizons {
		months := monthsToRetirement - delay*12
		if months < 0 {
			months = 0
		}
		capital := FutureValueAnnuity(desired, accRate, months)
		contributions := desired * float64(months)
		out = append(out, DelayOutcome{
			DelayYears:       delay,
			SavingMonths:     months,
			RequiredSaving:   PaymentForFutureValue(requiredCapital, accRate, months),
			ProjectedCapital: capital,
			Contributions:    contributions,
			Interest:         capital - contributions,
		})
	}
	return out
}
