package domain

import "errors"

// Domain errors terminate a projection; no partial result is returned.
var (
	ErrImplausibleBirthDate = errors.New("birth date implausible")
	ErrRetirementInPast     = errors.New("retirement date in the past")
)

// IsDomainError reports whether err is one of the projection domain errors.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrImplausibleBirthDate) || errors.Is(err, ErrRetirementInPast)
}
