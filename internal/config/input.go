package config

import (
	"fmt"
	"os"
	"time"

	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file. Calibration keys present in
// the file override the built-in calibration; absent keys keep the defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML scenario. Negative amounts are floored to
// zero and rates are clamped to their caps rather than rejected.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.Configuration{Calibration: calculation.DefaultCalibration()}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	config.Personal = config.Personal.Normalized()
	config.Assumptions = config.Assumptions.Clamped()
	return &config, nil
}

// ValidateConfiguration checks the structure of a configuration: required
// dates, enum values, age bounds and the calibration table. Amounts and rates
// are absorbed by Parse instead.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validatePersonal(&config.Personal); err != nil {
		return fmt.Errorf("personal validation failed: %w", err)
	}
	if err := ip.validateCalibration(&config.Calibration); err != nil {
		return fmt.Errorf("calibration validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validatePersonal(p *domain.PersonalInputs) error {
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	if p.CareerStart.IsZero() {
		return fmt.Errorf("career start is required")
	}
	if p.BirthDate.After(p.CareerStart) {
		return fmt.Errorf("birth date cannot be after career start")
	}
	if !p.Jurisdiction.Valid() {
		return fmt.Errorf("unknown jurisdiction %q", p.Jurisdiction)
	}
	if !p.HealthInsurance.Valid() {
		return fmt.Errorf("health insurance must be 'legal' or 'private'")
	}
	if p.RetirementAge < domain.MinRetirementAge || p.RetirementAge > domain.MaxRetirementAge {
		return fmt.Errorf("retirement age must be between %d and %d", domain.MinRetirementAge, domain.MaxRetirementAge)
	}
	if p.LifeExpectancy < domain.MinLifeExpectancy || p.LifeExpectancy > domain.MaxLifeExpectancy {
		return fmt.Errorf("life expectancy must be between %d and %d", domain.MinLifeExpectancy, domain.MaxLifeExpectancy)
	}
	if p.ReducedContribution && p.HealthInsurance == domain.InsurancePrivate {
		return fmt.Errorf("reduced contribution only applies to legal insurance")
	}
	return nil
}

func (ip *InputParser) validateCalibration(c *domain.Calibration) error {
	if c.Pension.AverageAnnualIncome <= 0 {
		return fmt.Errorf("average annual income must be positive")
	}
	if c.Pension.ContributionCeiling <= 0 {
		return fmt.Errorf("contribution ceiling must be positive")
	}
	if c.Pension.MaxPointsPerYear <= 0 {
		return fmt.Errorf("max points per year must be positive")
	}
	if c.Pension.PensionValuePerPoint < 0 {
		return fmt.Errorf("pension value per point cannot be negative")
	}
	if len(c.Tax.Bands) == 0 {
		return fmt.Errorf("at least one tax band is required")
	}
	for i, band := range c.Tax.Bands {
		if band.Upper != 0 && band.Upper <= band.Lower {
			return fmt.Errorf("tax band %d: upper bound must exceed lower bound", i)
		}
		if i > 0 && band.Lower < c.Tax.Bands[i-1].Lower {
			return fmt.Errorf("tax band %d: bands must be in ascending order", i)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	birthDate, _ := time.Parse("2006-01-02", "1989-01-01")
	careerStart, _ := time.Parse("2006-01-02", "2010-01-01")

	return &domain.Configuration{
		Personal: domain.PersonalInputs{
			BirthDate:           birthDate,
			CareerStart:         careerStart,
			Jurisdiction:        domain.NordrheinWestfalen,
			GrossMonthlyIncome:  decimal.NewFromInt(3000),
			ChurchTax:           false,
			RetirementAge:       67,
			LifeExpectancy:      85,
			HealthInsurance:     domain.InsuranceLegal,
			ReducedContribution: true,
			PrivatePremium:      decimal.Zero,
			TargetNetIncome:     decimal.NewFromInt(2000),
			DesiredSaving:       decimal.NewFromInt(200),
		},
		Assumptions: domain.EconomicAssumptions{
			InflationRate:         decimal.NewFromFloat(0.02),
			AccumulationReturn:    decimal.NewFromFloat(0.07),
			DecumulationReturn:    decimal.NewFromFloat(0.02),
			TodaysPurchasingPower: false,
		},
		Calibration: calculation.DefaultCalibration(),
	}
}

// MarshalConfiguration encodes a configuration as YAML.
func (ip *InputParser) MarshalConfiguration(config *domain.Configuration) ([]byte, error) {
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return data, nil
}

// SaveConfiguration writes a configuration as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := ip.MarshalConfiguration(config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
