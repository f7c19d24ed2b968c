package integration

import (
	"bytes"
	"testing"
	"time"

	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/config"
	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/rpgo/pension-gap/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var asOf = time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_scenario.yaml")
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	assert.Equal(t, domain.Bayern, cfg.Personal.Jurisdiction)
	assert.Equal(t, domain.InsurancePrivate, cfg.Personal.HealthInsurance)
	assert.Equal(t, 0.035, cfg.Calibration.Insurance.MedicalInflation)
	assert.Equal(t, calculation.DefaultCalibration().Tax, cfg.Calibration.Tax)

	engine := calculation.NewProjectionEngineWithCalibration(cfg.Calibration)
	res, err := engine.Project(asOf, cfg.Personal, cfg.Assumptions)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2047, 6, 15, 0, 0, 0, 0, time.UTC), res.RetirementDate)
	assert.Equal(t, 247, res.MonthsToRetirement)
	assert.Equal(t, 21*12, res.PayoutMonths)
	assert.True(t, res.TodaysPurchasingPower)
	assert.True(t, res.Target.Equal(res.TargetToday))
	assert.True(t, res.Statutory.HealthCareDeduction.IsZero())
	assert.True(t, res.Statutory.PrivatePremium.IsPositive())
	assert.True(t, res.Statutory.ChurchTax.IsPositive())
	assert.True(t, res.StatutoryNet.LessThan(res.Statutory.NetMonthly))

	c := res.Coverage.InexactFloat64()
	assert.GreaterOrEqual(t, c, 0.0)
	assert.LessOrEqual(t, c, 1.0)
	require.Len(t, res.Delays, 3)
	assert.Equal(t, 247-96, res.Delays[2].SavingMonths)
}

func TestAllFormattersRender(t *testing.T) {
	cfg := loadExample(t)
	res, err := calculation.NewProjectionEngineWithCalibration(cfg.Calibration).Project(asOf, cfg.Personal, cfg.Assumptions)
	require.NoError(t, err)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, res, name))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg := loadExample(t)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Personal.LifeExpectancy = 101
	assert.Error(t, parser.ValidateConfiguration(cfg))
}
