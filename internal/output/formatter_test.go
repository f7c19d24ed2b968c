package output

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestResult(t *testing.T) *domain.ProjectionResult {
	t.Helper()
	return buildResultWithSaving(t, decimal.NewFromInt(200))
}

func buildResultWithSaving(t *testing.T, saving decimal.Decimal) *domain.ProjectionResult {
	t.Helper()
	personal := domain.PersonalInputs{
		BirthDate:           time.Date(1989, 1, 1, 0, 0, 0, 0, time.UTC),
		CareerStart:         time.Date(2010, 1, 1, 0, 0, 0, 0, time.UTC),
		Jurisdiction:        domain.NordrheinWestfalen,
		GrossMonthlyIncome:  decimal.NewFromInt(3000),
		RetirementAge:       67,
		LifeExpectancy:      85,
		HealthInsurance:     domain.InsuranceLegal,
		ReducedContribution: true,
		TargetNetIncome:     decimal.NewFromInt(2000),
		DesiredSaving:       saving,
	}
	assumptions := domain.EconomicAssumptions{
		InflationRate:      decimal.NewFromFloat(0.02),
		AccumulationReturn: decimal.NewFromFloat(0.07),
		DecumulationReturn: decimal.NewFromFloat(0.02),
	}
	res, err := calculation.NewProjectionEngine().Project(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), personal, assumptions)
	require.NoError(t, err)
	return res
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestResult(t))
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "PENSION GAP PROJECTION")
	assert.Contains(t, content, "Retirement:            2056-01-01 (360 months)")
	assert.Contains(t, content, "Net pension:           1.730,56 €")
	assert.Contains(t, content, "Gap:                   546,13 €")
	assert.Contains(t, content, "Additional saving:     81,15 €")
	assert.Contains(t, content, "Coverage:              71.1%")
	assert.Contains(t, content, "Start in 8 years: 158,48 € per month")
	assert.Contains(t, content, "save 81,15 € more per month")
	assert.Contains(t, content, "Inflation: 2.0% annually")
}

func TestConsoleFormatterUnbounded(t *testing.T) {
	r := buildTestResult(t)
	r.RequiredSaving = domain.Payment{Unbounded: true}
	out, err := ConsoleFormatter{}.Format(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), "Additional saving:     –")
	assert.Contains(t, string(out), "cannot be closed")
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestResult(t))
	require.NoError(t, err)

	var decoded struct {
		Outcome string `json:"outcome"`
		Result  struct {
			MonthsToRetirement int             `json:"months_to_retirement"`
			Shortfall          decimal.Decimal `json:"shortfall"`
			RequiredSaving     domain.Payment  `json:"required_saving"`
			Delays             []domain.DelayScenario
			Chart              []domain.ChartSegment
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, OutcomeSuccess, decoded.Outcome)
	assert.Equal(t, 360, decoded.Result.MonthsToRetirement)
	assert.Equal(t, "546.13", decoded.Result.Shortfall.StringFixed(2))
	assert.False(t, decoded.Result.RequiredSaving.Unbounded)
	assert.Len(t, decoded.Result.Delays, 3)
	assert.Len(t, decoded.Result.Chart, 5)
}

func TestFailureEnvelope(t *testing.T) {
	env := NewFailureEnvelope(domain.ErrRetirementInPast)
	data, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"outcome":"FAILURE","message":"retirement date in the past"}`, string(data))
}

func TestCSVDelayExporter(t *testing.T) {
	r := buildTestResult(t)
	r.Delays = append(r.Delays, domain.DelayScenario{DelayYears: 40, RequiredSaving: domain.Payment{Unbounded: true}})

	out, err := CSVDelayExporter{}.Format(r)
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, "DelayYears", records[0][0])
	assert.Equal(t, []string{"4", "312", "112.36", "false", "176204.89", "62400.00", "113804.89"}, records[2])
	assert.Equal(t, "", records[4][2])
	assert.Equal(t, "true", records[4][3])
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestResult(t))
	require.NoError(t, err)
	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, len(records[0]), len(records[1]))
	assert.Equal(t, "2026-01-01", records[1][0])
	assert.Equal(t, "81.15", records[1][12])
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{" Console ", "console"},
		{"text", "console"},
		{"json-pretty", "json"},
		{"csv", "csv"},
		{"csv-summary", "summary-csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}
	assert.Nil(t, GetFormatterByName("html"))

	_, err := LookupFormatter("html")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Contains(t, err.Error(), "console, csv, json, summary-csv")
}

func TestAvailableFormatAliases(t *testing.T) {
	aliases := AvailableFormatAliases()
	assert.Contains(t, aliases, "text")
	assert.IsIncreasing(t, aliases)
}

func TestGenerateReport(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, GenerateReport(&sb, buildTestResult(t), "csv"))
	assert.True(t, strings.HasPrefix(sb.String(), "DelayYears,"))

	err := GenerateReport(&sb, buildTestResult(t), "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGenerateReportFile(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	path, err := GenerateReportFile(dir, buildTestResult(t), "json", at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "pension_gap_report_20261018_093000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"outcome": "SUCCESS"`)
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "months", Ext: "txt", F: func(r *domain.ProjectionResult) ([]byte, error) {
		return []byte(intToString(r.MonthsToRetirement)), nil
	}}
	out, err := f.Format(buildTestResult(t))
	require.NoError(t, err)
	assert.Equal(t, "360", string(out))
	assert.Equal(t, "months", f.Name())
	assert.Equal(t, "txt", f.Extension())
}
