package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/pension-gap/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per projection).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "summary-csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(r *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"AsOf", "RetirementDate", "MonthsToRetirement", "PayoutMonths", "TodaysPurchasingPower", "StatutoryGross", "StatutoryNet", "PrivateCapital", "PrivatePayout", "Target", "Shortfall", "RequiredCapital", "RequiredSaving", "DesiredSaving", "Coverage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		r.AsOf.Format("2006-01-02"),
		r.RetirementDate.Format("2006-01-02"),
		intToString(r.MonthsToRetirement),
		intToString(r.PayoutMonths),
		boolToString(r.TodaysPurchasingPower),
		r.StatutoryGross.StringFixed(2),
		r.StatutoryNet.StringFixed(2),
		r.PrivateCapital.StringFixed(2),
		r.PrivatePayout.StringFixed(2),
		r.Target.StringFixed(2),
		r.Shortfall.StringFixed(2),
		r.RequiredCapital.StringFixed(2),
		csvPayment(r.RequiredSaving),
		r.DesiredSaving.StringFixed(2),
		r.Coverage.StringFixed(6),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVDelayExporter writes one row per delay horizon.
type CSVDelayExporter struct{}

func (c CSVDelayExporter) Name() string      { return "csv" }
func (c CSVDelayExporter) Extension() string { return "csv" }

func (c CSVDelayExporter) Format(r *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"DelayYears", "SavingMonths", "RequiredSaving", "Unbounded", "ProjectedCapital", "Contributions", "Interest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, d := range r.Delays {
		row := []string{
			intToString(d.DelayYears),
			intToString(d.SavingMonths),
			csvPayment(d.RequiredSaving),
			boolToString(d.RequiredSaving.Unbounded),
			d.ProjectedCapital.StringFixed(2),
			d.Contributions.StringFixed(2),
			d.Interest.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
