package output

import (
	"io"
	"time"

	"github.com/rpgo/pension-gap/internal/domain"
)

// GenerateReport writes the result in format to w.
func GenerateReport(w io.Writer, result *domain.ProjectionResult, format string) error {
	f, err := LookupFormatter(format)
	if err != nil {
		return err
	}
	data, err := f.Format(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile writes the result in format to a timestamped file in dir.
func GenerateReportFile(dir string, result *domain.ProjectionResult, format string, at time.Time) (string, error) {
	f, err := LookupFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, result, dir, at)
}
