package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/pension-gap/internal/config"
	"github.com/rpgo/pension-gap/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, c := range []*cobra.Command{calculateCmd, exampleCmd, serveCmd} {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func withClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	out, err := execute(t, "example", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example configuration written to")
	return path
}

func TestExampleWritesToStdoutByDefault(t *testing.T) {
	out, err := execute(t, "example")
	require.NoError(t, err)
	assert.Contains(t, out, "personal:")
	assert.NotContains(t, out, "written to")

	cfg, err := config.NewInputParser().Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 67, cfg.Personal.RetirementAge)
}

func TestCalculateConsole(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "calculate", "--config", path, "--as-of", "2026-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "PENSION GAP PROJECTION")
	assert.Contains(t, out, "Additional saving:     81,15 €")
}

func TestCalculateJSON(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "calculate", "-c", path, "-f", "json", "--as-of", "2026-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, `"outcome": "SUCCESS"`)
	assert.Contains(t, out, `"months_to_retirement": 360`)
}

func TestCalculateDefaultsAsOfToClock(t *testing.T) {
	withClock(t, time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC))
	path := writeExample(t)
	out, err := execute(t, "calculate", "-c", path, "-f", "summary-csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], "2026-01-01,2056-01-01,360,"))
}

func TestCalculateWritesFile(t *testing.T) {
	withClock(t, time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC))
	path := writeExample(t)
	dir := t.TempDir()
	out, err := execute(t, "calculate", "-c", path, "-f", "csv", "--as-of", "2026-01-01", "--out-dir", dir)
	require.NoError(t, err)

	want := filepath.Join(dir, "pension_gap_report_20261018_093000.csv")
	assert.Contains(t, out, want)
	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "DelayYears,"))
}

func TestCalculateVerboseLogsToStderr(t *testing.T) {
	path := writeExample(t)
	out, err := execute(t, "calculate", "-c", path, "--as-of", "2026-01-01", "-f", "json", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "DEBUG time axis: 360 months to retirement")
}

func TestStdLoggerGatesDebug(t *testing.T) {
	var quiet bytes.Buffer
	l := newStdLogger(&quiet, false)
	l.Debugf("stage %d", 1)
	l.Warnf("rejected %s", "input")
	assert.NotContains(t, quiet.String(), "stage 1")
	assert.Contains(t, quiet.String(), "WARN rejected input")

	var loud bytes.Buffer
	newStdLogger(&loud, true).Debugf("stage %d", 1)
	assert.Contains(t, loud.String(), "DEBUG stage 1")
}

func TestCalculateErrors(t *testing.T) {
	path := writeExample(t)

	_, err := execute(t, "calculate", "-c", path, "-f", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = execute(t, "calculate", "-c", path, "--as-of", "01.01.2026")
	assert.ErrorContains(t, err, "invalid --as-of")

	_, err = execute(t, "calculate", "-c", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load configuration")

	_, err = execute(t, "calculate", "-c", path, "--as-of", "2060-01-01")
	assert.ErrorContains(t, err, "retirement date in the past")
}
