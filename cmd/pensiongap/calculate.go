package main

import (
	"fmt"
	"time"

	"github.com/rpgo/pension-gap/internal/calculation"
	"github.com/rpgo/pension-gap/internal/config"
	"github.com/rpgo/pension-gap/internal/output"
	"github.com/rpgo/pension-gap/pkg/dateutil"
	"github.com/spf13/cobra"
)

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Project the pension gap for a scenario file",
	Example: `  pensiongap calculate --config scenario.yaml
  pensiongap calculate --config scenario.yaml --format json --as-of 2026-01-01`,
	RunE: runCalculate,
}

func init() {
	f := calculateCmd.Flags()
	f.StringP("config", "c", "", "scenario file (YAML)")
	f.StringP("format", "f", "console", fmt.Sprintf("output format %v", output.AvailableFormatterNames()))
	f.String("as-of", "", "reference date YYYY-MM-DD (default today)")
	f.String("out-dir", "", "write the report to a timestamped file in this directory")
	f.BoolP("verbose", "v", false, "log intermediate values")
	_ = calculateCmd.MarkFlagRequired("config")
	rootCmd.AddCommand(calculateCmd)
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	format, _ := cmd.Flags().GetString("format")
	asOfFlag, _ := cmd.Flags().GetString("as-of")
	outDir, _ := cmd.Flags().GetString("out-dir")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// reject unknown formats before doing any work
	if _, err := output.LookupFormatter(format); err != nil {
		return err
	}

	asOf, err := resolveAsOf(asOfFlag)
	if err != nil {
		return err
	}

	cfg, err := config.NewInputParser().LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	engine := calculation.NewProjectionEngineWithCalibration(cfg.Calibration)
	if verbose {
		engine.SetLogger(newStdLogger(cmd.ErrOrStderr(), true))
	}

	result, err := engine.Project(asOf, cfg.Personal, cfg.Assumptions)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	if outDir != "" {
		path, err := output.GenerateReportFile(outDir, result, format, nowFunc())
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}
	return output.GenerateReport(cmd.OutOrStdout(), result, format)
}

func resolveAsOf(flag string) (time.Time, error) {
	if flag == "" {
		return dateutil.DateOnly(nowFunc()), nil
	}
	d, err := dateutil.ParseDate(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --as-of: %w", err)
	}
	return d, nil
}
