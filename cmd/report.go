package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	cfgpkg "github.com/KaramelBytes/weather-summary/internal/config"
	"github.com/KaramelBytes/weather-summary/internal/dataset"
	"github.com/KaramelBytes/weather-summary/internal/metrics"
	"github.com/KaramelBytes/weather-summary/internal/report"
	"github.com/KaramelBytes/weather-summary/internal/stats"
	"github.com/KaramelBytes/weather-summary/internal/utils"
	"github.com/spf13/cobra"
)

var (
	repOutputPath  string
	repDelimiter   string
	repSheetName   string
	repMetricsFile string
)

type renderFunc func([]dataset.WeatherRecord) (string, error)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Print the overview followed by the daily breakdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args[0], "full", report.Full)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print the N day overview: extremes and averages",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args[0], "summary", report.Summary)
	},
}

var dailyCmd = &cobra.Command{
	Use:   "daily <file>",
	Short: "Print minimum and maximum temperature for each day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, args[0], "daily", report.DailySummary)
	},
}

func runReport(cmd *cobra.Command, path, kind string, render renderFunc) error {
	opt, err := loadOptions(cmd)
	if err != nil {
		return err
	}
	defer writeMetrics(cmd)

	out, err := renderFile(path, kind, opt, render)
	if err != nil {
		return err
	}
	if repOutputPath != "" {
		if err := utils.SafeWriteFile(repOutputPath, []byte(out)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s report to %s\n", kind, repOutputPath)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// renderFile loads one dataset and renders it, recording load and render metrics.
func renderFile(path, kind string, opt dataset.Options, render renderFunc) (string, error) {
	ds, err := dataset.LoadFile(path, opt)
	if err != nil {
		metrics.LoadFailures.WithLabelValues(failureReason(err)).Inc()
		return "", err
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	metrics.RecordsLoaded.WithLabelValues(format).Add(float64(ds.Len()))
	logger.Debug("loaded dataset", "dataset_id", ds.ID, "source", ds.Source, "records", ds.Len())

	out, err := render(ds.Records)
	if err != nil {
		metrics.ReportsRendered.WithLabelValues(kind, "error").Inc()
		if errors.Is(err, stats.ErrEmptyInput) {
			return "", fmt.Errorf("%s has no records: %w", ds.Source, err)
		}
		return "", err
	}
	metrics.ReportsRendered.WithLabelValues(kind, "ok").Inc()
	logger.Debug("rendered report", "dataset_id", ds.ID, "kind", kind, "bytes", len(out))
	return out, nil
}

// loadOptions merges config values with the command's flags; flags win.
func loadOptions(cmd *cobra.Command) (dataset.Options, error) {
	opt := dataset.DefaultOptions()
	if cfg != nil {
		comma, err := cfg.Comma()
		if err != nil {
			return opt, err
		}
		opt.Comma, opt.Sheet = comma, cfg.Sheet
	}
	if cmd.Flags().Changed("delimiter") {
		comma, err := cfgpkg.ParseDelimiter(repDelimiter)
		if err != nil {
			return opt, err
		}
		opt.Comma = comma
	}
	if cmd.Flags().Changed("sheet") {
		opt.Sheet = repSheetName
	}
	return opt, nil
}

func failureReason(err error) string {
	var me *dataset.MalformedRowError
	if errors.As(err, &me) {
		return "malformed_row"
	}
	return "io"
}

func writeMetrics(cmd *cobra.Command) {
	path := ""
	if cfg != nil {
		path = cfg.MetricsFile
	}
	if cmd.Flags().Changed("metrics-file") {
		path = repMetricsFile
	}
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		logger.Warn("metrics export failed", "path", path, "error", err)
	}
}

func init() {
	for _, c := range []*cobra.Command{reportCmd, summaryCmd, dailyCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVarP(&repOutputPath, "output", "o", "", "optional path to write the report instead of stdout")
		c.Flags().StringVar(&repDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default from file type)")
		c.Flags().StringVar(&repSheetName, "sheet", "", "XLSX: sheet name to read (default first sheet)")
		c.Flags().StringVar(&repMetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
	}
}
