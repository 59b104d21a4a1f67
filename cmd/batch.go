package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KaramelBytes/weather-summary/internal/report"
	"github.com/KaramelBytes/weather-summary/internal/utils"
	"github.com/spf13/cobra"
)

var (
	batchKind   string
	batchOutDir string
	batchQuiet  bool
)

var batchRenderers = map[string]renderFunc{
	"full":    report.Full,
	"summary": report.Summary,
	"daily":   report.DailySummary,
}

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Render reports for multiple CSV/TSV/XLSX files with progress",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		render, ok := batchRenderers[batchKind]
		if !ok {
			return fmt.Errorf("unsupported --kind: %s (use full|summary|daily)", batchKind)
		}
		files, err := expandInputs(args)
		if err != nil {
			return err
		}
		opt, err := loadOptions(cmd)
		if err != nil {
			return err
		}
		defer writeMetrics(cmd)

		out := cmd.OutOrStdout()
		total := len(files)
		for i, path := range files {
			if !batchQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			text, err := renderFile(path, batchKind, opt, render)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if batchOutDir == "" {
				fmt.Fprint(out, text)
				continue
			}
			dest, err := nextOutputPath(batchOutDir, path, batchKind)
			if err != nil {
				return err
			}
			if err := utils.SafeWriteFile(dest, []byte(text)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			if !batchQuiet {
				fmt.Fprintf(out, "✓ Wrote %s\n", dest)
			}
		}
		return nil
	},
}

// expandInputs resolves glob patterns and literal paths into a sorted,
// de-duplicated file list.
func expandInputs(args []string) ([]string, error) {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			// treat as literal path if exists
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no input files matched")
	}
	sort.Strings(files)
	return files, nil
}

// nextOutputPath picks <name>.<kind>.txt under dir, adding a __N suffix
// rather than overwriting an existing report.
func nextOutputPath(dir, input, kind string) (string, error) {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	dest := filepath.Join(dir, fmt.Sprintf("%s.%s.txt", stem, kind))
	if _, err := os.Stat(dest); os.IsNotExist(err) {
		return dest, nil
	} else if err != nil {
		return "", err
	}
	for idx := 2; ; idx++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s__%d.%s.txt", stem, idx, kind))
		_, err := os.Stat(cand)
		if err == nil {
			continue
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		if !batchQuiet {
			logger.Warn("existing report detected, writing alongside", "path", cand)
		}
		return cand, nil
	}
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchKind, "kind", "full", "report kind: full | summary | daily")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write one report per input into this directory instead of stdout")
	batchCmd.Flags().BoolVar(&batchQuiet, "quiet", false, "suppress progress and non-essential output")
	batchCmd.Flags().StringVar(&repDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (default from file type)")
	batchCmd.Flags().StringVar(&repSheetName, "sheet", "", "XLSX: sheet name to read (default first sheet)")
	batchCmd.Flags().StringVar(&repMetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")
}
