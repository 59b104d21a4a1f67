package cmd

import (
	"fmt"
	"log/slog"
	"os"

	cfgpkg "github.com/KaramelBytes/weather-summary/internal/config"
	"github.com/KaramelBytes/weather-summary/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile   string
	debug     bool
	logFormat string

	// Loaded configuration
	cfg *cfgpkg.Global
	logger = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "weather",
	Short: "Summarize daily weather records from a CSV or XLSX file",
	Long: `weather reads a table of daily records (date, low, high in Fahrenheit) and prints
an N day overview with extremes and averages in Celsius, plus a per-day breakdown.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.weather/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text | json (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults so reports still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{LogLevel: "info", LogFormat: "text"}
	}
	cfg = c

	// Apply CLI overrides if provided
	if debug {
		cfg.LogLevel = "debug"
	}
	if rootCmd.PersistentFlags().Changed("log-format") && logFormat != "" {
		cfg.LogFormat = logFormat
	}
	logger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
}
