package cmd

import (
	"fmt"

	cfgpkg "github.com/KaramelBytes/weather-summary/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set weather configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		delim := cfg.Delimiter
		if delim == "" {
			delim = "(auto)"
		}
		fmt.Fprintf(out, "delimiter: %s\n", delim)
		if cfg.Sheet != "" {
			fmt.Fprintf(out, "sheet: %s\n", cfg.Sheet)
		}
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		if cfg.MetricsFile != "" {
			fmt.Fprintf(out, "metrics_file: %s\n", cfg.MetricsFile)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// start from the file so env and flag overrides are not persisted
		saved, err := cfgpkg.LoadSaved(cfgFile)
		if err != nil {
			return err
		}
		updated := *saved
		switch key {
		case "delimiter":
			if _, err := cfgpkg.ParseDelimiter(val); err != nil {
				return err
			}
			if val == "\t" {
				val = "tab"
			}
			updated.Delimiter = val
		case "sheet":
			updated.Sheet = val
		case "log_level":
			updated.LogLevel = val
		case "log_format":
			updated.LogFormat = val
		case "metrics_file":
			updated.MetricsFile = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(&updated, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
