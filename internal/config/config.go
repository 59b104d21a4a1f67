package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Delimiter for CSV input; empty picks it from the file extension.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter" validate:"omitempty,oneof=0x2C ; tab"`
	// Sheet is the XLSX worksheet to read; empty means the first sheet.
	Sheet string `mapstructure:"sheet" yaml:"sheet"`

	LogLevel  string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" validate:"oneof=text json"`

	// MetricsFile, when set, receives a Prometheus textfile snapshot after each run.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`
}

var validate = validator.New()

// Validate checks field values against their allowed sets.
func (c *Global) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DefaultPath returns ~/.weather/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".weather", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.weather/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file (cfgFile or ~/.weather/config.yaml) > defaults.
// A .env file in the working directory is applied to the environment first.
func Load(cfgFile string) (*Global, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := newViper()
	v.SetEnvPrefix("WEATHER")
	v.AutomaticEnv()
	if err := readFile(v, cfgFile, true); err != nil {
		return nil, err
	}
	return decode(v)
}

// LoadSaved returns only what is persisted: the config file over defaults,
// without environment variables. A missing file yields the defaults.
func LoadSaved(cfgFile string) (*Global, error) {
	v := newViper()
	if err := readFile(v, cfgFile, false); err != nil {
		return nil, err
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("metrics_file", "")
	return v
}

// readFile reads cfgFile, or the default path when empty. The default file is
// optional; an explicit one is required only when mustExist is set.
func readFile(v *viper.Viper, cfgFile string, mustExist bool) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !mustExist && errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}
	path, err := DefaultPath()
	if err != nil {
		return err
	}
	v.AddConfigPath(filepath.Dir(path))
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	// optional read
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func decode(v *viper.Viper) (*Global, error) {
	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Comma maps the Delimiter setting to a CSV rune; 0 means auto-detect.
func (c *Global) Comma() (rune, error) {
	return ParseDelimiter(c.Delimiter)
}

// ParseDelimiter accepts ",", ";", "tab" (or a literal tab) and "" for auto-detect.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter: %s", s)
	}
}
