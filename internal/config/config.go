// Package config loads cleanr configuration from defaults, an optional YAML
// file, CLEANR_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. CLEANR_INPUT_PATH
const EnvPrefix = "CLEANR"

// Default configuration values.
const (
	defaultThreshold = 3.0
	defaultHeadRows  = 5
	defaultLogLevel  = "info"
)

// Config holds all configuration for a cleaning run.
type Config struct {
	InputPath string        `mapstructure:"input_path" validate:"required"`
	Threshold float64       `mapstructure:"threshold" validate:"gt=0"`
	HeadRows  int           `mapstructure:"head_rows" validate:"gte=0"`
	Delimiter string        `mapstructure:"delimiter" validate:"omitempty,len=1"`
	Sheet     string        `mapstructure:"sheet"`
	NoColor   bool          `mapstructure:"no_color"`
	Log       LogConfig     `mapstructure:"log"`
	Metrics   MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging-specific configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	SeqURL string `mapstructure:"seq_url" validate:"omitempty,url"`
}

// MetricsConfig holds metrics-specific configuration.
type MetricsConfig struct {
	File string `mapstructure:"file"`
}

// DelimiterRune returns the configured delimiter, or 0 to let the loader pick one
func (c *Config) DelimiterRune() rune {
	for _, r := range c.Delimiter {
		return r
	}
	return 0
}

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"input":        "input_path",
	"threshold":    "threshold",
	"head":         "head_rows",
	"delimiter":    "delimiter",
	"sheet":        "sheet",
	"no-color":     "no_color",
	"log-level":    "log.level",
	"seq-url":      "log.seq_url",
	"metrics-file": "metrics.file",
}

// Load builds the configuration. configPath may be empty, in which case a
// config.yaml in the working directory is used when present. Flags that are
// present in flags and were set on the command line take precedence.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct constraints
func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input_path", "")
	v.SetDefault("threshold", defaultThreshold)
	v.SetDefault("head_rows", defaultHeadRows)
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet", "")
	v.SetDefault("no_color", false)
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.seq_url", "")
	v.SetDefault("metrics.file", "")
}
