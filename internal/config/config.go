// Package config loads runtime settings for movement.
//
// Values come from, lowest to highest precedence: built-in defaults, a .env
// file in the working directory, MOVEMENT_* environment variables, and
// explicitly set command line flags.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/stigoleg/movement/internal/logger"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MOVEMENT_"

// Flag names shared with the command line.
const (
	FlagMeridiem  = "meridiem"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagNoColor   = "no-color"
)

type Config struct {
	// Meridiem selects 12-hour display.
	Meridiem bool `env:"MERIDIEM" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// LogFile receives logs while the interactive UI owns the terminal.
	LogFile string `env:"LOG_FILE" envDefault:"debug.log"`

	NoColor bool `env:"NO_COLOR" envDefault:"false"`
}

// Load reads the .env file if present and then the environment.
func Load() (*Config, error) {
	// A missing .env file is normal.
	_ = godotenv.Load()
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads configuration from the given variables only. Keys include
// the MOVEMENT_ prefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ApplyFlags overrides fields with flags the user set explicitly on cmd.
func (c *Config) ApplyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()

	if flags.Changed(FlagMeridiem) {
		v, err := flags.GetBool(FlagMeridiem)
		if err != nil {
			return err
		}
		c.Meridiem = v
	}
	if flags.Changed(FlagLogLevel) {
		v, err := flags.GetString(FlagLogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = v
	}
	if flags.Changed(FlagLogFormat) {
		v, err := flags.GetString(FlagLogFormat)
		if err != nil {
			return err
		}
		c.LogFormat = v
	}
	if flags.Changed(FlagNoColor) {
		v, err := flags.GetBool(FlagNoColor)
		if err != nil {
			return err
		}
		c.NoColor = v
	}

	return c.Validate()
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.LogLevel)
	}

	switch c.LogFormat {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q: must be one of console, json", c.LogFormat)
	}

	if c.LogFile == "" {
		return fmt.Errorf("log file must not be empty")
	}

	return nil
}

// Logger returns the logger settings derived from c.
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:   c.LogLevel,
		Format:  c.LogFormat,
		NoColor: c.NoColor,
	}
}
