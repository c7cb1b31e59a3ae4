// Package config loads simulation settings from a file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/opd-ai/go-shipsim/pkg/logging"
	"github.com/opd-ai/go-shipsim/pkg/validation"
)

// EnvPrefix is prepended to every environment override, e.g. SHIPSIM_DT
const EnvPrefix = "SHIPSIM"

// Config contains the settings for one simulation run
type Config struct {
	Duration   float64 `json:"duration" mapstructure:"duration"`     // seconds to simulate
	DT         float64 `json:"dt" mapstructure:"dt"`                 // integration step, seconds
	Takeoff    float64 `json:"takeoff" mapstructure:"takeoff"`       // seconds at idle before climbing
	LogLevel   string  `json:"logLevel" mapstructure:"logLevel"`     // DEBUG, INFO, WARN or ERROR
	PlotWidth  int     `json:"plotWidth" mapstructure:"plotWidth"`   // altitude plot columns
	PlotHeight int     `json:"plotHeight" mapstructure:"plotHeight"` // altitude plot rows
}

// DefaultConfig returns the settings of the stock demo flight
func DefaultConfig() *Config {
	return &Config{
		Duration:   20.0,
		DT:         0.1,
		Takeoff:    5.0,
		LogLevel:   "INFO",
		PlotWidth:  60,
		PlotHeight: 20,
	}
}

// LoadConfig reads the settings in path (JSON, YAML or TOML by extension)
// over the defaults, then applies SHIPSIM_* environment overrides. An empty
// path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("duration", defaults.Duration)
	v.SetDefault("dt", defaults.DT)
	v.SetDefault("takeoff", defaults.Takeoff)
	v.SetDefault("logLevel", defaults.LogLevel)
	v.SetDefault("plotWidth", defaults.PlotWidth)
	v.SetDefault("plotHeight", defaults.PlotHeight)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the log level shares the logger's variable
	if err := v.BindEnv("logLevel", logging.LevelEnvVar); err != nil {
		return nil, logging.WrapError(err, "failed to bind %s", logging.LevelEnvVar)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, logging.WrapError(err, "error reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, logging.WrapError(err, "failed to parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig saves a configuration to a file as indented JSON
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return logging.WrapError(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return logging.WrapError(err, "failed to write config file")
	}

	return nil
}

// Validate checks that the settings describe a runnable simulation
func (c *Config) Validate() error {
	var errs []error

	if err := validation.Finite("duration", c.Duration); err != nil {
		errs = append(errs, err)
	} else if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("%w: duration must be positive, got %v", validation.ErrInvalidInput, c.Duration))
	}

	if err := validation.Finite("dt", c.DT); err != nil {
		errs = append(errs, err)
	} else if c.DT <= 0 {
		errs = append(errs, fmt.Errorf("%w: dt must be positive, got %v", validation.ErrInvalidInput, c.DT))
	} else if c.DT > c.Duration {
		errs = append(errs, fmt.Errorf("%w: dt %v exceeds duration %v", validation.ErrInvalidInput, c.DT, c.Duration))
	} else if _, err := validation.StepCount(c.Duration, c.DT); err != nil {
		errs = append(errs, err)
	}

	if err := validation.NonNegative("takeoff", c.Takeoff); err != nil {
		errs = append(errs, err)
	}

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log level %q", validation.ErrInvalidInput, c.LogLevel))
	}

	if c.PlotWidth < 2 || c.PlotHeight < 2 {
		errs = append(errs, fmt.Errorf("%w: plot must be at least 2x2, got %dx%d",
			validation.ErrInvalidInput, c.PlotWidth, c.PlotHeight))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
