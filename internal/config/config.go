// Package config loads the padchain YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDepth    = "PADCHAIN_DEPTH"
	EnvWorkers  = "PADCHAIN_WORKERS"
	EnvLogLevel = "PADCHAIN_LOG_LEVEL"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all padchain settings.
type Config struct {
	Chain   ChainConfig   `yaml:"chain"`
	Workers int           `yaml:"workers"` // concurrent code resolutions
	Logging LoggingConfig `yaml:"logging"`
}

// ChainConfig shapes the keypad chain.
type ChainConfig struct {
	Depth int  `yaml:"depth"` // directional layers between human and numeric pad
	Memo  bool `yaml:"memo"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the reference configuration: two directional layers.
func Default() *Config {
	return &Config{
		Chain:   ChainConfig{Depth: 2, Memo: true},
		Workers: 4,
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Load reads path on top of Default and applies environment overrides.
// An empty path or a missing file yields the defaults. The result is not
// validated: callers merge their flags first, then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvDepth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvDepth, v)
		}
		c.Chain.Depth = n
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWorkers, v)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Chain.Depth < 0 {
		return fmt.Errorf("%w: chain.depth %d < 0", ErrInvalid, c.Chain.Depth)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalid, c.Workers)
	}
	if _, err := c.Logging.ZapLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// ZapLevel parses Level.
func (l LoggingConfig) ZapLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging.level %q", ErrInvalid, l.Level)
	}
	return lvl, nil
}
