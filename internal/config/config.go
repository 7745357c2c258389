// Package config holds ichor-summary settings loaded from an optional YAML
// file, a .env file and ICHOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"ichorkit/internal/libname"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid configuration")

// Environment variables consulted by Load.
const (
	EnvResultsDir     = "ICHOR_RESULTS_DIR"
	EnvOutputDir      = "ICHOR_OUTPUT_DIR"
	EnvBAMNamePattern = "ICHOR_BAM_NAME_PATTERN"
	EnvCreateZips     = "ICHOR_CREATE_ZIPS"
	EnvLogLevel       = "ICHOR_LOG_LEVEL"
)

// Config holds the summary settings.
type Config struct {
	ResultsDir     string        `yaml:"results_dir"`
	OutputDir      string        `yaml:"output_dir"`
	BAMNamePattern string        `yaml:"bam_name_pattern"`
	CreateZips     bool          `yaml:"create_zips"`
	Logging        LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BAMNamePattern: libname.DefaultPattern,
		Logging:        LoggingConfig{Level: "info"},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (if
// path is set and exists), then the environment. A .env file in the working
// directory is loaded first; it never overrides variables already set.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

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

	_ = godotenv.Load()
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvResultsDir); v != "" {
		c.ResultsDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v, ok := os.LookupEnv(EnvBAMNamePattern); ok {
		c.BAMNamePattern = v
	}
	if v := os.Getenv(EnvCreateZips); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvCreateZips, v)
		}
		c.CreateZips = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks required settings.
func (c *Config) Validate() error {
	var missing []string
	if c.ResultsDir == "" {
		missing = append(missing, "--results_dir")
	}
	if c.OutputDir == "" {
		missing = append(missing, "--output_dir")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required argument(s) %s", ErrInvalid, strings.Join(missing, ", "))
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Logging.Level; empty means info.
func (c *Config) LogLevel() (zapcore.Level, error) {
	if c.Logging.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, fmt.Errorf("%w: logging level %q", ErrInvalid, c.Logging.Level)
	}
	return lvl, nil
}
