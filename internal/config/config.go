// Package config loads the aoc configuration file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultInputDir is where day inputs are looked up when nothing else is set.
const DefaultInputDir = "data"

// Config holds all aoc configuration.
type Config struct {
	// InputDir holds one sub-directory per day with an input.txt inside.
	InputDir string `yaml:"input_dir"`

	Logging LoggingConfig `yaml:"logging"`

	Almanac AlmanacConfig `yaml:"almanac"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// AlmanacConfig configures almanac validation.
type AlmanacConfig struct {
	// Strict turns overlapping rule domains into errors.
	Strict bool `yaml:"strict"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InputDir: DefaultInputDir,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML config file on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err = Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML config on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}

	return nil
}

// Environment variables read by ApplyEnv.
const (
	EnvInputDir  = "AOC_INPUT_DIR"
	EnvLogLevel  = "AOC_LOG_LEVEL"
	EnvLogFormat = "AOC_LOG_FORMAT"
	EnvStrict    = "AOC_STRICT"
)

// ApplyEnv overlays environment values. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvInputDir); ok && v != "" {
		c.InputDir = v
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}

	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStrict, v, err)
		}

		c.Almanac.Strict = strict
	}

	return c.Validate()
}
