package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all aoc2024 configuration.
type Config struct {
	// Core settings
	Name string `yaml:"name"`
	Year int    `yaml:"year"`

	// Where puzzle inputs live
	Inputs InputsConfig `yaml:"inputs"`

	// How solvers are run
	Execution ExecutionConfig `yaml:"execution"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Grid rendering in the CLI
	Render RenderConfig `yaml:"render"`
}

// InputsConfig locates the per-day input files. Patterns take the day number.
type InputsConfig struct {
	Dir           string `yaml:"dir"`
	Pattern       string `yaml:"pattern"`        // e.g. day%d/input.txt
	SamplePattern string `yaml:"sample_pattern"` // e.g. day%d/test_input.txt
}

// RenderConfig configures grid rendering.
type RenderConfig struct {
	Background string `yaml:"background"`
	Highlight  string `yaml:"highlight"` // lipgloss color
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name: "aoc2024",
		Year: 2024,

		Inputs: InputsConfig{
			Dir:           ".",
			Pattern:       "day%d/input.txt",
			SamplePattern: "day%d/test_input.txt",
		},

		Execution: ExecutionConfig{
			Parallelism: 4,
			Timeout:     "5m",
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},

		Render: RenderConfig{
			Background: ".",
			Highlight:  "#8BC34A",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// YAML returns the configuration as YAML text.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("AOC_INPUT_DIR"); dir != "" {
		c.Inputs.Dir = dir
	}
	if level := os.Getenv("AOC_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if p := os.Getenv("AOC_PARALLELISM"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			c.Execution.Parallelism = n
		}
	}
}

// InputPath returns the input file for day. sample selects the example input.
func (c *Config) InputPath(day int, sample bool) string {
	pattern := c.Inputs.Pattern
	if sample {
		pattern = c.Inputs.SamplePattern
	}
	return filepath.Join(c.Inputs.Dir, fmt.Sprintf(pattern, day))
}

// GetTimeout returns the run timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Execution.Timeout)
	if err != nil {
		return 5 * time.Minute
	}
	return d
}

// BackgroundRune returns the rune drawn for absent grid cells.
func (c *Config) BackgroundRune() rune {
	for _, r := range c.Render.Background {
		return r
	}
	return '.'
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Inputs.Pattern == "" {
		return fmt.Errorf("inputs.pattern must not be empty")
	}
	if c.Inputs.SamplePattern == "" {
		return fmt.Errorf("inputs.sample_pattern must not be empty")
	}
	if c.Execution.Parallelism < 1 {
		return fmt.Errorf("execution.parallelism must be at least 1, got %d", c.Execution.Parallelism)
	}
	if _, err := time.ParseDuration(c.Execution.Timeout); err != nil {
		return fmt.Errorf("execution.timeout: %w", err)
	}
	if err := c.Logging.validate(); err != nil {
		return err
	}
	if len([]rune(c.Render.Background)) != 1 {
		return fmt.Errorf("render.background must be a single character, got %q", c.Render.Background)
	}
	return nil
}
