package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the mleventctl configuration
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig represents default output settings
type OutputConfig struct {
	Format string `yaml:"format"` // json | text
	Hex    bool   `yaml:"hex"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info", Format: "console"},
		Output: OutputConfig{Format: "json"},
	}
}

// Load loads configuration from file. A missing file yields the
// defaults; the tool must run unconfigured.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	}

	// Apply environment overrides
	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if level := os.Getenv("MLEVENT_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}

	if format := os.Getenv("MLEVENT_OUTPUT"); format != "" {
		c.Output.Format = format
	}
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid output format: %s", c.Output.Format)
	}

	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
