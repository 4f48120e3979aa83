package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Watch  bool         `yaml:"watch"`
}

type SourceConfig struct {
	Path string `yaml:"path"`

	// Minimum source dimensions. Zero disables the check.
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	// Load .env if present; a missing file is not an error
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnvOverrides lets the environment take precedence over the file
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("FAVICONGEN_SOURCE"); v != "" {
		c.Source.Path = v
	}
	if v := os.Getenv("FAVICONGEN_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Source.MinWidth < 0 || c.Source.MinHeight < 0 {
		return fmt.Errorf("source.min_width and source.min_height must not be negative")
	}
	return nil
}
