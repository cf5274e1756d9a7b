package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/eriklarko/truth-table/src/environment"
	"gopkg.in/yaml.v3"
)

const (
	FormatAuto  = "auto"
	FormatTable = "table"
	FormatCSV   = "csv"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = ".truthtable.yaml"

var formats = []string{FormatAuto, FormatTable, FormatCSV}

// Config controls how truth tables are generated and printed.
//
// Example:
//
//	format: table
//	max-variables: 16
//	log-level: debug
type Config struct {
	Format string `yaml:"format"`
	// refuse to enumerate tables over more variables than this, values above
	// 63 are capped at 63
	MaxVariables int    `yaml:"max-variables"`
	LogLevel     string `yaml:"log-level"`

	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Format:       FormatAuto,
		MaxVariables: 24,
		LogLevel:     "info",
		Path:         DefaultPath,
	}
}

// LoadConfig reads the config file at path. Keys missing from the file keep
// their default value. When the file doesn't exist the error satisfies
// os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// LoadOrDefault is LoadConfig, falling back to the defaults when the file
// doesn't exist.
func LoadOrDefault(path string) (*Config, error) {
	config, err := LoadConfig(path)
	if os.IsNotExist(err) {
		slog.Debug("No config file found, using defaults", "path", path)
		config = Default()
		config.Path = path
		return config, nil
	}
	return config, err
}

func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("unknown format '%s', expected one of %v", c.Format, formats)
	}
	if c.MaxVariables < 1 {
		return fmt.Errorf("max-variables must be at least 1, got %d", c.MaxVariables)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log-level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

// OutputFormat resolves FormatAuto to a table on interactive terminals and to
// csv otherwise.
func (c *Config) OutputFormat() string {
	if c.Format != FormatAuto {
		return c.Format
	}
	if environment.IsInteractive() {
		return FormatTable
	}
	return FormatCSV
}

// Write saves the config to its Path.
func (c *Config) Write() error {
	absPath, err := filepath.Abs(c.Path)
	if err != nil {
		// only used to give a better error message
		absPath = c.Path
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", absPath, err)
	}
	// WriteFile keeps the mode of files that already exist
	if err := os.Chmod(absPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", absPath, err)
	}

	return nil
}
