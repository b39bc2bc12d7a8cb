// Package config loads the YAML configuration of the sprintreport CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alnah/go-sprintreport/internal/fileutil"
	"github.com/alnah/go-sprintreport/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096 // Directory or file path
	MaxNameLength     = 100  // Style token name
	MaxDateLength     = 50   // "December 8, 2025" or "auto:MMMM D, YYYY"
	MaxOverrideLength = 100  // A single style override value
	MaxWorkers        = 32   // Upper bound for batch.workers
)

// configDirName is the directory searched under os.UserConfigDir.
const configDirName = "go-sprintreport"

// Config holds all configuration for report generation.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Style   StyleConfig   `yaml:"style"`
	Content ContentConfig `yaml:"content"`
	Assets  AssetsConfig  `yaml:"assets"`
	Batch   BatchConfig   `yaml:"batch"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = current directory
}

// StyleConfig selects a style set and token overrides.
type StyleConfig struct {
	Name      string         `yaml:"name"`      // Style set name or YAML path (empty = default)
	Overrides map[string]any `yaml:"overrides"` // token: value, applied after the set
}

// ContentConfig defines content record options.
type ContentConfig struct {
	Default    string `yaml:"default"`    // Record name or path used when no file is given
	ReportDate string `yaml:"reportDate"` // Overrides every record's reportDate; accepts "auto"
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// BatchConfig defines batch generation options.
type BatchConfig struct {
	Workers int `yaml:"workers"` // 0 = sized from GOMAXPROCS
}

// DefaultConfig returns a neutral configuration: embedded default style,
// embedded sample content, current directory output.
func DefaultConfig() *Config {
	return &Config{}
}

// StyleOverrides returns the overrides as strings, ready for merging.
// Numeric YAML values are formatted as written.
func (c *Config) StyleOverrides() map[string]string {
	if len(c.Style.Overrides) == 0 {
		return nil
	}
	out := make(map[string]string, len(c.Style.Overrides))
	for k, v := range c.Style.Overrides {
		if v != nil {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// Validate checks field lengths and ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.name", c.Style.Name, MaxPathLength); err != nil {
		return err
	}
	keys := make([]string, 0, len(c.Style.Overrides))
	for k := range c.Style.Overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := validateFieldLength("style.overrides key", k, MaxNameLength); err != nil {
			return err
		}
		if err := validateFieldLength("style.overrides."+k, fmt.Sprint(c.Style.Overrides[k]), MaxOverrideLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("content.default", c.Content.Default, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("content.reportDate", c.Content.ReportDate, MaxDateLength); err != nil {
		return err
	}
	if c.Batch.Workers < 0 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("%w: batch.workers must be between 0 and %d, got %d", ErrInvalidField, MaxWorkers, c.Batch.Workers)
	}
	if c.Assets.BasePath != "" {
		if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
			return err
		}
		info, err := os.Stat(c.Assets.BasePath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("%w: assets.basePath: directory does not exist: %s", ErrInvalidField, c.Assets.BasePath)
			}
			return fmt.Errorf("%w: assets.basePath: %v", ErrInvalidField, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%w: assets.basePath: not a directory: %s", ErrInvalidField, c.Assets.BasePath)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise, it's searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order:
// current directory, then ~/.config/go-sprintreport/, each with .yaml
// before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, configDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing SearchPaths entry.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
