// Package config provides configuration management for the matching engine.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidUnspecifiedSpacing = errors.New("flatten.unspecified_spacing must be 'before' or 'none'")
	ErrInvalidLogLevel           = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat          = errors.New("logging.format must be 'text' or 'json'")
	ErrUnsupportedConfigFormat   = errors.New("config file must be .yaml, .yml or .toml")
)

// Config represents the complete engine configuration.
type Config struct {
	Flatten    FlattenConfig    `yaml:"flatten" toml:"flatten"`
	Tokenizer  TokenizerConfig  `yaml:"tokenizer" toml:"tokenizer"`
	Normalizer NormalizerConfig `yaml:"normalizer" toml:"normalizer"`
	Validation ValidationConfig `yaml:"validation" toml:"validation"`
	Catalog    CatalogConfig    `yaml:"catalog" toml:"catalog"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
}

// FlattenConfig holds flattening policy.
type FlattenConfig struct {
	// UnspecifiedSpacing is applied to optional/alt elements without a
	// spacing attribute: "before" (schema default) or "none".
	UnspecifiedSpacing string `yaml:"unspecified_spacing" toml:"unspecified_spacing"`
}

// TokenizerConfig holds token placement policy.
type TokenizerConfig struct {
	MergeWhitespace        bool `yaml:"merge_whitespace" toml:"merge_whitespace"`
	SplitTextWhitespace    bool `yaml:"split_text_whitespace" toml:"split_text_whitespace"`
	DropUnspacedWhitespace bool `yaml:"drop_unspaced_whitespace" toml:"drop_unspaced_whitespace"`
}

// NormalizerConfig holds candidate text normalization settings.
type NormalizerConfig struct {
	// EquivalenceTable is a path to a "canonical,variant" file. Empty uses
	// the built-in table.
	EquivalenceTable string `yaml:"equivalence_table" toml:"equivalence_table"`
	CombineHyphens   bool   `yaml:"combine_hyphens" toml:"combine_hyphens"`
	VerifyOffsets    bool   `yaml:"verify_offsets" toml:"verify_offsets"`
}

// ValidationConfig controls template linting at load time.
type ValidationConfig struct {
	Strict        bool `yaml:"strict" toml:"strict"`
	CheckPatterns bool `yaml:"check_patterns" toml:"check_patterns"`
}

// CatalogConfig locates the template collection.
type CatalogConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Flatten: FlattenConfig{UnspecifiedSpacing: "before"},
		Tokenizer: TokenizerConfig{
			MergeWhitespace: true,
		},
		Normalizer: NormalizerConfig{
			CombineHyphens: true,
		},
		Validation: ValidationConfig{
			CheckPatterns: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from a YAML or TOML file. Keys absent from
// the file keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML or TOML file chosen by extension.
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Flatten.UnspecifiedSpacing {
	case "before", "none":
	default:
		return ErrInvalidUnspecifiedSpacing
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	return nil
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{UnspecifiedSpacing: %s, MergeWhitespace: %t, CombineHyphens: %t, Catalog: %s}",
		c.Flatten.UnspecifiedSpacing,
		c.Tokenizer.MergeWhitespace,
		c.Normalizer.CombineHyphens,
		c.Catalog.Path,
	)
}
