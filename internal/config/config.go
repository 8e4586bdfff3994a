package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type AuditConfig struct {
	SampleCount           int   `yaml:"sample_count"`
	Seed                  int64 `yaml:"seed,omitempty"`
	MaxDecodabilityRounds int   `yaml:"max_decodability_rounds,omitempty"`
	MaxDanglingSuffixes   int   `yaml:"max_dangling_suffixes,omitempty"`
	MaxPairwiseWords      int   `yaml:"max_pairwise_words,omitempty"`
	Parallelism           int   `yaml:"parallelism"`
}

type InputConfig struct {
	SkipRowsStart int    `yaml:"skip_rows_start,omitempty"`
	SkipRowsEnd   int    `yaml:"skip_rows_end,omitempty"`
	IgnoreAfter   string `yaml:"ignore_after,omitempty"`
	IgnoreBefore  string `yaml:"ignore_before,omitempty"`
	Decode        bool   `yaml:"decode,omitempty"`
}

type SQLiteConfig struct {
	Table  string `yaml:"table"`
	Column string `yaml:"column"`
}

type OutputConfig struct {
	JSON    bool   `yaml:"json,omitempty"`
	Samples bool   `yaml:"samples,omitempty"`
	Theme   string `yaml:"theme,omitempty"`
}

type Config struct {
	Audit  AuditConfig  `yaml:"audit"`
	Input  InputConfig  `yaml:"input"`
	SQLite SQLiteConfig `yaml:"sqlite"`
	Output OutputConfig `yaml:"output"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Audit: AuditConfig{
			SampleCount: 30,
			Parallelism: 1,
		},
		SQLite: SQLiteConfig{
			Table:  "words",
			Column: "word",
		},
		Output: OutputConfig{
			Theme: "default",
		},
	}
}

// DefaultPath returns ~/.config/wla/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wla", "config.yaml"), nil
}

// LoadConfig reads the YAML file at path on top of DefaultConfig. An empty
// path loads DefaultPath when that file exists and the defaults otherwise.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks values that would otherwise surface as confusing errors
// deep inside an audit.
func (c *Config) Validate() error {
	if c.Audit.SampleCount < 0 {
		return fmt.Errorf("audit.sample_count must not be negative, got %d", c.Audit.SampleCount)
	}
	if c.Audit.Parallelism < 0 {
		return fmt.Errorf("audit.parallelism must not be negative, got %d", c.Audit.Parallelism)
	}
	for name, v := range map[string]int{
		"audit.max_decodability_rounds": c.Audit.MaxDecodabilityRounds,
		"audit.max_dangling_suffixes":   c.Audit.MaxDanglingSuffixes,
		"audit.max_pairwise_words":      c.Audit.MaxPairwiseWords,
		"input.skip_rows_start":         c.Input.SkipRowsStart,
		"input.skip_rows_end":           c.Input.SkipRowsEnd,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	if c.Input.IgnoreAfter != "" && c.Input.IgnoreBefore != "" {
		return errors.New("input.ignore_after and input.ignore_before cannot both be set")
	}
	for name, d := range map[string]string{
		"input.ignore_after":  c.Input.IgnoreAfter,
		"input.ignore_before": c.Input.IgnoreBefore,
	} {
		if len([]rune(d)) > 1 {
			return fmt.Errorf("%s must be a single character, got %q", name, d)
		}
	}
	return nil
}
