// Package config loads the smokebasin YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/smokebasin/analysis"
	"github.com/katalvlaran/smokebasin/heightmap"
)

// Config is the top-level structure of smokebasin.yaml.
type Config struct {
	// Analysis holds the pipeline tunables.
	Analysis AnalysisConfig `yaml:"analysis"`
	// Logging holds klog settings.
	Logging LoggingConfig `yaml:"logging"`
}

// AnalysisConfig configures analysis.Analyze.
type AnalysisConfig struct {
	// TopK is how many of the largest basins are multiplied. Nil means 3.
	TopK *int `yaml:"top_k"`
	// Sentinel is the ridge height. Nil means 9.
	Sentinel *int `yaml:"sentinel"`
	// Strict fails the run when two low points share one basin.
	Strict bool `yaml:"strict"`
}

// LoggingConfig configures klog.
type LoggingConfig struct {
	// Verbosity is the klog -v level.
	Verbosity int `yaml:"verbosity"`
}

// Load reads and parses path, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}
	return Parse(data)
}

// Parse decodes YAML bytes, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	ApplyDefaults(&cfg)
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero-valued fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Analysis.TopK == nil {
		k := analysis.DefaultTopK
		cfg.Analysis.TopK = &k
	}
	if cfg.Analysis.Sentinel == nil {
		s := int(heightmap.MaxHeight)
		cfg.Analysis.Sentinel = &s
	}
}

// Validate checks ranges after defaults were applied.
func Validate(cfg *Config) error {
	if k := cfg.Analysis.TopK; k == nil || *k < 1 {
		return errors.New("analysis.top_k must be at least 1")
	}
	if s := cfg.Analysis.Sentinel; s == nil || *s < 0 || *s > int(heightmap.MaxHeight) {
		return fmt.Errorf("analysis.sentinel must be within 0..%d", heightmap.MaxHeight)
	}
	if cfg.Logging.Verbosity < 0 {
		return fmt.Errorf("logging.verbosity must not be negative, got %d", cfg.Logging.Verbosity)
	}
	return nil
}

// Options converts the analysis section into analysis options.
func (c *Config) Options() []analysis.Option {
	return []analysis.Option{
		analysis.WithTopK(*c.Analysis.TopK),
		analysis.WithSentinel(uint8(*c.Analysis.Sentinel)),
		analysis.WithStrict(c.Analysis.Strict),
	}
}
