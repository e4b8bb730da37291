// Package config loads calculator settings from an HCL file.
//
// Example:
//
//	log_level = "info"
//
//	calculator {
//	  engine        = "exact"
//	  samples       = 50000
//	  workers       = 4
//	  seed          = 42
//	  timeout       = "30s"
//	  allow_preflop = false
//	  sample_hands  = 5
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Engine names
const (
	EngineExact      = "exact"
	EngineMonteCarlo = "montecarlo"
)

// Config represents the complete configuration file
type Config struct {
	LogLevel   string            `hcl:"log_level,optional"`
	Calculator *CalculatorConfig `hcl:"calculator,block"`
}

// CalculatorConfig holds the defaults for a calculation run
type CalculatorConfig struct {
	Engine       string `hcl:"engine,optional"`
	Samples      int    `hcl:"samples,optional"`
	Workers      int    `hcl:"workers,optional"`
	Seed         *int64 `hcl:"seed,optional"`
	Timeout      string `hcl:"timeout,optional"`
	AllowPreflop bool   `hcl:"allow_preflop,optional"`
	SampleHands  int    `hcl:"sample_hands,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{Calculator: &CalculatorConfig{}}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Parse decodes configuration from HCL source held in memory
func Parse(filename string, src []byte) (*Config, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Calculator == nil {
		c.Calculator = &CalculatorConfig{}
	}
	calc := c.Calculator
	if calc.Engine == "" {
		calc.Engine = EngineMonteCarlo
	}
	if calc.Samples == 0 {
		calc.Samples = 50000
	}
	if calc.SampleHands == 0 {
		calc.SampleHands = 5
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	calc := c.Calculator
	switch calc.Engine {
	case EngineExact, EngineMonteCarlo:
	default:
		return fmt.Errorf("invalid engine %q: must be %q or %q", calc.Engine, EngineExact, EngineMonteCarlo)
	}
	if calc.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", calc.Samples)
	}
	if calc.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", calc.Workers)
	}
	if calc.SampleHands < 0 {
		return fmt.Errorf("sample_hands cannot be negative, got %d", calc.SampleHands)
	}
	if _, err := calc.TimeoutDuration(); err != nil {
		return err
	}
	return nil
}

// TimeoutDuration parses Timeout; an empty value means no timeout
func (c *CalculatorConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout cannot be negative: %s", c.Timeout)
	}
	return d, nil
}
