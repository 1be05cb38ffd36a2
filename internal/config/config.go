package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"PortfolioPulse/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Portfolio struct {
		Holdings   []string `yaml:"holdings"`
		Benchmarks []string `yaml:"benchmarks"`
	} `yaml:"portfolio"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Output struct {
		File string `yaml:"file"`
	} `yaml:"output"`
	Proxy string `yaml:"proxy"`
}

// DefaultHoldings is the hand-maintained NSE holdings list.
var DefaultHoldings = []string{
	"HDFCBANK.NS",
	"RELIANCE.NS",
	"ICICIBANK.NS",
	"BEL.NS",      // Bharat Electronics
	"HAL.NS",      // Hindustan Aeronautics
	"GOLDBEES.NS", // Gold ETF
	"SILVERBEES.NS",
	"TATAMOTORS.NS",
	"BHARTIARTL.NS",
}

// DefaultBenchmarks are the Nifty 50 and BSE Sensex indices.
var DefaultBenchmarks = []string{"^NSEI", "^BSESN"}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MARKETAPI_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("MARKETAPI_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("OUTPUT_FILE"); v != "" {
		cfg.Output.File = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if len(cfg.Portfolio.Holdings) == 0 {
		cfg.Portfolio.Holdings = DefaultHoldings
	}
	if len(cfg.Portfolio.Benchmarks) == 0 {
		cfg.Portfolio.Benchmarks = DefaultBenchmarks
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "Portfolio_Analysis.xlsx"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if len(c.Portfolio.Holdings)+len(c.Portfolio.Benchmarks) == 0 {
		return fmt.Errorf("portfolio must list at least one symbol")
	}
	if c.Output.File == "" {
		return fmt.Errorf("output.file is required")
	}
	if ext := strings.ToLower(filepath.Ext(c.Output.File)); ext != ".xlsx" {
		return fmt.Errorf("output.file must be an .xlsx path, got %q", c.Output.File)
	}
	return nil
}

// Instruments returns the registry in report order: holdings first,
// benchmarks last, each in listed order.
func (c *Config) Instruments() []model.Instrument {
	out := make([]model.Instrument, 0, len(c.Portfolio.Holdings)+len(c.Portfolio.Benchmarks))
	for _, s := range c.Portfolio.Holdings {
		out = append(out, model.Instrument{Symbol: s, Category: model.CategoryHolding})
	}
	for _, s := range c.Portfolio.Benchmarks {
		out = append(out, model.Instrument{Symbol: s, Category: model.CategoryBenchmark})
	}
	return out
}
