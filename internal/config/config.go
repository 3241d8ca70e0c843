package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSymbol    = "AAPL"
	DefaultURLFormat = "https://www.google.com/finance/historical?q=%s&output=csv"
	DefaultOutput    = "data/close_price.png"
	DefaultLineColor = "#1f77b4"
)

// Config holds all application configuration.
type Config struct {
	Source struct {
		URL          string  `yaml:"url"`
		Symbol       string  `yaml:"symbol"`
		CloseColumn  *int    `yaml:"close_column"`
		MissingValue float64 `yaml:"missing_value"`
	} `yaml:"source"`
	Chart struct {
		YLabel    string  `yaml:"y_label"`
		Title     string  `yaml:"title"`
		Output    string  `yaml:"output"`
		WidthIn   float64 `yaml:"width_in"`
		HeightIn  float64 `yaml:"height_in"`
		LineColor string  `yaml:"line_color"`
		SMAPeriod int     `yaml:"sma_period"`
	} `yaml:"chart"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error; defaults reproduce the stock AAPL chart.
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
	if v := os.Getenv("SOURCE_URL"); v != "" {
		cfg.Source.URL = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.Source.Symbol = v
	}
	if v := os.Getenv("CHART_OUTPUT"); v != "" {
		cfg.Chart.Output = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Source.Symbol == "" {
		cfg.Source.Symbol = DefaultSymbol
	}
	cfg.Source.Symbol = strings.ToUpper(cfg.Source.Symbol)
	if cfg.Source.URL == "" {
		cfg.Source.URL = fmt.Sprintf(DefaultURLFormat, url.QueryEscape(cfg.Source.Symbol))
	}
	if cfg.Source.CloseColumn == nil {
		col := 3
		cfg.Source.CloseColumn = &col
	}
	if cfg.Chart.YLabel == "" {
		cfg.Chart.YLabel = cfg.Source.Symbol + " Stock Price"
	}
	if cfg.Chart.Output == "" {
		cfg.Chart.Output = DefaultOutput
	}
	if cfg.Chart.WidthIn == 0 {
		cfg.Chart.WidthIn = 8
	}
	if cfg.Chart.HeightIn == 0 {
		cfg.Chart.HeightIn = 6
	}
	if cfg.Chart.LineColor == "" {
		cfg.Chart.LineColor = DefaultLineColor
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url is required")
	}
	if c.Source.CloseColumn == nil || *c.Source.CloseColumn < 0 {
		return fmt.Errorf("source.close_column must be zero or positive")
	}
	if c.Chart.WidthIn <= 0 || c.Chart.HeightIn <= 0 {
		return fmt.Errorf("chart.width_in and chart.height_in must be positive")
	}
	if c.Chart.SMAPeriod < 0 {
		return fmt.Errorf("chart.sma_period must not be negative")
	}
	switch strings.ToLower(filepath.Ext(c.Chart.Output)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("chart.output %q: unsupported image format", c.Chart.Output)
	}
	return nil
}
