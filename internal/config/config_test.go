package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.URL != "https://www.google.com/finance/historical?q=AAPL&output=csv" {
		t.Errorf("expected default url, got %s", cfg.Source.URL)
	}
	if *cfg.Source.CloseColumn != 3 {
		t.Errorf("expected close column 3, got %d", *cfg.Source.CloseColumn)
	}
	if cfg.Source.MissingValue != 0 {
		t.Errorf("expected missing value 0, got %v", cfg.Source.MissingValue)
	}
	if cfg.Chart.YLabel != "AAPL Stock Price" {
		t.Errorf("expected y label %q, got %q", "AAPL Stock Price", cfg.Chart.YLabel)
	}
	if cfg.Schedule.RefreshCron != "" {
		t.Errorf("expected no refresh schedule, got %q", cfg.Schedule.RefreshCron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `source:
  url: http://localhost:9000/msft.csv
  symbol: msft
  close_column: 4
  missing_value: -1
chart:
  output: out/msft.svg
  sma_period: 20
schedule:
  refresh_cron: "0 0 18 * * 1-5"
`
	if err := os.WriteFile(path, []byte(yml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.Symbol != "MSFT" {
		t.Errorf("expected MSFT, got %s", cfg.Source.Symbol)
	}
	if *cfg.Source.CloseColumn != 4 {
		t.Errorf("expected close column 4, got %d", *cfg.Source.CloseColumn)
	}
	if cfg.Source.MissingValue != -1 {
		t.Errorf("expected missing value -1, got %v", cfg.Source.MissingValue)
	}
	if cfg.Source.URL != "http://localhost:9000/msft.csv" {
		t.Errorf("expected configured url, got %s", cfg.Source.URL)
	}
	if cfg.Chart.YLabel != "MSFT Stock Price" {
		t.Errorf("expected derived y label, got %q", cfg.Chart.YLabel)
	}
	if cfg.Chart.SMAPeriod != 20 {
		t.Errorf("expected sma period 20, got %d", cfg.Chart.SMAPeriod)
	}
	if cfg.Schedule.RefreshCron != "0 0 18 * * 1-5" {
		t.Errorf("unexpected refresh cron %q", cfg.Schedule.RefreshCron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_URLFollowsSymbol(t *testing.T) {
	t.Setenv("SYMBOL", "ivv")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.URL != "https://www.google.com/finance/historical?q=IVV&output=csv" {
		t.Errorf("unexpected url %s", cfg.Source.URL)
	}
}

func TestLoad_ZeroCloseColumnKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source:\n  close_column: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Source.CloseColumn != 0 {
		t.Errorf("expected explicit 0 to be kept, got %d", *cfg.Source.CloseColumn)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SOURCE_URL", "http://env.test/data.csv")
	t.Setenv("CHART_OUTPUT", "env.png")
	t.Setenv("HTTPS_PROXY", "http://proxy.test:3128")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Source.URL != "http://env.test/data.csv" {
		t.Errorf("expected env url, got %s", cfg.Source.URL)
	}
	if cfg.Chart.Output != "env.png" {
		t.Errorf("expected env output, got %s", cfg.Chart.Output)
	}
	if cfg.Proxy != "http://proxy.test:3128" {
		t.Errorf("expected env proxy, got %s", cfg.Proxy)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("source: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	base := func(t *testing.T) *Config {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative column", func(c *Config) { col := -1; c.Source.CloseColumn = &col }},
		{"negative width", func(c *Config) { c.Chart.WidthIn = -1 }},
		{"negative sma", func(c *Config) { c.Chart.SMAPeriod = -5 }},
		{"unknown format", func(c *Config) { c.Chart.Output = "chart.bmp" }},
		{"empty url", func(c *Config) { c.Source.URL = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base(t)
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
