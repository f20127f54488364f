package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {

	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidate_Rejections(t *testing.T) {

	mutations := map[string]func(*Config){
		"empty addr":           func(c *Config) { c.Server.Addr = "" },
		"zero rate limit":      func(c *Config) { c.RateLimit.Requests = 0 },
		"zero window":          func(c *Config) { c.RateLimit.WindowSec = 0 },
		"zero idle ttl":        func(c *Config) { c.RateLimit.IdleTTLSec = 0 },
		"redis without addr":   func(c *Config) { c.Redis.Enabled = true; c.Redis.Addr = "" },
		"sale count too small": func(c *Config) { c.Calculator.SaleRangeCount = 1 },
		"unknown confidence":   func(c *Config) { c.Calculator.Confidence = "Maybe" },
		"unknown log level":    func(c *Config) { c.LogLevel = "verbose" },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := Defaults()
			mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.Calculator.SalePrice != 500000 {
		t.Errorf("expected default sale price, got %v", cfg.Calculator.SalePrice)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
log_level = "debug"

[server]
addr = ":9090"

[calculator]
sale_price = 750000.0
confidence = "Possible"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":9090" {
		t.Errorf("expected addr from file, got %q", cfg.Server.Addr)
	}
	if cfg.Calculator.SalePrice != 750000 {
		t.Errorf("expected sale price from file, got %v", cfg.Calculator.SalePrice)
	}
	if cfg.Calculator.Confidence != "Possible" {
		t.Errorf("expected confidence from file, got %q", cfg.Calculator.Confidence)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level from file, got %q", cfg.LogLevel)
	}
	// Untouched sections keep their defaults.
	if cfg.RateLimit.Requests != 5 {
		t.Errorf("expected default rate limit, got %d", cfg.RateLimit.Requests)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":9090\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MOVECALC_SERVER_ADDR", ":7070")
	t.Setenv("MOVECALC_RATE_LIMIT_REQUESTS", "25")
	t.Setenv("MOVECALC_CALC_PAYOFF_AMOUNT", "280000")
	t.Setenv("MOVECALC_REDIS_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Addr != ":7070" {
		t.Errorf("env should beat file, got %q", cfg.Server.Addr)
	}
	if cfg.RateLimit.Requests != 25 {
		t.Errorf("expected rate limit from env, got %d", cfg.RateLimit.Requests)
	}
	if cfg.Calculator.PayoffAmount != 280000 {
		t.Errorf("expected payoff from env, got %v", cfg.Calculator.PayoffAmount)
	}
	if !cfg.Redis.Enabled {
		t.Error("expected redis enabled from env")
	}
}

func TestLoad_MalformedEnvValueIsIgnored(t *testing.T) {

	t.Setenv("MOVECALC_RATE_LIMIT_REQUESTS", "lots")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.RateLimit.Requests != 5 {
		t.Errorf("unparseable env value should leave the default, got %d", cfg.RateLimit.Requests)
	}
}
