// Package config defines the move-calculator configuration and provides
// loading and validation helpers. Values come from a TOML file, overridden by
// MOVECALC_* environment variables.
package config

import (
	"fmt"

	"move-calculator/domain"
)

// Config is the root configuration structure.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Redis      RedisConfig      `toml:"redis"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
	Calculator CalculatorConfig `toml:"calculator"`
	LogLevel   string           `toml:"log_level"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeoutSec  int      `toml:"read_timeout_sec"`
	WriteTimeoutSec int      `toml:"write_timeout_sec"`
	IdleTimeoutSec  int      `toml:"idle_timeout_sec"`
	CORSOrigins     []string `toml:"cors_origins"`
}

// RedisConfig holds cache connection parameters. When Enabled is false an
// in-memory cache is used instead.
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTLSec   int    `toml:"ttl_sec"`
}

// RateLimitConfig holds per-IP request limits for the calculation endpoints.
// Client buckets idle for IdleTTLSec are evicted.
type RateLimitConfig struct {
	Requests   int `toml:"requests"`
	WindowSec  int `toml:"window_sec"`
	IdleTTLSec int `toml:"idle_ttl_sec"`
}

// CalculatorConfig holds the fallback values the calculator starts from when
// no saved state is supplied.
type CalculatorConfig struct {
	SalePrice          float64 `toml:"sale_price"`
	PayoffAmount       float64 `toml:"payoff_amount"`
	PurchasePrice      float64 `toml:"purchase_price"`
	TargetPayment      float64 `toml:"target_payment"`
	Confidence         string  `toml:"confidence"`
	SaleRangeCount     int     `toml:"sale_range_count"`
	PurchaseRangeCount int     `toml:"purchase_range_count"`
	DownPayment        float64 `toml:"down_payment"`
	InterestRate       float64 `toml:"interest_rate"`
	LoanTermYears      float64 `toml:"loan_term_years"`
	PropertyTaxRate    float64 `toml:"property_tax_rate"`
	HOACost            float64 `toml:"hoa_cost"`
	InsuranceCost      float64 `toml:"insurance_cost"`
}

// Defaults returns the built-in configuration. The calculator values mirror
// the hardcoded fallbacks the UI uses for absent saved fields.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeoutSec:  15,
			WriteTimeoutSec: 15,
			IdleTimeoutSec:  60,
			CORSOrigins:     []string{"*"},
		},
		Redis: RedisConfig{
			Enabled: false,
			Addr:    "localhost:6379",
			TTLSec:  3600,
		},
		RateLimit: RateLimitConfig{
			Requests:   5,
			WindowSec:  60,
			IdleTTLSec: 3600,
		},
		Calculator: CalculatorConfig{
			SalePrice:          500000,
			PayoffAmount:       300000,
			PurchasePrice:      600000,
			TargetPayment:      3000,
			Confidence:         "Likely",
			SaleRangeCount:     6,
			PurchaseRangeCount: 6,
			DownPayment:        20,
			InterestRate:       6.5,
			LoanTermYears:      30,
			PropertyTaxRate:    1.1,
			HOACost:            300,
			InsuranceCost:      1200,
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for values the services cannot work with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.WindowSec <= 0 {
		return fmt.Errorf("rate_limit.window_sec must be positive, got %d", c.RateLimit.WindowSec)
	}
	if c.RateLimit.IdleTTLSec <= 0 {
		return fmt.Errorf("rate_limit.idle_ttl_sec must be positive, got %d", c.RateLimit.IdleTTLSec)
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr must not be empty when redis is enabled")
	}
	if c.Calculator.SaleRangeCount < 2 || c.Calculator.PurchaseRangeCount < 2 {
		return fmt.Errorf("calculator range counts must be at least 2, got %d and %d",
			c.Calculator.SaleRangeCount, c.Calculator.PurchaseRangeCount)
	}
	if _, ok := domain.SpreadFor(c.Calculator.Confidence); !ok {
		return fmt.Errorf("unknown confidence level %q", c.Calculator.Confidence)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
