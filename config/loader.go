package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies MOVECALC_* environment variable overrides, and
// returns the final Config. A missing file is not an error; the defaults
// apply. The caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides overwrites Config fields from well-known MOVECALC_*
// environment variables when set, so deployments can adjust settings without
// touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Server.Addr, "MOVECALC_SERVER_ADDR")
	setInt(&cfg.Server.ReadTimeoutSec, "MOVECALC_SERVER_READ_TIMEOUT_SEC")
	setInt(&cfg.Server.WriteTimeoutSec, "MOVECALC_SERVER_WRITE_TIMEOUT_SEC")
	setInt(&cfg.Server.IdleTimeoutSec, "MOVECALC_SERVER_IDLE_TIMEOUT_SEC")

	setBool(&cfg.Redis.Enabled, "MOVECALC_REDIS_ENABLED")
	setStr(&cfg.Redis.Addr, "MOVECALC_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "MOVECALC_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "MOVECALC_REDIS_DB")
	setInt(&cfg.Redis.TTLSec, "MOVECALC_REDIS_TTL_SEC")

	setInt(&cfg.RateLimit.Requests, "MOVECALC_RATE_LIMIT_REQUESTS")
	setInt(&cfg.RateLimit.WindowSec, "MOVECALC_RATE_LIMIT_WINDOW_SEC")
	setInt(&cfg.RateLimit.IdleTTLSec, "MOVECALC_RATE_LIMIT_IDLE_TTL_SEC")

	setFloat64(&cfg.Calculator.SalePrice, "MOVECALC_CALC_SALE_PRICE")
	setFloat64(&cfg.Calculator.PayoffAmount, "MOVECALC_CALC_PAYOFF_AMOUNT")
	setFloat64(&cfg.Calculator.PurchasePrice, "MOVECALC_CALC_PURCHASE_PRICE")
	setFloat64(&cfg.Calculator.TargetPayment, "MOVECALC_CALC_TARGET_PAYMENT")
	setStr(&cfg.Calculator.Confidence, "MOVECALC_CALC_CONFIDENCE")
	setInt(&cfg.Calculator.SaleRangeCount, "MOVECALC_CALC_SALE_RANGE_COUNT")
	setInt(&cfg.Calculator.PurchaseRangeCount, "MOVECALC_CALC_PURCHASE_RANGE_COUNT")

	setStr(&cfg.LogLevel, "MOVECALC_LOG_LEVEL")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
