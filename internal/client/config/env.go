package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Pointer-free zero values
// double as "not set" markers, so only provided variables overlay.
type envConfig struct {
	ServerBaseURL       string        `env:"LOOM_SERVER_URL"`
	RequestTimeout      time.Duration `env:"LOOM_REQUEST_TIMEOUT"`
	LoginSettleDelay    time.Duration `env:"LOOM_LOGIN_SETTLE_DELAY"`
	LoginRetryBaseDelay time.Duration `env:"LOOM_LOGIN_RETRY_BASE_DELAY"`
	LoginRetryAttempts  int           `env:"LOOM_LOGIN_RETRY_ATTEMPTS"`
	OnlineCheckInterval time.Duration `env:"LOOM_ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"LOOM_LOG_LEVEL"`
}

// parseEnv overlays cfg with LOOM_* environment variables. A .env file in
// the working directory is loaded first when present; a missing file is not
// an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.ServerBaseURL != "" {
		cfg.ServerBaseURL = ec.ServerBaseURL
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.LoginSettleDelay > 0 {
		cfg.LoginSettleDelay = ec.LoginSettleDelay
	}
	if ec.LoginRetryBaseDelay > 0 {
		cfg.LoginRetryBaseDelay = ec.LoginRetryBaseDelay
	}
	if ec.LoginRetryAttempts > 0 {
		cfg.LoginRetryAttempts = ec.LoginRetryAttempts
	}
	if ec.OnlineCheckInterval > 0 {
		cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
