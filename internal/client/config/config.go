package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the loomctl client.
type Config struct {
	// ServerBaseURL is the root URL of the Loom HTTP API.
	ServerBaseURL string

	// RequestTimeout bounds every regular API call.
	RequestTimeout time.Duration

	// LoginSettleDelay is the wait between a successful login and the first
	// profile fetch, covering session cookie propagation.
	LoginSettleDelay time.Duration

	// LoginRetryBaseDelay scales the linear backoff of profile retries.
	LoginRetryBaseDelay time.Duration

	// LoginRetryAttempts bounds the profile retry loop.
	LoginRetryAttempts int

	// OnlineCheckInterval is how often the client probes service
	// reachability while the REPL is running.
	OnlineCheckInterval time.Duration

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.LoginSettleDelay = 500 * time.Millisecond
	c.LoginRetryBaseDelay = time.Second
	c.LoginRetryAttempts = 3
	c.OnlineCheckInterval = 15 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config by applying defaults, then overlaying JSON,
// environment, and flags, in that order. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg, os.Args[1:])
	return cfg
}
