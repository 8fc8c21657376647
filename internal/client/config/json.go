package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/loomworks/loomctl/internal/flagx"
	"github.com/loomworks/loomctl/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so the file can specify them as strings or nanoseconds.
type jsonConfig struct {
	ServerBaseURL       string         `json:"server_base_url"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
	LoginSettleDelay    timex.Duration `json:"login_settle_delay"`
	LoginRetryBaseDelay timex.Duration `json:"login_retry_base_delay"`
	LoginRetryAttempts  int            `json:"login_retry_attempts"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	LogLevel            string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag means no JSON. Read or unmarshal errors panic; this
// runs during startup where a broken config file should be fatal and loud.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}
	applyJSONFile(cfg, path)
}

// applyJSONFile overlays cfg with the file's contents. Only fields actually
// present (non-zero after unmarshalling) are copied.
func applyJSONFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.LoginSettleDelay.Duration > 0 {
		cfg.LoginSettleDelay = time.Duration(jc.LoginSettleDelay.Duration)
	}
	if jc.LoginRetryBaseDelay.Duration > 0 {
		cfg.LoginRetryBaseDelay = time.Duration(jc.LoginRetryBaseDelay.Duration)
	}
	if jc.LoginRetryAttempts > 0 {
		cfg.LoginRetryAttempts = jc.LoginRetryAttempts
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = time.Duration(jc.OnlineCheckInterval.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
