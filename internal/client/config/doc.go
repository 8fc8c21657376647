// Package config loads runtime configuration for the loomctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables with the LOOM_ prefix (a .env file in the
//     working directory is loaded first if present).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the Loom service
//	-i int      connectivity check interval (seconds)
//	-l string   log level (debug, info, warn, error)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "500ms" or
// integer nanoseconds:
//
//	{
//	  "server_base_url": "https://loom.example.com",
//	  "request_timeout": "10s",
//	  "login_settle_delay": "500ms",
//	  "login_retry_base_delay": "1s",
//	  "login_retry_attempts": 3,
//	  "online_check_interval": "15s",
//	  "log_level": "info"
//	}
package config
