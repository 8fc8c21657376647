package config

import (
	"flag"
	"time"

	"github.com/loomworks/loomctl/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the Loom service (default from Config)
//	-i int      connectivity check interval in seconds (default from Config)
//	-l string   log level (default from Config)
//
// args is filtered to only the flags handled here, so flags owned by other
// components (like -c/-config) pass through untouched.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the Loom service")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "connectivity check interval (seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
}
