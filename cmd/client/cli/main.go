package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/loomworks/loomctl/internal/client/cli"
	"github.com/loomworks/loomctl/internal/client/config"
	"github.com/loomworks/loomctl/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app.Run(ctx)
}
