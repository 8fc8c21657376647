package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/loomworks/loomctl/internal/client/api"
	"github.com/loomworks/loomctl/internal/client/config"
	"github.com/loomworks/loomctl/internal/client/session"
	"github.com/loomworks/loomctl/internal/logging"
)

// Mode reflects the last known reachability of the Loom service. It only
// affects the prompt and messaging; the session engine has its own error
// handling.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	client  api.Client
	store   *session.Store
	session *session.Service
	log     logging.Logger
	reader  *bufio.Reader
	mode    Mode
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(log)
	svc := session.NewService(apiClient, store, session.Timing{
		SettleDelay:   cfg.LoginSettleDelay,
		RetryBase:     cfg.LoginRetryBaseDelay,
		RetryAttempts: uint64(cfg.LoginRetryAttempts),
	}, log)

	return &App{
		config:  cfg,
		client:  apiClient,
		store:   store,
		session: svc,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		mode:    ModeOnline,
	}, nil
}

// Run bootstraps the session, starts the connectivity watcher, and enters
// the REPL. It blocks until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	printlnFn("Welcome to loomctl (type 'help' for commands)")

	a.session.Bootstrap(ctx)
	if snap := a.store.Snapshot(); snap.Authenticated {
		printlnFn(fmt.Sprintf("Signed in as %s.", snap.User.DisplayName()))
	} else {
		printlnFn("Not signed in. Use 'login' to authenticate.")
	}

	go a.startOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Authenticated
}

func (a *App) getStatus() string {
	s := ""
	if snap := a.store.Snapshot(); snap.Authenticated {
		s = snap.User.DisplayName() + " "
	}
	s += string(a.mode)
	return fmt.Sprintf("(%s)", s)
}

func (a *App) setMode(mode Mode) {
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// startOnlineStatusWatcher probes service reachability on a ticker and flips
// the prompt mode accordingly.
func (a *App) startOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
