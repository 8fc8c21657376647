package cli

import (
	"context"
	"errors"
	"os"

	"github.com/loomworks/loomctl/internal/client/joblog"
)

// JobLog follows the live log stream of a job and prints it to stdout until
// the stream ends or the context is canceled.
func (a *App) JobLog(ctx context.Context, jobID string) error {
	if !a.isLoggedIn() {
		printlnFn("Sign in first.")
		return nil
	}

	err := joblog.Follow(ctx, a.client, jobID, os.Stdout, a.log)
	if err != nil && !errors.Is(err, context.Canceled) {
		printlnFn("Log stream failed:", err.Error())
		return err
	}
	return nil
}
