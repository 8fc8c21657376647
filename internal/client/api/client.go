package api

import (
	"context"
	"io"

	"github.com/loomworks/loomctl/internal/client/models"
)

// Client is the API contract the application depends on. The concrete
// transport behind it is interchangeable; see HTTPClient.
type Client interface {
	// Login submits credentials. On success the session credential is held by
	// the transport (cookie jar); the returned user is the inline profile
	// payload when the server includes one, nil otherwise.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// FetchProfile fetches the profile of the current session. It relies on
	// the ambient session credential and fails with a 401 CallError when no
	// valid session exists.
	FetchProfile(ctx context.Context) (*models.User, error)

	// Logout invalidates the server-side session.
	Logout(ctx context.Context) error

	// StreamJobLog opens the live log stream of a job. The caller owns the
	// returned reader and must close it.
	StreamJobLog(ctx context.Context, jobID string) (io.ReadCloser, error)

	// Ping checks service reachability.
	Ping(ctx context.Context) error

	// Close releases transport resources.
	Close() error
}
