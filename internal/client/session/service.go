package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/semaphore"

	"github.com/loomworks/loomctl/internal/client/models"
	"github.com/loomworks/loomctl/internal/logging"
)

// ErrOperationInProgress is returned when a session flow is started while
// another one is still running. Flows are rejected, not queued.
var ErrOperationInProgress = errors.New("session operation already in progress")

// Gateway is the slice of the API client the session engine needs.
type Gateway interface {
	FetchProfile(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

// Timing controls the waits of the login flow. Zero values get defaults.
type Timing struct {
	// SettleDelay is the wait between a successful login call and the first
	// profile attempt, covering the gap before the fresh session cookie is
	// usable on the next request.
	SettleDelay time.Duration

	// RetryBase scales the linear backoff of profile retries: the wait
	// before attempt n is RetryBase * n.
	RetryBase time.Duration

	// RetryAttempts bounds the profile retry loop, first attempt included.
	RetryAttempts uint64
}

const (
	defaultSettleDelay   = 500 * time.Millisecond
	defaultRetryBase     = time.Second
	defaultRetryAttempts = 3
)

func (t Timing) withDefaults() Timing {
	if t.SettleDelay <= 0 {
		t.SettleDelay = defaultSettleDelay
	}
	if t.RetryBase <= 0 {
		t.RetryBase = defaultRetryBase
	}
	if t.RetryAttempts == 0 {
		t.RetryAttempts = defaultRetryAttempts
	}
	return t
}

// Service drives the Store through the three session flows. All three
// serialize through a single-flight guard; none of them ever mutates the
// store except via its mutators.
type Service struct {
	gw     Gateway
	store  *Store
	timing Timing
	log    logging.Logger

	guard *semaphore.Weighted
	boot  sync.Once
}

func NewService(gw Gateway, store *Store, timing Timing, log logging.Logger) *Service {
	return &Service{
		gw:     gw,
		store:  store,
		timing: timing.withDefaults(),
		log:    log,
		guard:  semaphore.NewWeighted(1),
	}
}

// sleepCtx waits for d or until ctx is canceled. Test seam.
var sleepCtx = func(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Bootstrap resolves the ambient session credential into a terminal state.
// It runs at most once per Service; later calls are no-ops. The result is
// terminal until the next explicit login or logout: nothing is retried here.
// Bootstrap never fails past its own boundary; every branch ends in a store
// mutation.
func (s *Service) Bootstrap(ctx context.Context) {
	s.boot.Do(func() { s.runBootstrap(ctx) })
}

func (s *Service) runBootstrap(ctx context.Context) {
	if !s.guard.TryAcquire(1) {
		s.log.Warn(ctx, "bootstrap skipped, another session operation in progress")
		return
	}
	defer s.guard.Release(1)

	s.store.SetChecking()

	user, err := s.gw.FetchProfile(ctx)
	if err == nil {
		s.store.SetAuthenticated(user)
		s.log.Info(ctx, "session restored", "user", user.DisplayName())
		return
	}

	switch kind := Classify(err); kind {
	case KindAuth:
		// The ordinary signed-out path.
		s.log.Info(ctx, "no active session")
	case KindNetwork:
		// The server's verdict is unknown. Surfacing signed-out keeps the
		// UI from hanging, but this is an indeterminate result, not a
		// confirmed credential failure.
		s.log.Warn(ctx, "session check indeterminate, treating as signed out", "err", err)
	default:
		s.log.Error(ctx, "session check failed", "kind", kind.String(), "err", err)
	}
	s.store.SetUnauthenticated()
}

// CompleteLogin reconciles the store after a login submission the server
// already accepted. The session is considered valid the moment that call
// succeeded, independent of profile resolution, so the store is marked
// authenticated immediately.
//
// When the login response carried the user inline, that is the whole flow:
// no profile call is made. Otherwise the flow waits out the settle delay and
// resolves the profile with a bounded linear-backoff retry loop; auth and
// network failures are retried (the fresh cookie may not be visible yet),
// anything else stops the loop. Exhausted retries leave the session
// authenticated with a nil user: the credentials were accepted, and the
// profile stays fetchable later.
//
// The returned error is only ErrOperationInProgress or a context error;
// profile failures never propagate.
func (s *Service) CompleteLogin(ctx context.Context, inline *models.User) error {
	if !s.guard.TryAcquire(1) {
		return ErrOperationInProgress
	}
	defer s.guard.Release(1)

	s.store.SetAuthenticated(s.store.Snapshot().User)

	if inline != nil {
		s.store.SetAuthenticated(inline)
		s.log.Info(ctx, "login complete", "user", inline.DisplayName())
		return nil
	}

	if err := sleepCtx(ctx, s.timing.SettleDelay); err != nil {
		return err
	}

	var resolved *models.User
	attempts := 0
	backoff := retry.WithMaxRetries(s.timing.RetryAttempts-1, linearBackoff(s.timing.RetryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		user, err := s.gw.FetchProfile(ctx)
		if err == nil {
			resolved = user
			return nil
		}
		switch Classify(err) {
		case KindAuth, KindNetwork:
			return retry.RetryableError(err)
		default:
			return err
		}
	})
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.log.Warn(ctx, "profile unresolved after login, session stays authenticated",
			"attempts", attempts, "err", err)
		return nil
	}

	// A logout that ran while the profile was resolving has already cleared
	// the store; its verdict stands.
	if s.store.State() != StateAuthenticated {
		s.log.Info(ctx, "session cleared during profile resolution, discarding result")
		return nil
	}

	s.store.SetAuthenticated(resolved)
	s.log.Info(ctx, "login complete", "user", resolved.DisplayName(), "attempts", attempts)
	return nil
}

// Logout clears the local session unconditionally. The server call is best
// effort: its failure is logged and swallowed, because local state must never
// stay authenticated on account of a transient server error. When another
// flow holds the guard only the server call is skipped; the local clear still
// happens, which makes logout the terminating writer in any race.
func (s *Service) Logout(ctx context.Context) {
	if s.guard.TryAcquire(1) {
		if err := s.gw.Logout(ctx); err != nil {
			s.log.Warn(ctx, "server logout failed, clearing local session anyway", "err", err)
		}
		s.guard.Release(1)
	} else {
		s.log.Warn(ctx, "session operation in progress, skipping server logout")
	}
	s.store.SetUnauthenticated()
	s.log.Info(ctx, "logged out")
}

// linearBackoff waits RetryBase*n before attempt n. The first attempt is
// preceded by the settle delay instead, so the sequence of waits for a
// 3-attempt loop is: settle, 2*base, 3*base.
func linearBackoff(base time.Duration) retry.Backoff {
	attempt := 1
	return retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		return base * time.Duration(attempt), false
	})
}
