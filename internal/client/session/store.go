package session

import (
	"context"
	"sync"

	"github.com/loomworks/loomctl/internal/client/models"
	"github.com/loomworks/loomctl/internal/logging"
)

// State is the reconciled session state. It starts Unknown, moves to Checking
// when bootstrap begins, and from then on is always one of the two terminal
// values until the next login or logout.
type State int

const (
	StateUnknown State = iota
	StateChecking
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUnknown:
		return "unknown"
	case StateChecking:
		return "checking"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "invalid"
	}
}

// Snapshot is the read-only view handed to the rest of the application.
type Snapshot struct {
	Authenticated bool
	Loading       bool
	User          *models.User
}

// Store holds the current session state and user. It is the only mutable
// state of the engine and is safe for concurrent use. Construct one per
// application (or per test) and inject it; there is no package-level
// instance.
//
// Authenticated does not guarantee a non-nil user: after a login whose
// profile resolution exhausted its retries the session stays authenticated
// with the user still unresolved. That window is part of the contract, not
// a bug to patch here.
type Store struct {
	mu    sync.Mutex
	state State
	user  *models.User
	log   logging.Logger
}

func NewStore(log logging.Logger) *Store {
	return &Store{state: StateUnknown, log: log.With("component", "session")}
}

// SetChecking marks the session as being verified. Used only by bootstrap.
func (s *Store) SetChecking() {
	s.transition(StateChecking, nil)
}

// SetAuthenticated marks the session valid and replaces the user wholesale.
// A nil user is allowed: the session is valid but the profile is not (yet)
// resolved.
func (s *Store) SetAuthenticated(user *models.User) {
	s.transition(StateAuthenticated, user)
}

// SetUnauthenticated marks the session invalid and drops the user.
func (s *Store) SetUnauthenticated() {
	s.transition(StateUnauthenticated, nil)
}

// Snapshot returns the current state by value. The user is a copy; mutating
// it does not affect the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Authenticated: s.state == StateAuthenticated,
		Loading:       s.state == StateUnknown || s.state == StateChecking,
		User:          s.user.Clone(),
	}
}

// State returns the raw state value.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) transition(to State, user *models.User) {
	s.mu.Lock()
	from := s.state
	s.state = to
	s.user = user.Clone()
	s.mu.Unlock()

	s.log.Debug(context.Background(), "session state transition",
		"from", from.String(), "to", to.String(), "user_set", user != nil)
}
