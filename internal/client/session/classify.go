package session

import (
	"errors"
	"net/http"

	"github.com/loomworks/loomctl/internal/client/api"
)

// Kind is the classification of a failed call, used to decide retry versus
// terminal behavior and which log channel the failure goes to. It is computed
// per failure and never stored.
type Kind int

const (
	// KindOther is any failure the remaining rules do not match, including
	// errors that did not come from the transport at all. Treated
	// conservatively as "not authenticated".
	KindOther Kind = iota

	// KindAuth is a credential or session rejection. Expected when signed
	// out; not severe.
	KindAuth

	// KindNetwork is a connectivity-level failure: the server's verdict is
	// unknown, which is not the same thing as a rejected credential.
	KindNetwork

	// KindServer is a server response with an unexpected status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "other"
	}
}

// Classify maps a failed call to its Kind using the structured transport
// contract (api.CallError). The rule order is load-bearing: a present server
// status always outranks the network flag, so a 401 produced by a flaky
// connection still classifies as an auth failure.
func Classify(err error) Kind {
	var ce *api.CallError
	if !errors.As(err, &ce) {
		return KindOther
	}
	switch {
	case ce.Status == http.StatusUnauthorized || ce.Status == http.StatusForbidden:
		return KindAuth
	case ce.Status == 0 && ce.Network:
		return KindNetwork
	case ce.Status > 0:
		return KindServer
	default:
		return KindOther
	}
}
