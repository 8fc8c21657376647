package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")
)

// CallError is the structured failure contract of the transport boundary.
//
// Status is the HTTP status of the server response, or 0 when no response was
// received at all. Network is set when the failure happened below the HTTP
// layer (DNS, refused connection, TLS, timeout). A present Status always
// outranks Network when the error is classified.
type CallError struct {
	Status  int
	Network bool
	Err     error
}

func (e *CallError) Error() string {
	switch {
	case e.Status > 0:
		return fmt.Sprintf("api call failed (status %d): %v", e.Status, e.Err)
	case e.Network:
		return fmt.Sprintf("api call failed (network): %v", e.Err)
	default:
		return fmt.Sprintf("api call failed: %v", e.Err)
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}
