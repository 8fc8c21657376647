// Package api contains the client-side transport for the Loom service.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) for the calls
//     the application makes: Login, FetchProfile, Logout, StreamJobLog, Ping.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that holds the
//     session cookie in a jar, tags every request with an X-Request-Id, and
//     converts failures into the structured CallError contract.
//
// # Error Handling
//
// Every failed call yields a *CallError carrying the HTTP status of the server
// response (0 when none was received) and a Network flag for failures below
// the HTTP layer. Session classification operates on those fields only; no
// caller needs to parse message text. Coarse matching is available through the
// sentinel errors ErrUnauthorized and ErrUnavailable via errors.Is.
//
// All operations accept context.Context and honor cancellation/timeouts.
package api
