// Package session is the client-side session reconciliation engine.
//
// The server is the only authority on whether this client is authenticated,
// and it communicates that fact indirectly: authenticated calls succeed,
// unauthenticated ones fail with 401/403. This package reconciles those
// signals into a single local state machine:
//
//	Unknown -> Checking -> Authenticated | Unauthenticated
//
// Store holds the reconciled state and is the only mutable piece; every
// transition goes through its three mutators so that it can be observed and
// logged at one choke point. Service drives the store through three flows:
//
//   - Bootstrap: once per process, resolve the ambient session credential
//     into a terminal state.
//   - CompleteLogin: after a successful login submission, optimistically mark
//     the session authenticated and resolve the profile, retrying with linear
//     backoff while the server-side credential settles.
//   - Logout: best-effort server logout, unconditional local clear.
//
// A failed call is classified (see Classify) to decide between "you are not
// logged in" and "we could not tell": an auth rejection is the expected
// signed-out path, a network failure is an indeterminate verdict that is
// logged separately but still surfaces as signed out so the UI never hangs.
//
// The flows serialize through a single-flight guard; a second flow arriving
// while one runs fails fast with ErrOperationInProgress. Every suspension
// point (settle delay, retry delays, calls) honors context cancellation.
package session
