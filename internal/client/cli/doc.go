// Package cli provides the interactive loomctl command-line client.
//
// It wires configuration, the HTTP API client, the session engine, and an
// interactive REPL. Typical flow: bootstrap the session from the ambient
// credential, start a background connectivity watcher, and execute user
// commands.
//
// Commands:
//   - Signed out: login, status, help, exit
//   - Signed in adds: whoami, logs <job-id>, logout
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
