// Package cli provides the interactive photocard marketplace client.
//
// It wires configuration, the local session database, the HTTP API client
// and the view controllers behind a read-eval-print loop. The Navigator maps
// REPL commands to screens and sends the user to the login prompt when a
// screen needs a session.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Navigator and runREPL for details.
package cli
