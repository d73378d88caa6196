// Package cli provides the interactive team console.
//
// App wires the credential store, the API client and the workflows from
// package services behind a small REPL. App doubles as the workflows'
// navigator (it tracks the current view and prints a hint on change) and
// notifier (✓ and ✗ lines on its output).
//
// Secrets are read without echo when stdin is a terminal.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
