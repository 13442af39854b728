// Package cli provides the interactive FarmKeeper terminal client.
//
// It plays the part of the dashboard UI: login, registration and password
// reset forms while nobody is signed in, and once a session is open, a
// profile view and editor plus tab navigation gated through the router.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends. See App and runREPL for details.
package cli
