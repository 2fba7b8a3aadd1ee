// Package cli provides the interactive marketplace command-line client.
//
// It renders the pages of the session controller as text and maps REPL
// commands onto controller actions. In remote mode a background watcher
// probes the API and reports when it goes offline or comes back.
//
// Key features:
//   - Register / Login / Logout
//   - Browse, search, filter and sort other students' listings
//   - Create, edit, mark sold and delete own listings
//   - View and edit the profile
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
