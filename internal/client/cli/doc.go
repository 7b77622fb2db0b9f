// Package cli implements the interactive terminal client: a small REPL over
// the session services for signing in, browsing feeds, and managing the
// social graph.
package cli
