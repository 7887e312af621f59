// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session and domain stores, and the
// background refresh worker into a single process lifecycle.
package client
