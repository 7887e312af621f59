// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface implemented by any background worker.
//
// Run blocks until the context is cancelled; the Workers aggregate
// spawns one goroutine per worker.
type Worker interface {
	Run(ctx context.Context)
}
