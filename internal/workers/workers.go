package workers

import (
	"context"
	"sync"
)

// Workers runs a set of background workers and waits for them on stop.
type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// New builds a Workers aggregate from the given workers.
func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine. It does not block;
// cancel ctx and call Wait to shut down.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(ctx)
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
