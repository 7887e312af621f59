package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

// blockingWorker runs until its context is cancelled and counts starts.
type blockingWorker struct {
	started atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1 := &blockingWorker{}
	w2 := &blockingWorker{}
	w3 := &blockingWorker{}

	ctx, cancel := context.WithCancel(context.Background())

	ws := New(w1, w2, w3)
	ws.Run(ctx)

	deadline := time.After(2 * time.Second)
	for _, w := range []*blockingWorker{w1, w2, w3} {
		for w.started.Load() == 0 {
			select {
			case <-deadline:
				t.Fatal("worker never started")
			default:
				time.Sleep(time.Millisecond)
			}
		}
	}

	cancel()
	ws.Wait()
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := New()

	// must not panic or hang with no workers
	ws.Run(context.Background())
	ws.Wait()
}
