package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/vibechef/internal/logger"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Len reports how many workers the group runs.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all of them have returned. A
// failing worker is logged and does not stop the others.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := worker.Run(ctx); err != nil {
				w.logger.Error().Err(err).Int("worker", i).Msg("background worker stopped")
			}
		}()
	}
	wg.Wait()
}
