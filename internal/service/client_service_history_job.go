package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/vibechef/models"
)

type historyJob struct {
	history HistorySync

	// mu serializes Start, Restart and Stop, so wg.Add never races wg.Wait.
	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	stopped  bool
	userID   int64
	onUpdate func([]models.Recipe)
}

// NewHistoryJob creates a historyJob over history. The job is idle until
// Start is called.
func NewHistoryJob(history HistorySync) HistoryJob {
	return &historyJob{history: history}
}

// Start stops any running subscription, then observes userID's history in
// a background goroutine and calls onUpdate for every emission. The
// goroutine exits when ctx is cancelled or Stop is called. onUpdate must not
// call back into the job.
func (j *historyJob) Start(ctx context.Context, userID int64, onUpdate func([]models.Recipe)) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopped = false
	j.userID = userID
	j.onUpdate = onUpdate
	j.restartLocked(ctx)
}

// Restart re-subscribes with the user and callback of the last Start. It is
// a no-op if Start was never called, if Stop was called since, or if ctx is
// already done, so a late reconnect cannot revive a finished session.
func (j *historyJob) Restart(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.onUpdate == nil || j.stopped || ctx.Err() != nil {
		return
	}
	j.restartLocked(ctx)
}

// Stop cancels the subscription and blocks until the goroutine has exited.
// Safe to call when the job is not running.
func (j *historyJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.stopped = true
	j.stopLocked()
}

func (j *historyJob) restartLocked(ctx context.Context) {
	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	updates := j.history.ObserveHistory(jobCtx, j.userID)
	onUpdate := j.onUpdate

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		for recipes := range updates {
			onUpdate(recipes)
		}
	}()
}

func (j *historyJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
