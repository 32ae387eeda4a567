// Package workers runs the background loops of the server process next to
// its transports, such as the Redis change relay.
package workers

import "context"

// Worker is a background loop. Run blocks until ctx is cancelled or the
// loop fails.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}
