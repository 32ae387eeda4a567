package notify

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/notify_mock.go -package=mock

// Bus publishes and delivers per-user change signals.
type Bus interface {
	// Publish signals every current subscriber of userID.
	Publish(ctx context.Context, userID int64) error
	// Subscribe registers for signals of userID. The returned function
	// releases the registration; it is safe to call more than once.
	Subscribe(userID int64) (<-chan struct{}, func())
	// Close releases the bus and closes every subscriber channel.
	Close() error
}
