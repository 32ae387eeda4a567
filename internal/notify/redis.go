package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/redis/go-redis/v9"
)

// RedisBus shares signals between server instances through a Redis pub/sub
// channel. Delivery to local subscribers goes through an embedded
// MemoryBus fed by Run.
type RedisBus struct {
	local      *MemoryBus
	client     *redis.Client
	channel    string
	retryDelay time.Duration
	logger     *logger.Logger
}

// relayRetryDelay is the pause before Run subscribes again after losing
// the shared channel.
const relayRetryDelay = 2 * time.Second

// NewRedisBus connects to addr and verifies the connection with PING.
func NewRedisBus(ctx context.Context, addr, password, channel string, log *logger.Logger) (*RedisBus, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisBus").Str("addr", addr).Msg("redis ping failed")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return newRedisBus(client, channel, log), nil
}

func newRedisBus(client *redis.Client, channel string, log *logger.Logger) *RedisBus {
	return &RedisBus{
		local:      NewMemoryBus(),
		client:     client,
		channel:    channel,
		retryDelay: relayRetryDelay,
		logger:     log,
	}
}

// Publish sends userID to the shared channel. When Redis is unreachable the
// signal is still delivered to subscribers of this instance.
func (b *RedisBus) Publish(ctx context.Context, userID int64) error {
	err := b.client.Publish(ctx, b.channel, strconv.FormatInt(userID, 10)).Err()
	if err != nil {
		b.logger.Err(err).Str("func", "*RedisBus.Publish").Int64("user_id", userID).Msg("redis publish failed, notifying locally")
		_ = b.local.Publish(ctx, userID)
		return fmt.Errorf("error publishing change: %w", err)
	}

	return nil
}

func (b *RedisBus) Subscribe(userID int64) (<-chan struct{}, func()) {
	return b.local.Subscribe(userID)
}

// Run relays messages of the shared channel to local subscribers until ctx
// is cancelled. Whenever the subscription fails or drops, every local
// subscriber is evicted so that open watch streams end with an error
// instead of silently missing changes, and Run subscribes again after
// retryDelay. Subscribers that joined while the relay was down are evicted
// once more when it recovers.
func (b *RedisBus) Run(ctx context.Context) error {
	log := b.logger.With().Str("func", "*RedisBus.Run").Str("channel", b.channel).Logger()

	recovering := false
	for {
		err := b.relay(ctx, func() {
			if recovering {
				evicted := b.local.Evict()
				log.Info().Int("evicted", evicted).Msg("change relay restored")
			}
		})
		if ctx.Err() != nil {
			return nil
		}

		evicted := b.local.Evict()
		log.Err(err).Int("evicted", evicted).Dur("retry_in", b.retryDelay).Msg("change relay lost")
		recovering = true

		timer := time.NewTimer(b.retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}
	}
}

// relay subscribes to the shared channel, calls ready once the
// subscription is confirmed and forwards messages until ctx is cancelled
// or the subscription ends.
func (b *RedisBus) relay(ctx context.Context, ready func()) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("error subscribing to %s: %w", b.channel, err)
	}

	b.logger.Info().Str("channel", b.channel).Msg("listening for recipe changes")
	ready()

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return errors.New("redis subscription closed")
			}

			userID, err := strconv.ParseInt(msg.Payload, 10, 64)
			if err != nil {
				b.logger.Warn().Str("payload", msg.Payload).Msg("skipping malformed change message")
				continue
			}
			_ = b.local.Publish(ctx, userID)
		}
	}
}

func (b *RedisBus) Close() error {
	return errors.Join(b.local.Close(), b.client.Close())
}
