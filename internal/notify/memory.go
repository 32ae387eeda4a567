package notify

import (
	"context"
	"sync"
)

type subscriber struct {
	ch chan struct{}
}

// MemoryBus is an in-process Bus.
type MemoryBus struct {
	mu     sync.RWMutex
	subs   map[int64]map[*subscriber]struct{}
	closed bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		subs: make(map[int64]map[*subscriber]struct{}),
	}
}

func (b *MemoryBus) Publish(_ context.Context, userID int64) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subs[userID] {
		select {
		case s.ch <- struct{}{}:
		default:
			// a signal is already pending
		}
	}

	return nil
}

func (b *MemoryBus) Subscribe(userID int64) (<-chan struct{}, func()) {
	s := &subscriber{ch: make(chan struct{}, 1)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(s.ch)
		return s.ch, func() {}
	}
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[*subscriber]struct{})
	}
	b.subs[userID][s] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return s.ch, func() {
		once.Do(func() { b.unsubscribe(userID, s) })
	}
}

func (b *MemoryBus) unsubscribe(userID int64, s *subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()

	set, ok := b.subs[userID]
	if !ok {
		return
	}
	if _, ok := set[s]; !ok {
		return
	}

	delete(set, s)
	if len(set) == 0 {
		delete(b.subs, userID)
	}
	close(s.ch)
}

// Subscribers returns the number of live registrations for userID.
func (b *MemoryBus) Subscribers(userID int64) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[userID])
}

// Evict closes the channels of every current subscriber and returns how
// many were dropped. Unlike Close the bus keeps accepting subscriptions.
func (b *MemoryBus) Evict() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.evictLocked()
}

func (b *MemoryBus) evictLocked() int {
	evicted := 0
	for userID, set := range b.subs {
		for s := range set {
			close(s.ch)
			evicted++
		}
		delete(b.subs, userID)
	}
	return evicted
}

func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.evictLocked()

	return nil
}
