// Package notification delivers ledger change events to observers.
package notification

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// Broadcaster fans change events out to in-process subscribers.
// A subscriber whose buffer is full misses the event; Notify never blocks.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[uint64]chan entity.ChangeEvent
	nextID      uint64
	dropped     atomic.Uint64
}

// NewBroadcaster creates a Broadcaster with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[uint64]chan entity.ChangeEvent),
	}
}

// Subscribe registers a subscriber with the given buffer size. The returned
// func unsubscribes and closes the channel; calling it more than once is safe.
func (b *Broadcaster) Subscribe(buffer int) (<-chan entity.ChangeEvent, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan entity.ChangeEvent, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subscribers, id)
			b.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Notify implements adapter.ChangeNotifier.
func (b *Broadcaster) Notify(_ context.Context, event entity.ChangeEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
		}
	}
	return nil
}

// Subscribers returns the number of active subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Dropped returns how many deliveries were skipped because a subscriber was full.
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}
