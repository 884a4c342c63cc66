package messaging

import (
	"sync"

	"github.com/ariebrainware/dentist-api/model"
)

const subscriberBuffer = 16

// Broadcaster fans newly registered complaints out to live queue subscribers.
// Slow subscribers miss entries rather than block registration.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[chan model.QueueEntry]struct{}
	closed bool
}

// NewBroadcaster returns an empty Broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[chan model.QueueEntry]struct{})}
}

// Subscribe registers a subscriber. The returned cancel func must be called
// once the subscriber goes away; it closes the channel.
func (b *Broadcaster) Subscribe() (<-chan model.QueueEntry, func()) {
	ch := make(chan model.QueueEntry, subscriberBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
		})
	}
}

// Publish delivers entry to every subscriber with room in its buffer.
func (b *Broadcaster) Publish(entry model.QueueEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- entry:
		default:
		}
	}
}

// Subscribers returns the number of live subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close disconnects every subscriber and rejects new ones.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
	b.closed = true
}
