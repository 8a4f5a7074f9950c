package events

import (
	"log/slog"
	"sync"
)

// DefaultBufferSize is the default channel buffer size for subscribers.
const DefaultBufferSize = 64

type subscriberEntry struct {
	ch chan Event
}

// Router fans events out to subscribers. Producers call Emit; the audit
// sink and an optional TUI each hold their own subscription. It never
// touches storage and is never the calculator's sole writer — it only
// observes what the replay-mediated console and SessionState already
// decided to do.
type Router struct {
	subscribers []subscriberEntry
	bufferSize  int
	mu          sync.RWMutex
	closed      bool
}

// NewRouter creates a router whose subscriptions default to bufferSize
// (or DefaultBufferSize if non-positive).
func NewRouter(bufferSize int) *Router {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Router{bufferSize: bufferSize}
}

// Emit publishes an event to every subscriber, non-blocking: a full
// channel drops the event with a logged warning rather than stalling the
// interpreter loop. Safe to call concurrently and after Close.
func (r *Router) Emit(event Event) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return
	}

	for _, sub := range r.subscribers {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("event dropped: subscriber channel full",
				"event_type", event.Type(),
				"run_id", event.RunID(),
			)
		}
	}
}

// Subscribe returns a channel receiving every emitted event, buffered at
// the router's default size.
func (r *Router) Subscribe() <-chan Event {
	return r.SubscribeBuffered(r.bufferSize)
}

// SubscribeBuffered is Subscribe with an explicit buffer size.
func (r *Router) SubscribeBuffered(size int) <-chan Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		ch := make(chan Event)
		close(ch)
		return ch
	}

	ch := make(chan Event, size)
	r.subscribers = append(r.subscribers, subscriberEntry{ch: ch})
	return ch
}

// Unsubscribe removes and closes ch. Safe on an unknown or already-removed
// channel.
func (r *Router) Unsubscribe(ch <-chan Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, sub := range r.subscribers {
		if sub.ch == ch {
			r.subscribers = append(r.subscribers[:i], r.subscribers[i+1:]...)
			close(sub.ch)
			return
		}
	}
}

// Close closes every subscriber channel. Further Emit calls are no-ops and
// further Subscribe calls return already-closed channels.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	for _, sub := range r.subscribers {
		close(sub.ch)
	}
	r.subscribers = nil
}
