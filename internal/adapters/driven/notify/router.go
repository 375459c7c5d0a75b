package notify

import (
	"sync"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Router implements the interface.
var _ driven.Notifier = (*Router)(nil)

// Router forwards notifications to a fallback notifier until Capture is
// called. After that they are queued for Drain, so a full-screen interface
// can show them itself.
type Router struct {
	mu        sync.Mutex
	fallback  driven.Notifier
	capturing bool
	queue     Recorder
}

// NewRouter creates a router. A nil fallback drops notifications until
// capture starts.
func NewRouter(fallback driven.Notifier) *Router {
	return &Router{fallback: fallback}
}

// Notify forwards or queues the notification.
func (r *Router) Notify(n domain.Notification) {
	r.mu.Lock()
	capturing := r.capturing
	r.mu.Unlock()

	if capturing {
		r.queue.Notify(n)
		return
	}
	if r.fallback != nil {
		r.fallback.Notify(n)
	}
}

// Capture starts queueing notifications.
func (r *Router) Capture() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.capturing = true
}

// Release stops queueing and discards anything still queued.
func (r *Router) Release() {
	r.mu.Lock()
	r.capturing = false
	r.mu.Unlock()
	r.queue.Drain()
}

// Drain returns and forgets the queued notifications.
func (r *Router) Drain() []domain.Notification {
	return r.queue.Drain()
}
