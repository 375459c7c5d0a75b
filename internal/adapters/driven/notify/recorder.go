package notify

import (
	"sync"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Recorder implements the interface.
var _ driven.Notifier = (*Recorder)(nil)

// Recorder keeps every notification it receives.
// The TUI drains it to show toasts; tests inspect it.
type Recorder struct {
	mu    sync.Mutex
	items []domain.Notification
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify records the notification.
func (r *Recorder) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return domain.Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Drain returns and forgets the recorded notifications.
func (r *Recorder) Drain() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	return out
}
