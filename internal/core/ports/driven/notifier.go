package driven

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// Notifier shows user-visible messages. Rendering is up to the adapter.
type Notifier interface {
	Notify(n domain.Notification)
}
