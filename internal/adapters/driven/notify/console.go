// Package notify provides driven.Notifier implementations.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Console implements the interface.
var _ driven.Notifier = (*Console)(nil)

// Console prints notifications as single styled lines.
// Auto-dismiss durations have no meaning on a terminal and are ignored.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	title  lipgloss.Style
	muted  lipgloss.Style
	badges map[domain.NotificationType]lipgloss.Style
}

// NewConsole creates a console notifier. A nil writer means stderr.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	badge := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}
	return &Console{
		out:   w,
		title: lipgloss.NewStyle().Bold(true),
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		badges: map[domain.NotificationType]lipgloss.Style{
			domain.NotificationSuccess: badge("#A6E3A1"),
			domain.NotificationError:   badge("#F38BA8"),
			domain.NotificationWarning: badge("#F9E2AF"),
			domain.NotificationInfo:    badge("#06B6D4"),
		},
	}
}

// Notify writes the notification.
func (c *Console) Notify(n domain.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	style, ok := c.badges[n.Type]
	if !ok {
		style = c.badges[domain.NotificationInfo]
	}
	line := style.Render(symbol(n.Type)) + " " + c.title.Render(n.Title)
	if n.Message != "" {
		line += " " + c.muted.Render(n.Message)
	}
	_, _ = fmt.Fprintln(c.out, line)
}

func symbol(t domain.NotificationType) string {
	switch t {
	case domain.NotificationSuccess:
		return "✓"
	case domain.NotificationError:
		return "✗"
	case domain.NotificationWarning:
		return "!"
	default:
		return "i"
	}
}
