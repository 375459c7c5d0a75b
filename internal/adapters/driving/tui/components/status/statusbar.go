// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/keymap"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// Bar displays the latest notification and keybinding hints.
type Bar struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	hints  []key.Binding

	notice  *domain.Notification
	seq     int
	pending int
	width   int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Show displays a notification, replacing the current one, and returns
// the sequence number to pass to Expire.
func (s *Bar) Show(n domain.Notification) int {
	s.seq++
	s.notice = &n
	s.pending = s.seq
	return s.seq
}

// Expire dismisses the notification shown with the given sequence number.
// Newer notifications are left alone.
func (s *Bar) Expire(seq int) bool {
	if s.notice == nil || seq != s.pending {
		return false
	}
	s.notice = nil
	return true
}

// Notice returns the notification on display.
func (s *Bar) Notice() (domain.Notification, bool) {
	if s.notice == nil {
		return domain.Notification{}, false
	}
	return *s.notice, true
}

// SetHints sets the keybinding hints shown on the right.
// Nil restores the default hints.
func (s *Bar) SetHints(bindings []key.Binding) {
	s.hints = bindings
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	padding := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	if s.notice == nil {
		return s.styles.Muted.Render("Ready")
	}

	text := s.notice.Title
	if s.notice.Message != "" {
		text = fmt.Sprintf("%s: %s", text, s.notice.Message)
	}
	return s.styles.Notice(s.notice.Type).Render(text)
}

func (s *Bar) renderRight() string {
	bindings := s.hints
	if bindings == nil {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear dismisses any notification.
func (s *Bar) Clear() {
	s.notice = nil
}
