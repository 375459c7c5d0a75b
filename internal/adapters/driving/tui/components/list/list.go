// Package list provides a selectable list component for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
)

// Entry is a single list row.
type Entry struct {
	// ID identifies the entry to the owning view.
	ID       string
	Title    string
	Subtitle string

	// Badge is a short marker drawn after the title.
	Badge string
}

// List displays entries with a movable cursor.
type List struct {
	styles   *styles.Styles
	entries  []Entry
	selected int
	offset   int
	height   int
	empty    string
}

// New creates an empty list. The empty text is shown when there are
// no entries.
func New(s *styles.Styles, empty string) *List {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &List{
		styles: s,
		height: 10,
		empty:  empty,
	}
}

// SetEntries replaces the entries, keeping the cursor in range.
func (l *List) SetEntries(entries []Entry) {
	l.entries = entries
	if l.selected >= len(entries) {
		l.selected = len(entries) - 1
	}
	if l.selected < 0 {
		l.selected = 0
	}
	l.clampOffset()
}

// Entries returns the current entries.
func (l *List) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Selected returns the highlighted entry.
func (l *List) Selected() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[l.selected], true
}

// SelectedIndex returns the cursor position.
func (l *List) SelectedIndex() int {
	return l.selected
}

// Select moves the cursor to the entry with the given ID.
func (l *List) Select(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.selected = i
			l.clampOffset()
			return true
		}
	}
	return false
}

// MoveUp moves the cursor up one entry.
func (l *List) MoveUp() {
	if l.selected > 0 {
		l.selected--
		l.clampOffset()
	}
}

// MoveDown moves the cursor down one entry.
func (l *List) MoveDown() {
	if l.selected < len(l.entries)-1 {
		l.selected++
		l.clampOffset()
	}
}

// Update handles cursor keys.
func (l *List) Update(msg tea.Msg) (*List, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			l.MoveUp()
		case "down", "j":
			l.MoveDown()
		case "home", "g":
			l.selected = 0
			l.clampOffset()
		case "end", "G":
			if len(l.entries) > 0 {
				l.selected = len(l.entries) - 1
				l.clampOffset()
			}
		}
	}
	return l, nil
}

// SetHeight sets how many entries are visible at once.
func (l *List) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	l.height = height
	l.clampOffset()
}

func (l *List) clampOffset() {
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+l.height {
		l.offset = l.selected - l.height + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the visible entries.
func (l *List) View() string {
	if len(l.entries) == 0 {
		return l.styles.Muted.Render(l.empty)
	}

	var b strings.Builder
	end := l.offset + l.height
	if end > len(l.entries) {
		end = len(l.entries)
	}

	for i := l.offset; i < end; i++ {
		e := l.entries[i]
		title := fmt.Sprintf("%d. %s", i+1, e.Title)
		if e.Badge != "" {
			title += " " + e.Badge
		}
		if i == l.selected {
			b.WriteString(l.styles.Selected.Render("> " + title))
		} else {
			b.WriteString(l.styles.Normal.Render("  " + title))
		}
		b.WriteString("\n")
		if e.Subtitle != "" {
			b.WriteString(l.styles.Muted.Render("     " + e.Subtitle))
			b.WriteString("\n")
		}
	}

	if len(l.entries) > l.height {
		b.WriteString(l.styles.Muted.Render(fmt.Sprintf("  %d of %d", l.selected+1, len(l.entries))))
		b.WriteString("\n")
	}
	return b.String()
}
