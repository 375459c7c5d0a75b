// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
)

// notesCharLimit bounds a single notes edit.
const notesCharLimit = 2000

// NotesInput edits the notes attached to a worksheet item.
type NotesInput struct {
	styles *styles.Styles
	input  textinput.Model
	target string
}

// NewNotesInput creates a notes input component.
func NewNotesInput(s *styles.Styles) *NotesInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Add your notes..."
	ti.CharLimit = notesCharLimit
	ti.Width = 60
	ti.Prompt = "Notes: "
	ti.Cursor.SetMode(cursor.CursorStatic)

	return &NotesInput{
		styles: s,
		input:  ti,
	}
}

// Start focuses the input on the item with the given ID and current notes.
func (n *NotesInput) Start(itemID, notes string) tea.Cmd {
	n.target = itemID
	n.input.SetValue(notes)
	n.input.CursorEnd()
	return n.input.Focus()
}

// Stop blurs the input and forgets the target item.
func (n *NotesInput) Stop() {
	n.input.Blur()
	n.target = ""
}

// Target returns the ID of the item being edited.
func (n *NotesInput) Target() string {
	return n.target
}

// Active reports whether an edit is in progress.
func (n *NotesInput) Active() bool {
	return n.target != ""
}

// Value returns the current text.
func (n *NotesInput) Value() string {
	return n.input.Value()
}

// Update handles input messages.
func (n *NotesInput) Update(msg tea.Msg) (*NotesInput, tea.Cmd) {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// SetWidth sets the input width.
func (n *NotesInput) SetWidth(width int) {
	if width > 10 {
		n.input.Width = width - 10
	}
}

// View renders the input.
func (n *NotesInput) View() string {
	return n.styles.InputField.Render(n.input.View())
}
