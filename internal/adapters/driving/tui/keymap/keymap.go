// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Save adds the highlighted tile to the worksheet.
	Save key.Binding

	// Share shows a shareable link to the current position.
	Share key.Binding

	// Worksheet jumps to the worksheet.
	Worksheet key.Binding

	// EditNotes edits the notes of the selected item.
	EditNotes key.Binding

	// Delete removes the selected item.
	Delete key.Binding

	// ClearAll asks to remove every worksheet item.
	ClearAll key.Binding

	// Confirm accepts a pending confirmation.
	Confirm key.Binding

	// Export exports the worksheet in the default format.
	Export key.Binding

	// Preview shows the worksheet as rendered Markdown.
	Preview key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Share: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "share link"),
		),
		Worksheet: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "worksheet"),
		),
		EditNotes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notes"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Help}
}

// JourneyHelp returns keybindings for browsing tiles.
func (k *KeyMap) JourneyHelp() []key.Binding {
	return []key.Binding{k.Select, k.Save, k.Share, k.Worksheet, k.Back}
}

// WorksheetHelp returns keybindings for the worksheet view.
func (k *KeyMap) WorksheetHelp() []key.Binding {
	return []key.Binding{k.EditNotes, k.Delete, k.ClearAll, k.Export, k.Preview, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Save, k.Share, k.Worksheet},
		{k.EditNotes, k.Delete, k.ClearAll, k.Confirm},
		{k.Export, k.Preview},
		{k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
