// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/messages"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

// Field identifies a settings row.
type Field int

const (
	FieldStorageBackend Field = iota
	FieldExportFormat
	FieldExportDirectory
	FieldShareBaseURL
	fieldCount
)

var (
	backends = []domain.StorageBackend{domain.StorageSQLite, domain.StorageFile, domain.StorageMemory}
	formats  = []domain.ExportFormat{domain.ExportPDF, domain.ExportMarkdown}
)

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error
	notice   string

	selected Field
	editing  bool
	input    textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60
	ti.Cursor.SetMode(cursor.CursorStatic)

	return &View{
		styles:          s,
		settingsService: settingsService,
		input:           ti,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: fmt.Errorf("settings service not available")}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleKeys(msg)
	}

	return v, nil
}

func (v *View) handleKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < fieldCount-1 {
			v.selected++
		}
	case "enter", " ":
		return v, v.activate()
	}
	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		v.editing = false
		v.input.Blur()
		value := v.input.Value()
		field := v.selected
		return v, v.save(func(s driving.SettingsService) error {
			if field == FieldExportDirectory {
				return s.SetExportDirectory(value)
			}
			return s.SetShareBaseURL(value)
		})
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// activate cycles choice fields and opens text fields for editing.
func (v *View) activate() tea.Cmd {
	if v.settings == nil {
		return nil
	}
	v.notice = ""

	switch v.selected {
	case FieldStorageBackend:
		next := backends[(indexOf(backends, v.settings.Storage.Backend)+1)%len(backends)]
		v.notice = "Storage changes take effect the next time you start SquareOne."
		return v.save(func(s driving.SettingsService) error { return s.SetStorageBackend(next) })
	case FieldExportFormat:
		next := formats[(indexOf(formats, v.settings.Export.Format)+1)%len(formats)]
		return v.save(func(s driving.SettingsService) error { return s.SetExportFormat(next) })
	case FieldExportDirectory:
		v.startEdit(v.settings.Export.Directory, "Current directory")
	case FieldShareBaseURL:
		v.startEdit(v.settings.Share.BaseURL, "https://")
	}
	return nil
}

func (v *View) startEdit(value, placeholder string) {
	v.editing = true
	v.input.Placeholder = placeholder
	v.input.SetValue(value)
	v.input.CursorEnd()
	v.input.Focus()
}

func (v *View) save(fn func(driving.SettingsService) error) tea.Cmd {
	if v.settingsService == nil {
		return nil
	}
	svc := v.settingsService
	return func() tea.Msg {
		return messages.SettingsSaved{Err: fn(svc)}
	}
}

func indexOf[T comparable](values []T, v T) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return -1
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	directory := v.settings.Export.Directory
	if directory == "" {
		directory = "Current directory"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Storage", v.settings.Storage.Backend.Description()},
		{"Export format", strings.ToUpper(v.settings.Export.Format.String())},
		{"Export directory", directory},
		{"Share link base", v.settings.Share.BaseURL},
	}

	for i, row := range rows {
		line := fmt.Sprintf("%s: %s", row.label, row.value)
		if Field(i) == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(v.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.styles.InputField.Render(v.input.View()))
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(v.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if v.editing {
		b.WriteString(v.styles.Help.Render("[enter] save  [esc] cancel"))
	} else {
		b.WriteString(v.styles.Help.Render("[j/k] navigate  [enter] change  [esc] back"))
	}
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset returns the view to its initial state.
func (v *View) Reset() {
	v.selected = FieldStorageBackend
	v.editing = false
	v.input.Blur()
	v.err = nil
	v.notice = ""
}

// Settings returns the loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Editing reports whether a text field is being edited.
func (v *View) Editing() bool {
	return v.editing
}
