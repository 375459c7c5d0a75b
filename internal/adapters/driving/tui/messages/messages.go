// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the home menu.
	ViewMenu ViewType = iota
	// ViewJourney browses the tiles of a journey.
	ViewJourney
	// ViewWorksheet lists saved worksheet items.
	ViewWorksheet
	// ViewSettings is the settings view.
	ViewSettings
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewJourney:
		return "journey"
	case ViewWorksheet:
		return "worksheet"
	case ViewSettings:
		return "settings"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// JourneyRequested asks the app to open a journey route.
type JourneyRequested struct {
	Route string
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}

// WorksheetLoaded carries the current worksheet items.
type WorksheetLoaded struct {
	Items []domain.WorksheetItem
}

// ItemSaved is sent after a tile or guide was added to the worksheet.
type ItemSaved struct {
	Item domain.WorksheetItem
	Err  error
}

// ItemRemoved is sent after a remove attempt.
type ItemRemoved struct {
	ID      string
	Removed bool
}

// NotesUpdated is sent after a notes edit.
type NotesUpdated struct {
	ID      string
	Updated bool
}

// WorksheetCleared is sent after the worksheet was cleared.
type WorksheetCleared struct {
	Count int
}

// ExportCompleted is sent when an export finished.
type ExportCompleted struct {
	Path string
	Err  error
}

// PreviewRendered carries a Markdown rendition of the worksheet.
type PreviewRendered struct {
	Markdown string
	Err      error
}

// ShareLinkReady carries the deep link to the current position.
type ShareLinkReady struct {
	URL string
	Err error
}

// SettingsLoaded is sent when settings are loaded.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved is sent when settings are saved.
type SettingsSaved struct {
	Err error
}

// NotificationExpired dismisses the status notice with the given sequence.
type NotificationExpired struct {
	Seq int
}
