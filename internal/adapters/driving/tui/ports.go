// Package tui provides an interactive terminal user interface for
// SquareOne Journey. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

// NotificationSource hands service notifications to the TUI instead of
// letting them reach the terminal directly.
type NotificationSource interface {
	// Capture starts holding notifications back for Drain.
	Capture()

	// Drain returns and forgets the held notifications.
	Drain() []domain.Notification
}

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Worksheet manages saved items.
	Worksheet driving.WorksheetService

	// Tiles opens journey navigators.
	Tiles driving.TileService

	// Export renders and saves documents. Optional.
	Export driving.ExportService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService

	// Notifications feeds the status bar. Optional.
	Notifications NotificationSource
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Worksheet == nil {
		return ErrMissingWorksheetService
	}
	if p.Tiles == nil {
		return ErrMissingTileService
	}
	return nil
}
