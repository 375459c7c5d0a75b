package mcp

import (
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Worksheet manages saved items.
	Worksheet driving.WorksheetService

	// Tiles browses the journey content.
	Tiles driving.TileService

	// Journey generates journey results. Optional.
	Journey driving.JourneyService

	// Export writes documents. Optional.
	Export driving.ExportService

	// Settings supplies the default export format. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Worksheet == nil {
		return ErrMissingWorksheetService
	}
	if p.Tiles == nil {
		return ErrMissingTileService
	}
	return nil
}
