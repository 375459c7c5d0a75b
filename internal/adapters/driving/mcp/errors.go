// Package mcp provides an MCP (Model Context Protocol) server adapter for SquareOne.
// It lets AI assistants browse journey tiles and read or update the worksheet.
package mcp

import "errors"

var (
	// ErrMissingWorksheetService is returned when the worksheet service is not provided.
	ErrMissingWorksheetService = errors.New("mcp: worksheet service is required")

	// ErrMissingTileService is returned when the tile service is not provided.
	ErrMissingTileService = errors.New("mcp: tile service is required")
)
