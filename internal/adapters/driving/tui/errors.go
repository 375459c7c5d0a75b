package tui

import "errors"

// ErrMissingWorksheetService is returned when the worksheet service is not provided.
var ErrMissingWorksheetService = errors.New("tui: worksheet service is required")

// ErrMissingTileService is returned when the tile service is not provided.
var ErrMissingTileService = errors.New("tui: tile service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
