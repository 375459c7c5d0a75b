package driven

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// TileCatalog is the static, read-only registry of tiles loaded at startup.
type TileCatalog interface {
	// Stages returns the top-level stage tiles of a journey, in display order.
	Stages(journey domain.JourneyType) []domain.Tile

	// Get looks a tile up in the flat registry.
	// Returns domain.ErrNotFound for unknown identifiers.
	Get(id string) (*domain.Tile, error)
}
