// Package catalog provides the static tile registry.
//
// Tiles are authored in YAML and embedded into the binary. The catalog is
// read-only once loaded.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.TileCatalog = (*Catalog)(nil)

//go:embed tiles.yaml
var defaultTiles []byte

// Catalog is an immutable tile registry.
type Catalog struct {
	stages map[domain.JourneyType][]domain.Tile
	byID   map[string]*domain.Tile
}

// Default loads the embedded tile content.
func Default() (*Catalog, error) {
	return Parse(defaultTiles)
}

// New builds a catalog from stage tiles and standalone registry tiles.
// Stages are registered under their journey in the given order. Embedded
// sub-tiles are reachable through their stage, not the flat registry.
// Registry tiles without a level are treated as sub-tiles.
func New(stages, tiles []domain.Tile) (*Catalog, error) {
	c := &Catalog{
		stages: make(map[domain.JourneyType][]domain.Tile),
		byID:   make(map[string]*domain.Tile, len(stages)+len(tiles)),
	}

	for i := range stages {
		stage := stages[i].Clone()
		if stage.Level == 0 {
			stage.Level = domain.LevelStage
		}
		if stage.Level != domain.LevelStage {
			return nil, fmt.Errorf("%w: stage %q has level %d", domain.ErrInvalidInput, stage.ID, stage.Level)
		}
		stage.IsMainStage = true
		if err := c.register(stage); err != nil {
			return nil, err
		}
		c.stages[stage.JourneyType] = append(c.stages[stage.JourneyType], stage)
	}

	for i := range tiles {
		t := tiles[i].Clone()
		if t.Level == 0 {
			t.Level = domain.LevelSubTile
		}
		if err := c.register(t); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Catalog) register(t domain.Tile) error {
	if t.ID == "" {
		return fmt.Errorf("%w: tile %q has no id", domain.ErrInvalidInput, t.Title)
	}
	if _, dup := c.byID[t.ID]; dup {
		return fmt.Errorf("%w: duplicate tile id %q", domain.ErrInvalidInput, t.ID)
	}
	c.byID[t.ID] = &t
	return nil
}

// Stages returns the stage tiles of a journey, in authored order.
func (c *Catalog) Stages(journey domain.JourneyType) []domain.Tile {
	stages := c.stages[journey]
	out := make([]domain.Tile, len(stages))
	for i := range stages {
		out[i] = stages[i].Clone()
	}
	return out
}

// Get looks a tile up in the flat registry.
func (c *Catalog) Get(id string) (*domain.Tile, error) {
	t, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t.Clone()
	return &clone, nil
}

// Len returns the number of registry tiles.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// Parse decodes a YAML tile document.
func Parse(data []byte) (*Catalog, error) {
	var doc fileYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing tiles: %w", err)
	}

	stages, err := toTiles(doc.Stages)
	if err != nil {
		return nil, err
	}
	tiles, err := toTiles(doc.Tiles)
	if err != nil {
		return nil, err
	}
	return New(stages, tiles)
}
