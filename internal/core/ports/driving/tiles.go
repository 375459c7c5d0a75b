package driving

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// TileService opens navigators over the tile catalog.
type TileService interface {
	// Navigator starts a navigation session for a journey route.
	// Returns domain.ErrUnsupportedJourneyRoute for any route other than
	// the supported journey; callers redirect to the application root.
	Navigator(route string) (TileNavigator, error)

	// Tile looks a tile up in the flat registry.
	Tile(id string) (*domain.Tile, error)
}

// TileNavigator resolves "show me tile X" requests for one browsing session.
// Unresolvable references are no-ops reported by a false return.
type TileNavigator interface {
	// Journey returns the journey this session is scoped to.
	Journey() domain.JourneyType

	// State returns the current navigation state.
	State() domain.NavState

	// Stages returns the journey's stage tiles.
	Stages() []domain.Tile

	// SubTiles returns the materialised sub-tiles of the current stage.
	SubTiles() []domain.Tile

	// CurrentStage returns the selected stage, or nil.
	CurrentStage() *domain.Tile

	// CurrentTile returns the tile in detail view, or nil.
	CurrentTile() *domain.Tile

	// SelectStage moves from the stage list to a stage's sub-tiles.
	SelectStage(id string) bool

	// SelectSubTile moves from the sub-tile list to a sub-tile's detail.
	SelectSubTile(id string) bool

	// Back leaves the detail view for the list it was entered from.
	Back()

	// BackToStages leaves the sub-tile list for the stage list.
	BackToStages()

	// NavigateTo resolves any tile identifier.
	NavigateTo(id string) bool

	// ResolveDeepLink jumps straight to the position a shared link names.
	ResolveDeepLink(link domain.DeepLink) bool

	// ShareLink builds a deep link to the current position.
	ShareLink(baseURL string) (string, error)
}
