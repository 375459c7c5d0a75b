package domain

// NavState is the navigator's position within the tile hierarchy.
type NavState int

const (
	// ViewingStageList shows the top-level stages of the active journey.
	ViewingStageList NavState = iota
	// ViewingSubTileList shows the sub-tiles of one selected stage.
	ViewingSubTileList
	// ViewingTileDetail shows a single resolved tile.
	ViewingTileDetail
)

// String returns the string representation of the state.
func (s NavState) String() string {
	switch s {
	case ViewingStageList:
		return "stage_list"
	case ViewingSubTileList:
		return "subtile_list"
	case ViewingTileDetail:
		return "tile_detail"
	default:
		return "unknown"
	}
}

// Deep-link query parameter names.
const (
	DeepLinkStageParam = "stage"
	DeepLinkTileParam  = "tile"
)

// DeepLink is a stage code with an optional sub-tile identifier.
type DeepLink struct {
	StageCode string
	TileID    string
}
