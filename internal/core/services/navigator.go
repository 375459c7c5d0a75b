package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// Ensure Navigator and TileService implement their interfaces.
var (
	_ driving.TileNavigator = (*Navigator)(nil)
	_ driving.TileService   = (*TileService)(nil)
)

// stageCodes maps the external stage codes used in shareable links to
// canonical stage tile identifiers.
var stageCodes = []struct {
	code    string
	stageID string
}{
	{"stage-1", "start-foundations"},
	{"stage-2", "start-launch"},
	{"stage-3", "start-growth"},
}

// StageIDForCode returns the stage tile identifier for a link code.
func StageIDForCode(code string) (string, bool) {
	for _, sc := range stageCodes {
		if sc.code == code {
			return sc.stageID, true
		}
	}
	return "", false
}

// StageCodeForID returns the link code of a stage tile.
func StageCodeForID(stageID string) (string, bool) {
	for _, sc := range stageCodes {
		if sc.stageID == stageID {
			return sc.code, true
		}
	}
	return "", false
}

// ResolveJourneyRoute maps a journey route to its journey type.
// Only the start journey has navigable tiles; any other route returns
// domain.ErrUnsupportedJourneyRoute and callers redirect to the home view.
// Routes may be given bare ("start") or as a path ("/journey/start").
func ResolveJourneyRoute(route string) (domain.JourneyType, error) {
	r := strings.Trim(strings.TrimSpace(route), "/")
	if i := strings.LastIndex(r, "/"); i >= 0 {
		r = r[i+1:]
	}
	if domain.JourneyType(strings.ToLower(r)) == domain.JourneyStart {
		return domain.JourneyStart, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedJourneyRoute, route)
}

// ParseDeepLink extracts the stage and tile parameters from a shared URL.
// A bare query string ("stage=stage-1&tile=x") is accepted too.
func ParseDeepLink(raw string) (domain.DeepLink, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.DeepLink{}, fmt.Errorf("%w: empty link", domain.ErrInvalidInput)
	}

	query := raw
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "/") || strings.Contains(raw, "?") {
		u, err := url.Parse(raw)
		if err != nil {
			return domain.DeepLink{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		query = u.RawQuery
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return domain.DeepLink{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	link := domain.DeepLink{
		StageCode: values.Get(domain.DeepLinkStageParam),
		TileID:    values.Get(domain.DeepLinkTileParam),
	}
	if link.StageCode == "" {
		return domain.DeepLink{}, fmt.Errorf("%w: missing %q parameter", domain.ErrInvalidInput, domain.DeepLinkStageParam)
	}
	return link, nil
}

// TileService opens navigators over a tile catalog.
type TileService struct {
	catalog driven.TileCatalog
}

// NewTileService creates a new tile service.
func NewTileService(catalog driven.TileCatalog) *TileService {
	return &TileService{catalog: catalog}
}

// Navigator starts a navigation session for a journey route.
func (s *TileService) Navigator(route string) (driving.TileNavigator, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	return NewNavigator(s.catalog, route)
}

// Tile looks a tile up in the flat registry.
func (s *TileService) Tile(id string) (*domain.Tile, error) {
	if s.catalog == nil {
		return nil, domain.ErrNotImplemented
	}
	t, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	c := t.Clone()
	return &c, nil
}

// Navigator tracks one browsing session through the two-level tile
// hierarchy of a journey. It is not safe for concurrent use.
type Navigator struct {
	catalog driven.TileCatalog
	journey domain.JourneyType

	state   domain.NavState
	stageID string

	// tile is the resolved tile while in detail view.
	tile *domain.Tile

	// listState is the list view that detail view returns to.
	listState domain.NavState
}

// NewNavigator starts a navigator on the stage list of the journey the
// route names.
func NewNavigator(catalog driven.TileCatalog, route string) (*Navigator, error) {
	journey, err := ResolveJourneyRoute(route)
	if err != nil {
		return nil, err
	}
	return &Navigator{
		catalog: catalog,
		journey: journey,
		state:   domain.ViewingStageList,
	}, nil
}

// Journey returns the journey this session is scoped to.
func (n *Navigator) Journey() domain.JourneyType {
	return n.journey
}

// State returns the current navigation state.
func (n *Navigator) State() domain.NavState {
	return n.state
}

// Stages returns the journey's stage tiles.
func (n *Navigator) Stages() []domain.Tile {
	stages := n.catalog.Stages(n.journey)
	out := make([]domain.Tile, len(stages))
	for i := range stages {
		out[i] = stages[i].Clone()
	}
	return out
}

// SubTiles returns the materialised sub-tiles of the current stage.
// Embedded sub-tiles come first, followed by any Children resolved
// through the registry.
func (n *Navigator) SubTiles() []domain.Tile {
	stage := n.stage(n.stageID)
	if stage == nil {
		return nil
	}

	out := make([]domain.Tile, 0, len(stage.SubTiles)+len(stage.Children))
	for i := range stage.SubTiles {
		out = append(out, n.materialize(&stage.SubTiles[i], stage))
	}
	for _, id := range stage.Children {
		if _, embedded := stage.FindSubTile(id); embedded {
			continue
		}
		t, err := n.catalog.Get(id)
		if err != nil {
			logger.Debug("navigator: child %s of %s not in registry", id, stage.ID)
			continue
		}
		out = append(out, n.materialize(t, stage))
	}
	return out
}

// CurrentStage returns the selected stage, or nil.
func (n *Navigator) CurrentStage() *domain.Tile {
	stage := n.stage(n.stageID)
	if stage == nil {
		return nil
	}
	c := stage.Clone()
	return &c
}

// CurrentTile returns the tile in detail view, or nil.
func (n *Navigator) CurrentTile() *domain.Tile {
	if n.state != domain.ViewingTileDetail || n.tile == nil {
		return nil
	}
	c := n.tile.Clone()
	return &c
}

// SelectStage moves from the stage list to a stage's sub-tiles.
func (n *Navigator) SelectStage(id string) bool {
	if n.state != domain.ViewingStageList || n.stage(id) == nil {
		return false
	}
	n.showStage(id)
	return true
}

// SelectSubTile moves from the sub-tile list to a sub-tile's detail.
func (n *Navigator) SelectSubTile(id string) bool {
	if n.state != domain.ViewingSubTileList {
		return false
	}
	sub, ok := n.subTile(id)
	if !ok {
		return false
	}
	n.showDetail(sub)
	return true
}

// Back leaves the detail view for the list it was entered from.
func (n *Navigator) Back() {
	if n.state != domain.ViewingTileDetail {
		return
	}
	n.state = n.listState
	n.tile = nil
	if n.state == domain.ViewingStageList {
		n.stageID = ""
	}
}

// BackToStages returns to the stage list and clears the current stage.
func (n *Navigator) BackToStages() {
	n.state = domain.ViewingStageList
	n.stageID = ""
	n.tile = nil
}

// NavigateTo resolves any tile identifier. Resolution order: a stage of
// this journey, a sub-tile of the current stage, then the flat registry.
// Unknown identifiers leave the navigator unchanged.
func (n *Navigator) NavigateTo(id string) bool {
	if n.stage(id) != nil {
		n.showStage(id)
		return true
	}

	if sub, ok := n.subTile(id); ok {
		n.showDetail(sub)
		return true
	}

	t, err := n.catalog.Get(id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("navigator: looking up %s: %v", id, err)
		}
		logger.Debug("navigator: no tile %q, staying on %s", id, n.state)
		return false
	}
	c := t.Clone()
	if c.Tags == nil {
		c.Tags = []string{}
	}
	n.showDetail(c)
	return true
}

// ResolveDeepLink jumps straight to the stage, and optionally the
// sub-tile, that a shared link names. An unknown stage code leaves the
// navigator unchanged; an unknown tile falls back to the stage's list.
func (n *Navigator) ResolveDeepLink(link domain.DeepLink) bool {
	stageID, ok := StageIDForCode(link.StageCode)
	if !ok || n.stage(stageID) == nil {
		logger.Debug("navigator: ignoring deep link with stage code %q", link.StageCode)
		return false
	}

	n.showStage(stageID)
	if link.TileID == "" {
		return true
	}
	if sub, ok := n.subTile(link.TileID); ok {
		n.showDetail(sub)
	}
	return true
}

// ShareLink builds a link to the current position. Without a selected
// stage the base URL is returned as is.
func (n *Navigator) ShareLink(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: share base url: %w", domain.ErrInvalidInput, err)
	}

	code, ok := StageCodeForID(n.stageID)
	if !ok {
		return baseURL, nil
	}

	q := u.Query()
	q.Set(domain.DeepLinkStageParam, code)
	q.Del(domain.DeepLinkTileParam)
	if n.state == domain.ViewingTileDetail && n.tile != nil {
		if _, ok := n.subTile(n.tile.ID); ok {
			q.Set(domain.DeepLinkTileParam, n.tile.ID)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (n *Navigator) showStage(id string) {
	n.state = domain.ViewingSubTileList
	n.stageID = id
	n.tile = nil
}

func (n *Navigator) showDetail(t domain.Tile) {
	if n.state != domain.ViewingTileDetail {
		n.listState = n.state
	}
	n.state = domain.ViewingTileDetail
	n.tile = &t
}

// stage finds a stage of the navigator's journey.
func (n *Navigator) stage(id string) *domain.Tile {
	if id == "" {
		return nil
	}
	stages := n.catalog.Stages(n.journey)
	for i := range stages {
		if stages[i].ID == id {
			return &stages[i]
		}
	}
	return nil
}

// subTile resolves id under the current stage: embedded sub-tiles first,
// then the stage's Children through the registry.
func (n *Navigator) subTile(id string) (domain.Tile, bool) {
	stage := n.stage(n.stageID)
	if stage == nil {
		return domain.Tile{}, false
	}
	if sub, ok := stage.FindSubTile(id); ok {
		return n.materialize(sub, stage), true
	}
	if stage.HasChild(id) {
		if t, err := n.catalog.Get(id); err == nil {
			return n.materialize(t, stage), true
		}
	}
	return domain.Tile{}, false
}

// materialize prepares a sub-tile for display under its stage.
func (n *Navigator) materialize(sub, stage *domain.Tile) domain.Tile {
	t := sub.Clone()
	t.Level = domain.LevelSubTile
	t.JourneyType = n.journey
	t.IsMainStage = false
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.ParentID == "" {
		t.ParentID = stage.ID
	}
	return t
}
