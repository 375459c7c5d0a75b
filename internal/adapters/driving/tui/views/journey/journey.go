// Package journey provides the tile browsing view for the TUI.
package journey

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/list"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/pager"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/keymap"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/messages"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

const savedBadge = "[saved]"

// View browses the stages and tiles of one journey.
type View struct {
	ctx       context.Context
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	tiles     driving.TileService
	worksheet driving.WorksheetService
	settings  driving.SettingsService

	nav   driving.TileNavigator
	list  *list.List
	pager *pager.Pager
	saved map[string]bool
	shown string // tile ID in the pager

	width  int
	height int
	ready  bool
}

// NewView creates a journey view. The settings service may be nil.
func NewView(
	s *styles.Styles,
	tiles driving.TileService,
	worksheet driving.WorksheetService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:       context.Background(),
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		tiles:     tiles,
		worksheet: worksheet,
		settings:  settings,
		list:      list.New(s, "Nothing to show here yet."),
		pager:     pager.New(),
		saved:     map[string]bool{},
		width:     80,
		height:    24,
	}
}

// SetContext sets the context used for worksheet calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Open starts browsing the journey at the given route, replacing any
// session in progress. Unsupported routes leave the view unchanged.
func (v *View) Open(route string) error {
	nav, err := v.tiles.Navigator(route)
	if err != nil {
		return err
	}
	v.nav = nav
	v.Refresh()
	return nil
}

// OpenLink jumps to the position a shared link names.
func (v *View) OpenLink(link domain.DeepLink) bool {
	if v.nav == nil {
		return false
	}
	ok := v.nav.ResolveDeepLink(link)
	v.Refresh()
	return ok
}

// Navigator returns the active navigation session, or nil.
func (v *View) Navigator() driving.TileNavigator {
	return v.nav
}

// Update handles messages for the journey view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ItemSaved:
		if msg.Err == nil {
			v.Refresh()
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.nav == nil {
		if keymap.Matches(msg.String(), v.keymap.Back) {
			return v, changeView(messages.ViewMenu)
		}
		return v, nil
	}

	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, v.back()
	case keymap.Matches(key, v.keymap.Select):
		v.open()
		return v, nil
	case keymap.Matches(key, v.keymap.Save):
		return v, v.save()
	case keymap.Matches(key, v.keymap.Share):
		return v, v.share()
	case keymap.Matches(key, v.keymap.Worksheet):
		return v, changeView(messages.ViewWorksheet)
	}

	var cmd tea.Cmd
	if v.nav.State() == domain.ViewingTileDetail {
		v.pager, cmd = v.pager.Update(msg)
	} else {
		v.list, cmd = v.list.Update(msg)
	}
	return v, cmd
}

func (v *View) back() tea.Cmd {
	switch v.nav.State() {
	case domain.ViewingTileDetail:
		from := v.nav.CurrentTile()
		v.nav.Back()
		v.Refresh()
		if from != nil {
			v.list.Select(from.ID)
		}
	case domain.ViewingSubTileList:
		from := v.nav.CurrentStage()
		v.nav.BackToStages()
		v.Refresh()
		if from != nil {
			v.list.Select(from.ID)
		}
	default:
		return changeView(messages.ViewMenu)
	}
	return nil
}

func (v *View) open() {
	entry, ok := v.list.Selected()
	if !ok {
		return
	}
	switch v.nav.State() {
	case domain.ViewingStageList:
		v.nav.SelectStage(entry.ID)
	case domain.ViewingSubTileList:
		v.nav.SelectSubTile(entry.ID)
	case domain.ViewingTileDetail:
		return
	}
	v.Refresh()
}

// target returns the tile that save acts on: the tile in detail view, or
// the highlighted list entry.
func (v *View) target() (domain.Tile, bool) {
	if t := v.nav.CurrentTile(); t != nil {
		return *t, true
	}
	entry, ok := v.list.Selected()
	if !ok {
		return domain.Tile{}, false
	}
	var candidates []domain.Tile
	if v.nav.State() == domain.ViewingStageList {
		candidates = v.nav.Stages()
	} else {
		candidates = v.nav.SubTiles()
	}
	for _, t := range candidates {
		if t.ID == entry.ID {
			return t, true
		}
	}
	return domain.Tile{}, false
}

func (v *View) save() tea.Cmd {
	tile, ok := v.target()
	if !ok || v.worksheet == nil {
		return nil
	}
	ctx := v.ctx
	draft := domain.DraftFromTile(&tile)
	return func() tea.Msg {
		item, err := v.worksheet.AddItem(ctx, draft)
		return messages.ItemSaved{Item: item, Err: err}
	}
}

func (v *View) share() tea.Cmd {
	base := domain.DefaultAppSettings().Share.BaseURL
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil && s.Share.BaseURL != "" {
			base = s.Share.BaseURL
		}
	}
	nav := v.nav
	return func() tea.Msg {
		link, err := nav.ShareLink(base)
		return messages.ShareLinkReady{URL: link, Err: err}
	}
}

// Refresh rebuilds the list or detail content from the navigator.
func (v *View) Refresh() {
	if v.nav == nil {
		return
	}
	v.saved = map[string]bool{}
	if v.worksheet != nil {
		for _, item := range v.worksheet.Items(v.ctx) {
			v.saved[item.Title] = true
		}
	}

	switch v.nav.State() {
	case domain.ViewingStageList:
		v.shown = ""
		v.list.SetEntries(v.entries(v.nav.Stages()))
	case domain.ViewingSubTileList:
		v.shown = ""
		v.list.SetEntries(v.entries(v.nav.SubTiles()))
	case domain.ViewingTileDetail:
		if t := v.nav.CurrentTile(); t != nil && t.ID != v.shown {
			v.pager.SetMarkdown(TileMarkdown(t))
			v.shown = t.ID
		}
	}
}

func (v *View) entries(tiles []domain.Tile) []list.Entry {
	out := make([]list.Entry, len(tiles))
	for i, t := range tiles {
		out[i] = list.Entry{ID: t.ID, Title: t.Title, Subtitle: t.Description}
		if v.saved[t.Title] {
			out[i].Badge = v.styles.Badge.Render(savedBadge)
		}
	}
	return out
}

// View renders the journey view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.nav == nil {
		return v.styles.Muted.Render("No journey selected. Press esc to return to the menu.")
	}

	var b strings.Builder
	b.WriteString(v.styles.JourneyTitle(v.nav.Journey()).Render(v.nav.Journey().DisplayName() + " Journey"))
	b.WriteString("\n")
	b.WriteString(v.styles.Breadcrumb.Render(v.breadcrumb()))
	b.WriteString("\n\n")

	if v.nav.State() == domain.ViewingTileDetail {
		b.WriteString(v.pager.View())
	} else {
		b.WriteString(v.list.View())
	}
	return b.String()
}

func (v *View) breadcrumb() string {
	parts := []string{"Stages"}
	if stage := v.nav.CurrentStage(); stage != nil {
		parts = append(parts, stage.Title)
	}
	if t := v.nav.CurrentTile(); t != nil {
		if stage := v.nav.CurrentStage(); stage == nil || stage.ID != t.ID {
			parts = append(parts, t.Title)
		}
	}
	return strings.Join(parts, " › ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetHeight((height - 6) / 2)
	v.pager.SetSize(width, height-5)
}

// TileMarkdown renders a tile's content as Markdown.
func TileMarkdown(t *domain.Tile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", t.Title)
	if t.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", t.Description)
	}

	switch c := t.Content.(type) {
	case domain.TextContent:
		if body := strings.TrimSpace(c.Body); body != "" {
			fmt.Fprintf(&b, "%s\n\n", body)
		}
	case domain.VideoContent:
		fmt.Fprintf(&b, "**Video:** [%s](%s)\n\n", c.Title, c.URL)
	case domain.InteractiveContent:
		fmt.Fprintf(&b, "**Interactive exercise:** %s\n\n", c.Title)
	}

	if len(t.Resources) > 0 {
		b.WriteString("## Resources\n\n")
		for _, r := range t.Resources {
			fmt.Fprintf(&b, "- [%s](%s)", r.Name, r.URL)
			if r.Description != "" {
				fmt.Fprintf(&b, ": %s", r.Description)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}
