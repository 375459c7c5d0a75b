// Package worksheet provides the worksheet view for the TUI.
package worksheet

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/input"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/list"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/components/pager"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/keymap"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/messages"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

const notesPreviewLen = 40

// View lists saved worksheet items and edits them.
type View struct {
	ctx       context.Context
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	worksheet driving.WorksheetService
	export    driving.ExportService
	settings  driving.SettingsService

	items []domain.WorksheetItem
	list  *list.List
	notes *input.NotesInput
	pager *pager.Pager

	confirming bool
	previewing bool
	err        error

	width  int
	height int
	ready  bool
}

// NewView creates a worksheet view. The export and settings services may
// be nil, which disables export and preview.
func NewView(
	s *styles.Styles,
	worksheet driving.WorksheetService,
	export driving.ExportService,
	settings driving.SettingsService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		ctx:       context.Background(),
		styles:    s,
		keymap:    keymap.DefaultKeyMap(),
		worksheet: worksheet,
		export:    export,
		settings:  settings,
		list:      list.New(s, "Your worksheet is empty. Save tiles from a journey with s."),
		notes:     input.NewNotesInput(s),
		pager:     pager.New(),
		width:     80,
		height:    24,
	}
}

// SetContext sets the context used for service calls.
func (v *View) SetContext(ctx context.Context) {
	v.ctx = ctx
}

// Init loads the worksheet.
func (v *View) Init() tea.Cmd {
	return v.load()
}

// Reset leaves any edit, confirmation or preview in progress.
func (v *View) Reset() {
	v.notes.Stop()
	v.confirming = false
	v.previewing = false
	v.err = nil
}

func (v *View) load() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		return messages.WorksheetLoaded{Items: v.worksheet.Items(ctx)}
	}
}

// Update handles messages for the worksheet view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.WorksheetLoaded:
		v.setItems(msg.Items)
		return v, nil

	case messages.ItemRemoved, messages.NotesUpdated, messages.WorksheetCleared:
		return v, v.load()

	case messages.PreviewRendered:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.pager.SetMarkdown(msg.Markdown)
		v.previewing = true
		return v, nil

	case messages.ExportCompleted:
		v.err = msg.Err
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()

	if v.notes.Active() {
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.commitNotes()
		case tea.KeyEsc:
			v.notes.Stop()
			return v, nil
		default:
			var cmd tea.Cmd
			v.notes, cmd = v.notes.Update(msg)
			return v, cmd
		}
	}

	if v.previewing {
		if keymap.Matches(key, v.keymap.Back) {
			v.previewing = false
			return v, nil
		}
		var cmd tea.Cmd
		v.pager, cmd = v.pager.Update(msg)
		return v, cmd
	}

	if v.confirming {
		v.confirming = false
		if keymap.Matches(key, v.keymap.Confirm) {
			return v, v.clearAll()
		}
		return v, nil
	}

	switch {
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
	case keymap.Matches(key, v.keymap.Select):
		if item, ok := v.selected(); ok {
			v.pager.SetMarkdown(ItemMarkdown(&item))
			v.previewing = true
		}
		return v, nil
	case keymap.Matches(key, v.keymap.EditNotes):
		if item, ok := v.selected(); ok {
			return v, v.notes.Start(item.ID, item.Notes)
		}
		return v, nil
	case keymap.Matches(key, v.keymap.Delete):
		return v, v.remove()
	case keymap.Matches(key, v.keymap.ClearAll):
		v.confirming = len(v.items) > 0
		return v, nil
	case keymap.Matches(key, v.keymap.Export):
		return v, v.exportWorksheet()
	case keymap.Matches(key, v.keymap.Preview):
		return v, v.preview()
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *View) selected() (domain.WorksheetItem, bool) {
	entry, ok := v.list.Selected()
	if !ok {
		return domain.WorksheetItem{}, false
	}
	for _, item := range v.items {
		if item.ID == entry.ID {
			return item, true
		}
	}
	return domain.WorksheetItem{}, false
}

func (v *View) commitNotes() tea.Cmd {
	id, notes := v.notes.Target(), v.notes.Value()
	v.notes.Stop()
	ctx := v.ctx
	return func() tea.Msg {
		return messages.NotesUpdated{ID: id, Updated: v.worksheet.UpdateNotes(ctx, id, notes)}
	}
}

func (v *View) remove() tea.Cmd {
	item, ok := v.selected()
	if !ok {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		return messages.ItemRemoved{ID: item.ID, Removed: v.worksheet.RemoveItem(ctx, item.ID)}
	}
}

func (v *View) clearAll() tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		return messages.WorksheetCleared{Count: v.worksheet.ClearAll(ctx)}
	}
}

func (v *View) exportWorksheet() tea.Cmd {
	if v.export == nil {
		return nil
	}
	format := domain.DefaultAppSettings().Export.Format
	if v.settings != nil {
		if s, err := v.settings.Get(); err == nil {
			format = s.Export.Format
		}
	}
	ctx := v.ctx
	return func() tea.Msg {
		path, err := v.export.ExportWorksheet(ctx, format)
		return messages.ExportCompleted{Path: path, Err: err}
	}
}

func (v *View) preview() tea.Cmd {
	if v.export == nil {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		data, err := v.export.Render(v.export.WorksheetDocument(ctx), domain.ExportMarkdown)
		return messages.PreviewRendered{Markdown: string(data), Err: err}
	}
}

func (v *View) setItems(items []domain.WorksheetItem) {
	v.items = items
	entries := make([]list.Entry, len(items))
	for i := range items {
		entries[i] = list.Entry{
			ID:       items[i].ID,
			Title:    items[i].Title,
			Subtitle: subtitle(&items[i]),
		}
	}
	v.list.SetEntries(entries)
}

func subtitle(item *domain.WorksheetItem) string {
	parts := []string{item.Type.String()}
	if item.JourneyType != "" {
		parts = append(parts, item.JourneyType.DisplayName()+" Journey")
	}
	if item.HasNotes() {
		notes := strings.Join(strings.Fields(item.Notes), " ")
		if r := []rune(notes); len(r) > notesPreviewLen {
			notes = string(r[:notesPreviewLen]) + "..."
		}
		parts = append(parts, "Notes: "+notes)
	}
	return strings.Join(parts, " · ")
}

// Items returns the items on display.
func (v *View) Items() []domain.WorksheetItem {
	return v.items
}

// Editing reports whether a notes edit is in progress.
func (v *View) Editing() bool {
	return v.notes.Active()
}

// Confirming reports whether clear all awaits confirmation.
func (v *View) Confirming() bool {
	return v.confirming
}

// Previewing reports whether the pager is shown.
func (v *View) Previewing() bool {
	return v.previewing
}

// View renders the worksheet view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("My Worksheet"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(v.summary()))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if v.previewing {
		b.WriteString(v.pager.View())
		return b.String()
	}

	b.WriteString(v.list.View())

	switch {
	case v.notes.Active():
		b.WriteString("\n")
		b.WriteString(v.notes.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] save notes  [esc] cancel"))
	case v.confirming:
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf(
			"Remove all %d items from your worksheet? Press y to confirm, any other key to cancel.", len(v.items))))
	}
	return b.String()
}

func (v *View) summary() string {
	counts := domain.CountItemsByJourney(v.items)
	parts := []string{fmt.Sprintf("%d items", len(v.items))}
	for _, jt := range domain.JourneyTypes() {
		if n := counts[jt]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", jt.DisplayName(), n))
		}
	}
	return strings.Join(parts, "  ")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.list.SetHeight((height - 8) / 2)
	v.notes.SetWidth(width)
	v.pager.SetSize(width, height-5)
}

// ItemMarkdown renders a worksheet item as Markdown.
func ItemMarkdown(item *domain.WorksheetItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Title)
	if item.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", item.Description)
	}
	if item.HasNotes() {
		b.WriteString("## Your Notes\n\n")
		for _, line := range strings.Split(strings.TrimSpace(item.Notes), "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
	}
	if len(item.Resources) > 0 {
		b.WriteString("## Resources\n\n")
		for _, r := range item.Resources {
			fmt.Fprintf(&b, "- [%s](%s)\n", r.Name, r.URL)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "_Saved on %s_", item.CreatedAt.Format("January 2, 2006"))
	return b.String()
}
