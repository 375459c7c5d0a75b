// Package menu provides the home menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/messages"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui/styles"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// Item represents a single menu option.
type Item struct {
	Label       string
	Description string

	// Route opens a journey when set.
	Route string

	View messages.ViewType
	Quit bool // If true, selecting this item quits the app
}

// View represents the home menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles: s,
		items: []Item{
			{Label: "Start Journey", Description: "Plan, launch and grow your business", Route: domain.JourneyStart.String()},
			{Label: "Explore Journey", Description: "Test a business idea", Route: domain.JourneyExplore.String()},
			{Label: "Integrate Journey", Description: "Connect the tools you already use", Route: domain.JourneyIntegrate.String()},
			{Label: "My Worksheet", Description: "Your saved tiles and notes", View: messages.ViewWorksheet},
			{Label: "Settings", View: messages.ViewSettings},
			{Label: "Help", View: messages.ViewHelp},
			{Label: "Quit", Quit: true},
		},
		width:  80,
		height: 24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			return v, v.activate(v.items[v.selected])

		case "w":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewWorksheet} }

		case "?":
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) activate(item Item) tea.Cmd {
	switch {
	case item.Quit:
		return tea.Quit
	case item.Route != "":
		route := item.Route
		return func() tea.Msg { return messages.JourneyRequested{Route: route} }
	default:
		view := item.View
		return func() tea.Msg { return messages.ViewChanged{View: view} }
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("SquareOne Journey"))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Muted.Render("Your guide from idea to growing business"))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render("> " + item.Label))
		} else {
			b.WriteString(v.labelStyle(item).Render("  " + item.Label))
		}
		if item.Description != "" {
			b.WriteString("  ")
			b.WriteString(v.styles.Muted.Render(item.Description))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [w] Worksheet  [q] Quit"))

	return b.String()
}

// labelStyle tints journey entries with their accent.
func (v *View) labelStyle(item Item) lipgloss.Style {
	if item.Route == "" {
		return v.styles.Normal
	}
	return v.styles.Normal.Foreground(v.styles.Palette().Accent(domain.JourneyType(item.Route)))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items.
func (v *View) Items() []Item {
	return v.items
}
