// Package styles provides the SquareOne palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// Palette holds the brand colours plus one accent per journey.
type Palette struct {
	Brand   lipgloss.Color
	Text    lipgloss.Color
	Dim     lipgloss.Color
	Frame   lipgloss.Color
	Bar     lipgloss.Color
	Good    lipgloss.Color
	Caution lipgloss.Color
	Bad     lipgloss.Color

	// Journey accents, keyed by journey type.
	Explore   lipgloss.Color
	Start     lipgloss.Color
	Integrate lipgloss.Color
}

// SquareOne returns the default palette.
func SquareOne() *Palette {
	return &Palette{
		Brand:     lipgloss.Color("#2563EB"),
		Text:      lipgloss.Color("#E2E8F0"),
		Dim:       lipgloss.Color("#64748B"),
		Frame:     lipgloss.Color("#334155"),
		Bar:       lipgloss.Color("#111827"),
		Good:      lipgloss.Color("#22C55E"),
		Caution:   lipgloss.Color("#F59E0B"),
		Bad:       lipgloss.Color("#EF4444"),
		Explore:   lipgloss.Color("#A855F7"),
		Start:     lipgloss.Color("#14B8A6"),
		Integrate: lipgloss.Color("#F97316"),
	}
}

// Accent returns the colour of a journey. Unknown journeys use the brand colour.
func (p *Palette) Accent(j domain.JourneyType) lipgloss.Color {
	switch j {
	case domain.JourneyExplore:
		return p.Explore
	case domain.JourneyStart:
		return p.Start
	case domain.JourneyIntegrate:
		return p.Integrate
	default:
		return p.Brand
	}
}

// Styles is the set of styles shared by every view.
type Styles struct {
	palette *Palette

	Title      lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Breadcrumb lipgloss.Style
	Badge      lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style

	// Notification severities.
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles builds styles from a palette. A nil palette means SquareOne().
func NewStyles(p *Palette) *Styles {
	if p == nil {
		p = SquareOne()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	return &Styles{
		palette:    p,
		Title:      fg(p.Brand).Bold(true),
		Normal:     fg(p.Text),
		Muted:      fg(p.Dim),
		Selected:   fg(p.Text).Background(p.Brand).Bold(true),
		Breadcrumb: fg(p.Dim).Italic(true),
		Badge:      fg(p.Good).Bold(true),
		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Frame).
			Padding(0, 1),
		StatusBar: fg(p.Dim).Background(p.Bar).Padding(0, 1),
		Help:      fg(p.Dim),
		Info:      fg(p.Brand),
		Success:   fg(p.Good),
		Warning:   fg(p.Caution),
		Error:     fg(p.Bad),
	}
}

// DefaultStyles returns styles for the SquareOne palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Palette returns the palette the styles were built from.
func (s *Styles) Palette() *Palette {
	return s.palette
}

// JourneyTitle is the title style tinted with the journey's accent.
func (s *Styles) JourneyTitle(j domain.JourneyType) lipgloss.Style {
	return s.Title.Foreground(s.palette.Accent(j))
}

// Notice returns the style for a notification of the given severity.
func (s *Styles) Notice(t domain.NotificationType) lipgloss.Style {
	switch t {
	case domain.NotificationSuccess:
		return s.Success
	case domain.NotificationError:
		return s.Error
	case domain.NotificationWarning:
		return s.Warning
	default:
		return s.Info
	}
}
