// Package pager renders Markdown into a scrollable viewport.
package pager

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Pager shows rendered Markdown and scrolls it.
type Pager struct {
	viewport viewport.Model
	markdown string
	wrap     int
}

// New creates a pager with a default size.
func New() *Pager {
	return &Pager{
		viewport: viewport.New(80, 20),
		wrap:     76,
	}
}

// SetMarkdown replaces the content and scrolls to the top.
func (p *Pager) SetMarkdown(md string) {
	p.markdown = md
	p.viewport.SetContent(render(md, p.wrap))
	p.viewport.GotoTop()
}

// Markdown returns the raw content.
func (p *Pager) Markdown() string {
	return p.markdown
}

// SetSize resizes the viewport and rewraps the content.
func (p *Pager) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	p.viewport.Width = width
	p.viewport.Height = height
	if wrap := width - 4; wrap != p.wrap {
		p.wrap = wrap
		if p.markdown != "" {
			p.viewport.SetContent(render(p.markdown, p.wrap))
		}
	}
}

// Update scrolls on cursor keys.
func (p *Pager) Update(msg tea.Msg) (*Pager, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "k", "up":
			p.viewport.LineUp(1)
			return p, nil
		case "j", "down":
			p.viewport.LineDown(1)
			return p, nil
		case "pgup":
			p.viewport.HalfViewUp()
			return p, nil
		case "pgdown", " ":
			p.viewport.HalfViewDown()
			return p, nil
		case "g", "home":
			p.viewport.GotoTop()
			return p, nil
		case "G", "end":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// YOffset returns the scroll position.
func (p *Pager) YOffset() int {
	return p.viewport.YOffset
}

// View renders the visible part of the content.
func (p *Pager) View() string {
	return p.viewport.View()
}

// render converts Markdown for the terminal, falling back to the raw text
// when the renderer fails.
func render(md string, wrap int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = md
		}
	}()

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return md
	}
	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}
