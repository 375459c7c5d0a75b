package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestPager_RendersMarkdown(t *testing.T) {
	p := New()

	p.SetMarkdown("# Market Research\n\nKnow your customers.")

	assert.Equal(t, "# Market Research\n\nKnow your customers.", p.Markdown())
	assert.Contains(t, p.View(), "Market Research")
	assert.Contains(t, p.View(), "customers")
}

func TestPager_Scrolls(t *testing.T) {
	p := New()
	p.SetSize(60, 5)

	var b strings.Builder
	for i := 1; i <= 40; i++ {
		fmt.Fprintf(&b, "- line %d\n", i)
	}
	p.SetMarkdown(b.String())
	assert.Equal(t, 0, p.YOffset())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 1, p.YOffset())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 0, p.YOffset())

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	assert.Positive(t, p.YOffset())

	p.SetMarkdown("# Fresh")
	assert.Equal(t, 0, p.YOffset())
}

func TestPager_SetSizeBounds(t *testing.T) {
	p := New()

	p.SetSize(1, 1)
	p.SetMarkdown("short")

	assert.Contains(t, p.View(), "short")
}
