package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

func sampleDocument() *domain.Document {
	return &domain.Document{
		Title:    "My SquareOne Worksheet",
		Subtitle: "Saved items",
		FileName: "squareone-worksheet",
		Sections: []domain.Section{
			{
				Heading: "Summary",
				Blocks: []domain.Block{
					{Kind: domain.BlockStat, Label: "Total Items", Text: "1"},
					{Kind: domain.BlockStat, Label: "Start Journey", Text: "1"},
				},
			},
			{
				Heading: "Market Research",
				Blocks: []domain.Block{
					{Kind: domain.BlockLabeled, Label: "Type", Text: "tile"},
					{Kind: domain.BlockParagraph, Text: "Know your customers"},
					{Kind: domain.BlockNotes, Label: "Your Notes", Text: "line one\nline two"},
					{Kind: domain.BlockLinks, Label: "Resources", Links: []domain.ResourceLink{
						{Name: "SBA", URL: "https://www.sba.gov", Description: "Guides"},
					}},
					{Kind: domain.BlockBullets, Items: []string{"a", "b"}},
					{Kind: domain.BlockNumbered, Items: []string{"first", "second"}},
					{Kind: domain.BlockFooter, Text: "Saved on April 10, 2025"},
				},
			},
		},
	}
}

func TestRenderer_Format(t *testing.T) {
	assert.Equal(t, domain.ExportMarkdown, New().Format())
}

func TestRenderer_Render(t *testing.T) {
	out, err := New().Render(sampleDocument())
	require.NoError(t, err)

	md := string(out)
	assert.Contains(t, md, "# My SquareOne Worksheet\n\n_Saved items_")
	assert.Contains(t, md, "## Summary\n\n| | |\n|---|--:|\n| Total Items | 1 |\n| Start Journey | 1 |\n")
	assert.Contains(t, md, "**Type:** tile")
	assert.Contains(t, md, "> **Your Notes**\n>\n> line one\n> line two\n")
	assert.Contains(t, md, "- [SBA](https://www.sba.gov): Guides\n")
	assert.Contains(t, md, "- a\n- b\n")
	assert.Contains(t, md, "1. first\n2. second\n")
	assert.Contains(t, md, "_Saved on April 10, 2025_")
}

func TestRenderer_Deterministic(t *testing.T) {
	r := New()
	first, err := r.Render(sampleDocument())
	require.NoError(t, err)
	second, err := r.Render(sampleDocument())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderer_EscapesTableCells(t *testing.T) {
	doc := &domain.Document{Title: "T", Sections: []domain.Section{{
		Heading: "S",
		Blocks:  []domain.Block{{Kind: domain.BlockStat, Label: "a|b", Text: "1"}},
	}}}

	out, err := New().Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), `| a\|b | 1 |`)
}

func TestRenderer_NilDocument(t *testing.T) {
	_, err := New().Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
