package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

func sampleDocument() *domain.Document {
	return &domain.Document{
		Title:       "My SquareOne Worksheet",
		Subtitle:    "Your saved tiles, guides and resources",
		FileName:    "squareone-worksheet",
		GeneratedAt: time.Date(2025, 4, 10, 9, 30, 0, 0, time.UTC),
		Sections: []domain.Section{
			{
				Heading: "Summary",
				Blocks: []domain.Block{
					{Kind: domain.BlockStat, Label: "Total Items", Text: "1"},
				},
			},
			{
				Heading: "Market Research",
				Blocks: []domain.Block{
					{Kind: domain.BlockLabeled, Label: "Type", Text: "tile"},
					{Kind: domain.BlockParagraph, Text: "Find out what customers of the café already buy."},
					{Kind: domain.BlockNotes, Label: "Your Notes", Text: "Call the co-op on Monday."},
					{Kind: domain.BlockBullets, Items: []string{"one", "two"}},
					{Kind: domain.BlockNumbered, Items: []string{"first", "second"}},
					{Kind: domain.BlockLinks, Label: "Resources", Links: []domain.ResourceLink{
						{Name: "SBA", URL: "https://www.sba.gov", Description: "Guides"},
					}},
					{Kind: domain.BlockFooter, Text: "Saved on April 10, 2025"},
				},
			},
		},
	}
}

func TestRenderer_Format(t *testing.T) {
	assert.Equal(t, domain.ExportPDF, New().Format())
}

func TestRenderer_Render(t *testing.T) {
	out, err := New().Render(sampleDocument())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("%%EOF")))
}

func TestRenderer_ByteIdentical(t *testing.T) {
	r := New()
	first, err := r.Render(sampleDocument())
	require.NoError(t, err)
	second, err := r.Render(sampleDocument())
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "identical documents must render identical bytes")
}

func TestRenderer_Paginates(t *testing.T) {
	doc := sampleDocument()
	for i := 0; i < 40; i++ {
		doc.Sections = append(doc.Sections, domain.Section{
			Heading: fmt.Sprintf("Item %d", i),
			Blocks: []domain.Block{
				{Kind: domain.BlockParagraph, Text: "A paragraph long enough to take up a line or two on the page."},
				{Kind: domain.BlockFooter, Text: "Saved on April 10, 2025"},
			},
		})
	}

	p := newPage("A4", doc)
	p.header(doc)
	for i := range doc.Sections {
		p.section(&doc.Sections[i])
	}

	assert.Greater(t, p.pdf.PageCount(), 1)
	require.NoError(t, p.pdf.Error())
}

func TestRenderer_ZeroGeneratedAt(t *testing.T) {
	doc := sampleDocument()
	doc.GeneratedAt = time.Time{}

	first, err := New().Render(doc)
	require.NoError(t, err)
	second, err := New().Render(doc)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestRenderer_NilDocument(t *testing.T) {
	_, err := New().Render(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
