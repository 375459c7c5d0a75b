// Package markdown renders documents as CommonMark text.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Renderer writes documents as Markdown.
type Renderer struct{}

// New creates a Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

// Format implements driven.DocumentRenderer.
func (r *Renderer) Format() domain.ExportFormat {
	return domain.ExportMarkdown
}

// Render implements driven.DocumentRenderer.
func (r *Renderer) Render(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", doc.Title)
	if doc.Subtitle != "" {
		fmt.Fprintf(&b, "_%s_\n\n", doc.Subtitle)
	}

	for i := range doc.Sections {
		writeSection(&b, &doc.Sections[i])
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

func writeSection(b *bytes.Buffer, s *domain.Section) {
	fmt.Fprintf(b, "## %s\n\n", s.Heading)

	// Consecutive stats share one table.
	inStats := false
	for _, block := range s.Blocks {
		if block.Kind == domain.BlockStat {
			if !inStats {
				b.WriteString("| | |\n|---|--:|\n")
				inStats = true
			}
			fmt.Fprintf(b, "| %s | %s |\n", escapeCell(block.Label), escapeCell(block.Text))
			continue
		}
		if inStats {
			b.WriteString("\n")
			inStats = false
		}
		writeBlock(b, &block)
	}
	if inStats {
		b.WriteString("\n")
	}
}

func writeBlock(b *bytes.Buffer, block *domain.Block) {
	switch block.Kind {
	case domain.BlockParagraph:
		fmt.Fprintf(b, "%s\n\n", block.Text)
	case domain.BlockLabeled:
		fmt.Fprintf(b, "**%s:** %s  \n", block.Label, block.Text)
	case domain.BlockBullets:
		for _, item := range block.Items {
			fmt.Fprintf(b, "- %s\n", item)
		}
		b.WriteString("\n")
	case domain.BlockNumbered:
		for i, item := range block.Items {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		}
		b.WriteString("\n")
	case domain.BlockNotes:
		if block.Label != "" {
			fmt.Fprintf(b, "> **%s**\n>\n", block.Label)
		}
		for _, line := range strings.Split(block.Text, "\n") {
			fmt.Fprintf(b, "> %s\n", line)
		}
		b.WriteString("\n")
	case domain.BlockLinks:
		if block.Label != "" {
			fmt.Fprintf(b, "**%s**\n\n", block.Label)
		}
		for _, l := range block.Links {
			fmt.Fprintf(b, "- [%s](%s)", l.Name, l.URL)
			if l.Description != "" {
				fmt.Fprintf(b, ": %s", l.Description)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	case domain.BlockFooter:
		fmt.Fprintf(b, "\n_%s_\n\n", block.Text)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
