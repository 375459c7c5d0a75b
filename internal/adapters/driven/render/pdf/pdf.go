// Package pdf renders documents as paginated PDF files.
//
// Output is reproducible: the creation and modification dates come from the
// document, and the catalog is written in sorted order, so the same document
// always yields the same bytes.
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.DocumentRenderer = (*Renderer)(nil)

// Layout in millimetres on A4.
const (
	margin      = 18.0
	lineHeight  = 5.5
	labelWidth  = 32.0
	statWidth   = 60.0
	footerSpace = 15.0
	fontFamily  = "Helvetica"
)

type rgb struct{ r, g, b int }

var (
	colorText    = rgb{33, 37, 41}
	colorMuted   = rgb{108, 117, 125}
	colorAccent  = rgb{0, 86, 179}
	colorHeading = rgb{232, 240, 254}
	colorNotes   = rgb{255, 248, 225}
)

// Renderer lays documents out with go-pdf/fpdf.
type Renderer struct {
	pageSize string
}

// New creates a PDF renderer producing A4 pages.
func New() *Renderer {
	return &Renderer{pageSize: "A4"}
}

// Format implements driven.DocumentRenderer.
func (r *Renderer) Format() domain.ExportFormat {
	return domain.ExportPDF
}

// Render implements driven.DocumentRenderer.
func (r *Renderer) Render(doc *domain.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", domain.ErrInvalidInput)
	}

	p := newPage(r.pageSize, doc)
	p.header(doc)
	for i := range doc.Sections {
		p.section(&doc.Sections[i])
	}

	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// page wraps the fpdf document with the translator for core fonts.
type page struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func newPage(size string, doc *domain.Document) *page {
	pdf := fpdf.New("P", "mm", size, "")

	stamp := doc.GeneratedAt
	if stamp.IsZero() {
		stamp = time.Unix(0, 0).UTC()
	}
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetCompression(true)

	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subtitle, true)
	pdf.SetCreator("SquareOne Journey", true)

	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin+footerSpace/2)
	pdf.AliasNbPages("")

	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-footerSpace)
		p.font("I", 8, colorMuted)
		pdf.CellFormat(0, 10, p.tr(fmt.Sprintf("Page %d of {nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()
	return p
}

func (p *page) font(style string, size float64, c rgb) {
	p.pdf.SetFont(fontFamily, style, size)
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *page) header(doc *domain.Document) {
	p.font("B", 20, colorAccent)
	p.pdf.MultiCell(0, 9, p.tr(doc.Title), "", "L", false)
	if doc.Subtitle != "" {
		p.font("I", 11, colorMuted)
		p.pdf.MultiCell(0, 6, p.tr(doc.Subtitle), "", "L", false)
	}
	p.pdf.Ln(6)
}

func (p *page) section(s *domain.Section) {
	p.font("B", 13, colorText)
	p.pdf.SetFillColor(colorHeading.r, colorHeading.g, colorHeading.b)
	p.pdf.MultiCell(0, 8, p.tr(s.Heading), "", "L", true)
	p.pdf.Ln(2)

	for i := range s.Blocks {
		p.block(&s.Blocks[i])
	}
	p.pdf.Ln(4)
}

func (p *page) block(b *domain.Block) {
	pdf := p.pdf
	switch b.Kind {
	case domain.BlockParagraph:
		p.font("", 10, colorText)
		pdf.MultiCell(0, lineHeight, p.tr(b.Text), "", "L", false)
		pdf.Ln(1)

	case domain.BlockLabeled:
		p.font("B", 10, colorText)
		pdf.CellFormat(labelWidth, lineHeight, p.tr(b.Label+":"), "", 0, "L", false, 0, "")
		p.font("", 10, colorText)
		pdf.MultiCell(0, lineHeight, p.tr(b.Text), "", "L", false)

	case domain.BlockStat:
		p.font("", 10, colorText)
		pdf.CellFormat(statWidth, lineHeight+1, p.tr(b.Label), "B", 0, "L", false, 0, "")
		p.font("B", 10, colorAccent)
		pdf.CellFormat(20, lineHeight+1, p.tr(b.Text), "B", 1, "R", false, 0, "")

	case domain.BlockBullets:
		p.font("", 10, colorText)
		for _, item := range b.Items {
			p.listItem(p.tr("•"), item)
		}

	case domain.BlockNumbered:
		p.font("", 10, colorText)
		for i, item := range b.Items {
			p.listItem(strconv.Itoa(i+1)+".", item)
		}

	case domain.BlockNotes:
		pdf.Ln(1)
		pdf.SetFillColor(colorNotes.r, colorNotes.g, colorNotes.b)
		if b.Label != "" {
			p.font("B", 10, colorText)
			pdf.MultiCell(0, lineHeight+1, p.tr(b.Label), "", "L", true)
		}
		p.font("", 10, colorText)
		pdf.MultiCell(0, lineHeight, p.tr(b.Text), "", "L", true)
		pdf.Ln(1)

	case domain.BlockLinks:
		if b.Label != "" {
			p.font("B", 10, colorText)
			pdf.MultiCell(0, lineHeight+1, p.tr(b.Label), "", "L", false)
		}
		for _, l := range b.Links {
			p.link(l)
		}

	case domain.BlockFooter:
		pdf.Ln(1)
		p.font("I", 8, colorMuted)
		pdf.MultiCell(0, lineHeight-1, p.tr(b.Text), "", "L", false)
	}
}

func (p *page) listItem(marker, text string) {
	pdf := p.pdf
	left, _, _, _ := pdf.GetMargins()
	pdf.SetX(left + 2)
	pdf.CellFormat(6, lineHeight, marker, "", 0, "L", false, 0, "")
	pdf.MultiCell(0, lineHeight, p.tr(text), "", "L", false)
}

func (p *page) link(l domain.ResourceLink) {
	pdf := p.pdf
	p.font("B", 10, colorText)
	pdf.MultiCell(0, lineHeight, p.tr(l.Name), "", "L", false)
	if strings.TrimSpace(l.Description) != "" {
		p.font("", 9, colorMuted)
		pdf.MultiCell(0, lineHeight-0.5, p.tr(l.Description), "", "L", false)
	}
	if l.URL != "" {
		p.font("U", 9, colorAccent)
		pdf.WriteLinkString(lineHeight, p.tr(l.URL), l.URL)
		pdf.Ln(lineHeight + 1)
	}
}
