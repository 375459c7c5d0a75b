package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// Section headings.
const (
	HeadingSummary   = "Summary"
	HeadingYourInfo  = "Your Information"
	HeadingTakeaways = "Key Takeaways"
	HeadingNextSteps = "Next Steps"
	HeadingResources = "Recommended Resources"
)

const (
	worksheetFileName = "squareone-worksheet"
	savedDateLayout   = "January 2, 2006"
	notProvidedAnswer = "Not provided"
	totalItemsLabel   = "Total Items"
)

// documentEpoch stands in for a generation time when the input has none.
var documentEpoch = time.Unix(0, 0).UTC()

// DocumentBuilder structures worksheets and journey results into
// renderer-agnostic documents. It never reads the wall clock, so the same
// input always produces the same document.
type DocumentBuilder struct{}

// NewDocumentBuilder creates a new document builder.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{}
}

// BuildWorksheetDocument lays out a worksheet: a summary of counts, then one
// section per item in stored order.
func (b *DocumentBuilder) BuildWorksheetDocument(items []domain.WorksheetItem) *domain.Document {
	doc := &domain.Document{
		Title:       "My SquareOne Worksheet",
		Subtitle:    "Your saved tiles, guides and resources",
		FileName:    worksheetFileName,
		GeneratedAt: latestSave(items),
		Sections:    make([]domain.Section, 0, len(items)+1),
	}

	doc.Sections = append(doc.Sections, summarySection(items))
	for i := range items {
		doc.Sections = append(doc.Sections, itemSection(&items[i]))
	}
	return doc
}

func summarySection(items []domain.WorksheetItem) domain.Section {
	counts := domain.CountItemsByJourney(items)

	blocks := []domain.Block{
		{Kind: domain.BlockStat, Label: totalItemsLabel, Text: strconv.Itoa(len(items))},
	}
	for _, jt := range domain.JourneyTypes() {
		blocks = append(blocks, domain.Block{
			Kind:  domain.BlockStat,
			Label: jt.DisplayName() + " Journey",
			Text:  strconv.Itoa(counts[jt]),
		})
	}
	blocks = append(blocks, domain.Block{
		Kind:  domain.BlockStat,
		Label: domain.JourneyType("").DisplayName(),
		Text:  strconv.Itoa(counts[""]),
	})

	return domain.Section{Heading: HeadingSummary, Blocks: blocks}
}

func itemSection(item *domain.WorksheetItem) domain.Section {
	blocks := []domain.Block{
		{Kind: domain.BlockLabeled, Label: "Type", Text: item.Type.String()},
	}
	if item.JourneyType != "" {
		blocks = append(blocks, domain.Block{
			Kind: domain.BlockLabeled, Label: "Journey", Text: item.JourneyType.DisplayName(),
		})
	}
	if item.Level != nil {
		blocks = append(blocks, domain.Block{
			Kind: domain.BlockLabeled, Label: "Level", Text: strconv.Itoa(*item.Level),
		})
	}
	if item.Description != "" {
		blocks = append(blocks, domain.Block{Kind: domain.BlockParagraph, Text: item.Description})
	}
	if item.HasNotes() {
		blocks = append(blocks, domain.Block{Kind: domain.BlockNotes, Label: "Your Notes", Text: item.Notes})
	}
	if len(item.Resources) > 0 {
		links := make([]domain.ResourceLink, len(item.Resources))
		copy(links, item.Resources)
		blocks = append(blocks, domain.Block{Kind: domain.BlockLinks, Label: "Resources", Links: links})
	}
	blocks = append(blocks, domain.Block{
		Kind: domain.BlockFooter,
		Text: "Saved on " + item.CreatedAt.Format(savedDateLayout),
	})

	return domain.Section{Heading: item.Title, Blocks: blocks}
}

// latestSave returns the most recent item save time, or the epoch.
func latestSave(items []domain.WorksheetItem) time.Time {
	latest := documentEpoch
	for i := range items {
		if items[i].CreatedAt.After(latest) {
			latest = items[i].CreatedAt
		}
	}
	return latest
}

// BuildJourneyResultDocument lays out a journey's answers and the guidance
// generated from them.
func (b *DocumentBuilder) BuildJourneyResultDocument(
	journey domain.JourneyType,
	answers domain.JourneyAnswers,
	result *domain.JourneyResult,
) *domain.Document {
	if result == nil {
		result = &domain.JourneyResult{}
	}

	name := journey.DisplayName()
	doc := &domain.Document{
		Title:       fmt.Sprintf("Your %s Journey Results", name),
		Subtitle:    "Personalised guidance from SquareOne Journey",
		FileName:    JourneyResultFileName(journey),
		GeneratedAt: documentEpoch,
	}

	info := domain.Section{Heading: HeadingYourInfo}
	for _, f := range domain.JourneyFields(journey) {
		answer := answers[f.Key]
		if answer == "" {
			answer = notProvidedAnswer
		}
		info.Blocks = append(info.Blocks, domain.Block{Kind: domain.BlockLabeled, Label: f.Label, Text: answer})
	}

	doc.Sections = []domain.Section{
		info,
		{
			Heading: HeadingTakeaways,
			Blocks:  []domain.Block{{Kind: domain.BlockBullets, Items: cloneStrings(result.KeyTakeaways)}},
		},
		{
			Heading: HeadingNextSteps,
			Blocks:  []domain.Block{{Kind: domain.BlockNumbered, Items: cloneStrings(result.NextSteps)}},
		},
		{
			Heading: HeadingResources,
			Blocks:  []domain.Block{{Kind: domain.BlockLinks, Links: cloneLinks(result.Resources)}},
		},
	}
	return doc
}

// JourneyResultFileName returns the default file name, without extension,
// of a journey result document.
func JourneyResultFileName(journey domain.JourneyType) string {
	return fmt.Sprintf("squareone-%s-journey-results", journey)
}

func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneLinks(l []domain.ResourceLink) []domain.ResourceLink {
	out := make([]domain.ResourceLink, len(l))
	copy(out, l)
	return out
}
