package domain

import (
	"strings"
	"time"
)

// DefaultWorksheetID is the identifier of a freshly created worksheet.
const DefaultWorksheetID = "default"

// ItemType categorises a saved worksheet item.
type ItemType string

// Available item types.
const (
	ItemTypeTile     ItemType = "tile"
	ItemTypeGuide    ItemType = "guide"
	ItemTypeResource ItemType = "resource"
)

// IsValid returns true if the item type is recognised.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeTile, ItemTypeGuide, ItemTypeResource:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t ItemType) String() string {
	return string(t)
}

// ResourceLink is a named external reference.
type ResourceLink struct {
	Name        string
	URL         string
	Description string
}

// WorksheetItem is a single saved entry in a worksheet.
// Only Notes may change after the item has been saved.
type WorksheetItem struct {
	// ID is unique within the owning worksheet.
	ID string

	Title       string
	Description string

	// Type is one of tile, guide, or resource.
	Type ItemType

	// JourneyType is empty when the item is not tied to a journey.
	JourneyType JourneyType

	// Level is nil when the item has no hierarchy level.
	Level *int

	// Notes holds the user's free-text notes.
	Notes string

	// CreatedAt is when the item was saved.
	CreatedAt time.Time

	// Resources are optional reference links.
	Resources []ResourceLink
}

// HasNotes reports whether the item carries non-blank notes.
func (i *WorksheetItem) HasNotes() bool {
	return strings.TrimSpace(i.Notes) != ""
}

// Clone returns a deep copy of the item.
func (i WorksheetItem) Clone() WorksheetItem {
	c := i
	if i.Level != nil {
		level := *i.Level
		c.Level = &level
	}
	if i.Resources != nil {
		c.Resources = make([]ResourceLink, len(i.Resources))
		copy(c.Resources, i.Resources)
	}
	return c
}

// ItemDraft carries every WorksheetItem field except the identifier and
// save timestamp, which are assigned by the worksheet when the item is added.
type ItemDraft struct {
	Title       string
	Description string
	Type        ItemType
	JourneyType JourneyType
	Level       *int
	Notes       string
	Resources   []ResourceLink
}

// DraftFromTile builds a draft for saving a tile to the worksheet.
func DraftFromTile(t *Tile) ItemDraft {
	level := t.Level
	links := make([]ResourceLink, len(t.Resources))
	copy(links, t.Resources)
	return ItemDraft{
		Title:       t.Title,
		Description: t.Description,
		Type:        ItemTypeTile,
		JourneyType: t.JourneyType,
		Level:       &level,
		Resources:   links,
	}
}

// Worksheet is the user's ordered collection of saved items.
// Exactly one worksheet exists per user.
type Worksheet struct {
	ID string

	// Items are in insertion order, which is also display order.
	Items []WorksheetItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewWorksheet returns an empty worksheet created at now.
func NewWorksheet(now time.Time) *Worksheet {
	return &Worksheet{
		ID:        DefaultWorksheetID,
		Items:     []WorksheetItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IndexOf returns the position of the item with the given ID, or -1.
func (w *Worksheet) IndexOf(id string) int {
	for i := range w.Items {
		if w.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the worksheet.
func (w *Worksheet) Clone() *Worksheet {
	c := *w
	c.Items = make([]WorksheetItem, len(w.Items))
	for i := range w.Items {
		c.Items[i] = w.Items[i].Clone()
	}
	return &c
}

// CountByJourney returns how many items belong to each journey type.
// Items without a journey type are counted under the empty key.
func (w *Worksheet) CountByJourney() map[JourneyType]int {
	return CountItemsByJourney(w.Items)
}

// CountItemsByJourney counts items per journey type. Every known journey
// type is present in the result, with zero when it has no items.
func CountItemsByJourney(items []WorksheetItem) map[JourneyType]int {
	counts := make(map[JourneyType]int, len(JourneyTypes())+1)
	for _, jt := range JourneyTypes() {
		counts[jt] = 0
	}
	counts[""] = 0
	for i := range items {
		counts[items[i].JourneyType]++
	}
	return counts
}
