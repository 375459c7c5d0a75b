package driving

import (
	"context"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// WorksheetService is the single source of truth for the user's saved items.
// Persistence failures never fail these operations; the in-memory
// worksheet stays authoritative for the rest of the session.
type WorksheetService interface {
	// Load reads the persisted worksheet, falling back to a fresh one.
	Load(ctx context.Context) *domain.Worksheet

	// Worksheet returns a copy of the current worksheet.
	Worksheet(ctx context.Context) *domain.Worksheet

	// Items returns a copy of the items in display order.
	Items(ctx context.Context) []domain.WorksheetItem

	// Item returns a copy of a single item.
	Item(ctx context.Context, id string) (*domain.WorksheetItem, error)

	// AddItem saves a new item at the end of the worksheet.
	AddItem(ctx context.Context, draft domain.ItemDraft) (domain.WorksheetItem, error)

	// RemoveItem deletes an item. Returns false if no item matched.
	RemoveItem(ctx context.Context, id string) bool

	// UpdateNotes replaces an item's notes. Returns false if no item matched.
	UpdateNotes(ctx context.Context, id, notes string) bool

	// ClearAll removes every item and returns how many were removed.
	// Callers must obtain explicit user confirmation first.
	ClearAll(ctx context.Context) int
}
