package driven

import (
	"context"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// WorksheetKey is the fixed storage key of the serialized worksheet record.
const WorksheetKey = "squareone-worksheet"

// WorksheetStore persists the single worksheet record.
type WorksheetStore interface {
	// Load reads the persisted worksheet.
	// Returns domain.ErrNotFound when nothing has been saved yet and
	// an error wrapping domain.ErrCorruptState when the record cannot be parsed.
	Load(ctx context.Context) (*domain.Worksheet, error)

	// Save replaces the persisted worksheet.
	Save(ctx context.Context, ws *domain.Worksheet) error
}
