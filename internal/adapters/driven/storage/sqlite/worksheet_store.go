package sqlite

import (
	"context"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/record"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// worksheetStore implements driven.WorksheetStore.
type worksheetStore struct {
	store *Store
}

var _ driven.WorksheetStore = (*worksheetStore)(nil)

// Load reads and decodes the worksheet record.
func (s *worksheetStore) Load(ctx context.Context) (*domain.Worksheet, error) {
	data, err := s.store.getRecord(ctx, driven.WorksheetKey)
	if err != nil {
		return nil, err
	}
	return record.Decode(data)
}

// Save encodes and writes the worksheet record.
func (s *worksheetStore) Save(ctx context.Context, ws *domain.Worksheet) error {
	data, err := record.Encode(ws)
	if err != nil {
		return err
	}
	return s.store.putRecord(ctx, driven.WorksheetKey, data)
}
