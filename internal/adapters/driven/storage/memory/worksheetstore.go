package memory

import (
	"context"
	"sync"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/record"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure WorksheetStore implements the interface.
var _ driven.WorksheetStore = (*WorksheetStore)(nil)

// WorksheetStore keeps the serialized worksheet record in memory for the
// lifetime of the process. Used by the "memory" backend and in tests.
type WorksheetStore struct {
	mu      sync.RWMutex
	records map[string][]byte
	writes  int
}

// NewWorksheetStore creates a new in-memory worksheet store.
func NewWorksheetStore() *WorksheetStore {
	return &WorksheetStore{
		records: make(map[string][]byte),
	}
}

// Load decodes the stored record.
func (s *WorksheetStore) Load(_ context.Context) (*domain.Worksheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[driven.WorksheetKey]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record.Decode(data)
}

// Save encodes and stores the worksheet.
func (s *WorksheetStore) Save(_ context.Context, ws *domain.Worksheet) error {
	data, err := record.Encode(ws)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[driven.WorksheetKey] = data
	s.writes++
	return nil
}

// SetRaw replaces the stored record with arbitrary bytes.
func (s *WorksheetStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[driven.WorksheetKey] = append([]byte(nil), data...)
}

// Raw returns a copy of the stored record.
func (s *WorksheetStore) Raw() ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.records[driven.WorksheetKey]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), data...), true
}

// Writes returns how many times Save has succeeded.
func (s *WorksheetStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
