// Package file persists the worksheet record as a JSON file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/record"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure WorksheetStore implements the interface.
var _ driven.WorksheetStore = (*WorksheetStore)(nil)

// WorksheetStore keeps the worksheet record in <dir>/squareone-worksheet.json.
type WorksheetStore struct {
	mu   sync.Mutex
	path string
}

// NewWorksheetStore creates a store in dataDir.
// If dataDir is empty, defaults to ~/.squareone/data.
func NewWorksheetStore(dataDir string) (*WorksheetStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".squareone", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &WorksheetStore{
		path: filepath.Join(dataDir, driven.WorksheetKey+".json"),
	}, nil
}

// Path returns the record file path.
func (s *WorksheetStore) Path() string {
	return s.path
}

// Load reads and decodes the record file.
func (s *WorksheetStore) Load(_ context.Context) (*domain.Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return record.Decode(data)
}

// Save encodes the worksheet and replaces the record file atomically.
func (s *WorksheetStore) Save(_ context.Context, ws *domain.Worksheet) error {
	data, err := record.Encode(ws)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := WriteAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageUnavailable, err)
	}
	return nil
}
