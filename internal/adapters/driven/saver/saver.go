// Package saver writes exported documents to the local filesystem.
package saver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/file"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// Ensure Directory implements the interface.
var _ driven.FileSaver = (*Directory)(nil)

// Directory saves files into a single directory.
type Directory struct {
	dir string
}

// NewDirectory creates a saver for dir. Empty means the working directory.
func NewDirectory(dir string) *Directory {
	if dir == "" {
		dir = "."
	}
	return &Directory{dir: dir}
}

// Dir returns the target directory.
func (d *Directory) Dir() string {
	return d.dir
}

// Save writes data to <dir>/<name> and returns the absolute path.
// An existing file with the same name is replaced.
func (d *Directory) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: file name %q", domain.ErrInvalidInput, name)
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}

	path, err := filepath.Abs(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("resolving export path: %w", err)
	}
	if err := file.WriteAtomic(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
