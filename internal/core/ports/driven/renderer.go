package driven

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// DocumentRenderer turns a structured document into file bytes.
// Implementations must be deterministic: the same document renders
// to the same bytes.
type DocumentRenderer interface {
	// Render produces the file contents.
	Render(doc *domain.Document) ([]byte, error)

	// Format returns the export format, which is also the file extension.
	Format() domain.ExportFormat
}
