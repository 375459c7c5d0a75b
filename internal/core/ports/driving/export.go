package driving

import (
	"context"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// ExportService turns worksheets and journey results into saved documents.
// Failures are returned wrapped in domain.ErrDocumentExport and are safe to retry.
type ExportService interface {
	// WorksheetDocument builds the document for the current worksheet.
	WorksheetDocument(ctx context.Context) *domain.Document

	// Render renders a document in the given format.
	Render(doc *domain.Document, format domain.ExportFormat) ([]byte, error)

	// ExportWorksheet renders and saves the worksheet, returning the file path.
	ExportWorksheet(ctx context.Context, format domain.ExportFormat) (string, error)

	// ExportJourneyResult renders and saves a journey result, returning the file path.
	ExportJourneyResult(
		ctx context.Context,
		journey domain.JourneyType,
		answers domain.JourneyAnswers,
		result *domain.JourneyResult,
		format domain.ExportFormat,
	) (string, error)
}
