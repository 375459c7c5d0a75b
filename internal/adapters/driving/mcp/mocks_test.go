package mcp

import (
	"context"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

// mockExportService is a mock implementation of driving.ExportService.
type mockExportService struct {
	path   string
	err    error
	format domain.ExportFormat
}

func (m *mockExportService) WorksheetDocument(_ context.Context) *domain.Document {
	return &domain.Document{}
}

func (m *mockExportService) Render(_ *domain.Document, _ domain.ExportFormat) ([]byte, error) {
	return nil, m.err
}

func (m *mockExportService) ExportWorksheet(_ context.Context, format domain.ExportFormat) (string, error) {
	m.format = format
	return m.path, m.err
}

func (m *mockExportService) ExportJourneyResult(
	_ context.Context,
	_ domain.JourneyType,
	_ domain.JourneyAnswers,
	_ *domain.JourneyResult,
	_ domain.ExportFormat,
) (string, error) {
	return m.path, m.err
}
