package services

import (
	"context"
	"fmt"
	"time"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// Ensure ExportService implements the interface.
var _ driving.ExportService = (*ExportService)(nil)

const exportNotificationDuration = 5 * time.Second

// ExportService renders documents and hands them to the file saver.
// The worksheet is only ever read here.
type ExportService struct {
	worksheet driving.WorksheetService
	builder   *DocumentBuilder
	renderers map[domain.ExportFormat]driven.DocumentRenderer
	saver     driven.FileSaver
	notifier  driven.Notifier
}

// NewExportService creates a new export service with the given renderers,
// keyed by the format each one reports.
func NewExportService(
	worksheet driving.WorksheetService,
	saver driven.FileSaver,
	notifier driven.Notifier,
	renderers ...driven.DocumentRenderer,
) *ExportService {
	s := &ExportService{
		worksheet: worksheet,
		builder:   NewDocumentBuilder(),
		renderers: make(map[domain.ExportFormat]driven.DocumentRenderer, len(renderers)),
		saver:     saver,
		notifier:  notifier,
	}
	for _, r := range renderers {
		if r != nil {
			s.renderers[r.Format()] = r
		}
	}
	return s
}

// WorksheetDocument builds the document for the current worksheet.
func (s *ExportService) WorksheetDocument(ctx context.Context) *domain.Document {
	var items []domain.WorksheetItem
	if s.worksheet != nil {
		items = s.worksheet.Items(ctx)
	}
	return s.builder.BuildWorksheetDocument(items)
}

// Render renders a document in the given format.
func (s *ExportService) Render(doc *domain.Document, format domain.ExportFormat) (data []byte, err error) {
	r, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %w: format %q", domain.ErrDocumentExport, domain.ErrUnsupportedType, format)
	}

	defer func() {
		if rec := recover(); rec != nil {
			data = nil
			err = fmt.Errorf("%w: rendering %s panicked: %v", domain.ErrDocumentExport, format, rec)
		}
	}()

	data, err = r.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: rendering %s: %w", domain.ErrDocumentExport, format, err)
	}
	return data, nil
}

// ExportWorksheet renders and saves the worksheet.
func (s *ExportService) ExportWorksheet(ctx context.Context, format domain.ExportFormat) (string, error) {
	return s.export(ctx, s.WorksheetDocument(ctx), format, "worksheet")
}

// ExportJourneyResult renders and saves a journey result.
func (s *ExportService) ExportJourneyResult(
	ctx context.Context,
	journey domain.JourneyType,
	answers domain.JourneyAnswers,
	result *domain.JourneyResult,
	format domain.ExportFormat,
) (string, error) {
	if !journey.IsValid() {
		err := fmt.Errorf("%w: %w: unknown journey type %q", domain.ErrDocumentExport, domain.ErrInvalidInput, journey)
		s.notifyFailure("journey results", err)
		return "", err
	}
	if result == nil {
		err := fmt.Errorf("%w: %w: no result to export", domain.ErrDocumentExport, domain.ErrInvalidInput)
		s.notifyFailure("journey results", err)
		return "", err
	}

	doc := s.builder.BuildJourneyResultDocument(journey, answers, result)
	return s.export(ctx, doc, format, "journey results")
}

func (s *ExportService) export(ctx context.Context, doc *domain.Document, format domain.ExportFormat, what string) (string, error) {
	if s.saver == nil {
		err := fmt.Errorf("%w: %w: no file saver configured", domain.ErrDocumentExport, domain.ErrNotImplemented)
		s.notifyFailure(what, err)
		return "", err
	}

	data, err := s.Render(doc, format)
	if err != nil {
		s.notifyFailure(what, err)
		return "", err
	}

	name := doc.FileName + "." + format.String()
	path, err := s.saver.Save(ctx, name, data)
	if err != nil {
		err = fmt.Errorf("%w: saving %s: %w", domain.ErrDocumentExport, name, err)
		s.notifyFailure(what, err)
		return "", err
	}

	logger.Info("exported %s to %s (%d bytes)", what, path, len(data))
	s.notify(domain.Notification{
		Type:     domain.NotificationSuccess,
		Title:    "Export complete",
		Message:  fmt.Sprintf("Saved your %s to %s.", what, path),
		Duration: exportNotificationDuration,
	})
	return path, nil
}

func (s *ExportService) notifyFailure(what string, err error) {
	logger.Error("export %s: %v", what, err)
	s.notify(domain.Notification{
		Type:    domain.NotificationError,
		Title:   "Export failed",
		Message: fmt.Sprintf("We couldn't export your %s. Please try again.", what),
	})
}

func (s *ExportService) notify(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
