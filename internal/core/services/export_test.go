package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/notify"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
)

// stubRenderer renders the document title.
type stubRenderer struct {
	format domain.ExportFormat
	err    error
	panic  bool
}

func (r *stubRenderer) Render(doc *domain.Document) ([]byte, error) {
	if r.panic {
		panic("font missing")
	}
	if r.err != nil {
		return nil, r.err
	}
	return []byte(doc.Title + "|" + doc.FileName), nil
}

func (r *stubRenderer) Format() domain.ExportFormat { return r.format }

// stubSaver records saved files.
type stubSaver struct {
	err   error
	files map[string][]byte
}

func newStubSaver() *stubSaver {
	return &stubSaver{files: make(map[string][]byte)}
}

func (s *stubSaver) Save(_ context.Context, name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.files[name] = data
	return "/exports/" + name, nil
}

func newTestExportService(t *testing.T, saver *stubSaver, renderers ...*stubRenderer) (*ExportService, *WorksheetService, *notify.Recorder) {
	t.Helper()
	ws, _, rec := newTestWorksheetService(t)
	if len(renderers) == 0 {
		renderers = []*stubRenderer{{format: domain.ExportPDF}, {format: domain.ExportMarkdown}}
	}
	var saverPort driven.FileSaver
	if saver != nil {
		saverPort = saver
	}
	svc := NewExportService(ws, saverPort, rec)
	for _, r := range renderers {
		svc.renderers[r.format] = r
	}
	return svc, ws, rec
}

func TestNewExportService(t *testing.T) {
	svc := NewExportService(nil, nil, nil, &stubRenderer{format: domain.ExportPDF}, nil)

	require.NotNil(t, svc)
	assert.Len(t, svc.renderers, 1)
	assert.NotNil(t, svc.builder)
}

func TestExportService_WorksheetDocument(t *testing.T) {
	svc, ws, _ := newTestExportService(t, newStubSaver())
	ctx := context.Background()
	_, err := ws.AddItem(ctx, tileDraft("Market Research"))
	require.NoError(t, err)

	doc := svc.WorksheetDocument(ctx)

	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "Market Research", doc.Sections[1].Heading)
}

func TestExportService_ExportWorksheet(t *testing.T) {
	saver := newStubSaver()
	svc, ws, rec := newTestExportService(t, saver)
	ctx := context.Background()
	_, _ = ws.AddItem(ctx, tileDraft("Market Research"))

	path, err := svc.ExportWorksheet(ctx, domain.ExportPDF)

	require.NoError(t, err)
	assert.Equal(t, "/exports/squareone-worksheet.pdf", path)
	assert.Equal(t, "My SquareOne Worksheet|squareone-worksheet", string(saver.files["squareone-worksheet.pdf"]))

	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationSuccess, n.Type)
	assert.Contains(t, n.Message, path)
}

func TestExportService_ExportWorksheet_UnsupportedFormat(t *testing.T) {
	svc, _, rec := newTestExportService(t, newStubSaver(), &stubRenderer{format: domain.ExportPDF})

	_, err := svc.ExportWorksheet(context.Background(), domain.ExportMarkdown)

	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	n, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationError, n.Type)
}

func TestExportService_RenderFailure(t *testing.T) {
	renderErr := errors.New("out of memory")
	svc, ws, _ := newTestExportService(t, newStubSaver(), &stubRenderer{format: domain.ExportPDF, err: renderErr})
	ctx := context.Background()
	_, _ = ws.AddItem(ctx, tileDraft("A"))
	before := ws.Worksheet(ctx)

	_, err := svc.ExportWorksheet(ctx, domain.ExportPDF)

	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	assert.ErrorIs(t, err, renderErr)
	assert.Equal(t, before, ws.Worksheet(ctx), "worksheet untouched")
}

func TestExportService_RenderPanicIsRecovered(t *testing.T) {
	svc, _, _ := newTestExportService(t, newStubSaver(), &stubRenderer{format: domain.ExportPDF, panic: true})

	_, err := svc.ExportWorksheet(context.Background(), domain.ExportPDF)

	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	assert.Contains(t, err.Error(), "font missing")
}

func TestExportService_SaveFailureIsRetryable(t *testing.T) {
	saver := newStubSaver()
	saver.err = errors.New("disk full")
	svc, _, rec := newTestExportService(t, saver)
	ctx := context.Background()

	_, err := svc.ExportWorksheet(ctx, domain.ExportMarkdown)
	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	n, _ := rec.Last()
	assert.Equal(t, domain.NotificationError, n.Type)

	saver.err = nil
	path, err := svc.ExportWorksheet(ctx, domain.ExportMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "/exports/squareone-worksheet.md", path)
}

func TestExportService_NoSaver(t *testing.T) {
	svc, _, _ := newTestExportService(t, nil)

	_, err := svc.ExportWorksheet(context.Background(), domain.ExportPDF)

	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestExportService_ExportJourneyResult(t *testing.T) {
	saver := newStubSaver()
	svc, _, _ := newTestExportService(t, saver)
	result := &domain.JourneyResult{KeyTakeaways: []string{"x"}}

	path, err := svc.ExportJourneyResult(
		context.Background(), domain.JourneyStart, domain.JourneyAnswers{"businessName": "Acme"}, result, domain.ExportPDF,
	)

	require.NoError(t, err)
	assert.Equal(t, "/exports/squareone-start-journey-results.pdf", path)
	assert.Equal(t, "Your Start Journey Results|squareone-start-journey-results",
		string(saver.files["squareone-start-journey-results.pdf"]))
}

func TestExportService_ExportJourneyResult_InvalidInput(t *testing.T) {
	svc, _, _ := newTestExportService(t, newStubSaver())
	ctx := context.Background()

	_, err := svc.ExportJourneyResult(ctx, "grow", nil, &domain.JourneyResult{}, domain.ExportPDF)
	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.ExportJourneyResult(ctx, domain.JourneyStart, nil, nil, domain.ExportPDF)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportService_Render(t *testing.T) {
	svc, _, _ := newTestExportService(t, newStubSaver())
	doc := &domain.Document{Title: "T", FileName: "f"}

	data, err := svc.Render(doc, domain.ExportMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "T|f", string(data))
}
