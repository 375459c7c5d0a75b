package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/saver"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

func TestExportCmd_HasSubcommands(t *testing.T) {
	assert.ElementsMatch(t, []string{"worksheet", "journey"}, commandNames(exportCmd))
}

func TestExportWorksheetCmd_Markdown(t *testing.T) {
	env := setupTestServices(t)
	_, err := env.worksheet.AddItem(context.Background(), domain.ItemDraft{
		Title: "Market Research", Type: domain.ItemTypeTile, Notes: "ask around",
	})
	require.NoError(t, err)

	out, err := execute(t, "export", "worksheet", "--format", "md")

	require.NoError(t, err)
	path := filepath.Join(env.saver.Dir(), "squareone-worksheet.md")
	assert.Contains(t, out, "Exported worksheet to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "## Market Research")
	assert.Contains(t, string(data), "ask around")
}

func TestExportWorksheetCmd_DefaultFormatFromSettings(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "export", "worksheet")

	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(env.saver.Dir(), "squareone-worksheet.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportWorksheetCmd_Stdout(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "export", "worksheet", "--format", "md", "--stdout")

	require.NoError(t, err)
	assert.Contains(t, out, "# My SquareOne Worksheet")
	assert.Contains(t, out, "| Total Items | 0 |")
}

func TestExportWorksheetCmd_InvalidFormat(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "export", "worksheet", "--format", "docx")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExportJourneyCmd(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "export", "journey", "integrate", "-a", "teamSize=4", "--format", "md")

	require.NoError(t, err)
	assert.Contains(t, out, "Exported Integrate journey results")

	data, err := os.ReadFile(filepath.Join(env.saver.Dir(), "squareone-integrate-journey-results.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "**Team Size:** 4")
}

func TestExportWorksheetCmd_SaveFailure(t *testing.T) {
	env := setupTestServices(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	*env.saver = *saver.NewDirectory(filepath.Join(blocker, "out"))

	_, err := execute(t, "export", "worksheet", "--format", "md")

	assert.ErrorIs(t, err, domain.ErrDocumentExport)
	last, ok := env.notes.Last()
	require.True(t, ok)
	assert.Equal(t, domain.NotificationError, last.Type)
}
