package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export documents",
	Long: `Export your worksheet or a journey result as a PDF or Markdown file.

Files are written to the export directory from settings, or the current
directory when none is set.`,
}

var exportWorksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Export your worksheet",
	Args:  cobra.NoArgs,
	RunE:  runExportWorksheet,
}

var exportJourneyCmd = &cobra.Command{
	Use:   "journey [journey]",
	Short: "Export a journey result",
	Long: `Generate a journey result from key=value answers and export it:
  squareone export journey start -a businessName="Blue Door Bakery" --format md`,
	Args: cobra.ExactArgs(1),
	RunE: runExportJourney,
}

func init() {
	exportCmd.PersistentFlags().StringP("format", "f", "", "pdf or md (default from settings)")
	exportWorksheetCmd.Flags().Bool("stdout", false, "write the document to stdout instead of a file")
	exportJourneyCmd.Flags().StringArrayP("answer", "a", nil, "answer as key=value (repeatable)")

	exportCmd.AddCommand(exportWorksheetCmd)
	exportCmd.AddCommand(exportJourneyCmd)
	rootCmd.AddCommand(exportCmd)
}

// exportFormat returns --format, falling back to the saved default.
func exportFormat(cmd *cobra.Command) (domain.ExportFormat, error) {
	raw, _ := cmd.Flags().GetString("format")
	if raw != "" {
		format := domain.ExportFormat(strings.ToLower(raw))
		if !format.IsValid() {
			return "", fmt.Errorf("%w: format %q (use pdf or md)", domain.ErrInvalidInput, raw)
		}
		return format, nil
	}

	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			return s.Export.Format, nil
		}
	}
	return domain.DefaultAppSettings().Export.Format, nil
}

func runExportWorksheet(cmd *cobra.Command, _ []string) error {
	if exportService == nil {
		return errExportNotConfigured
	}
	format, err := exportFormat(cmd)
	if err != nil {
		return err
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		data, err := exportService.Render(exportService.WorksheetDocument(cmd.Context()), format)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	path, err := exportService.ExportWorksheet(cmd.Context(), format)
	if err != nil {
		return err
	}
	cmd.Printf("Exported worksheet to %s\n", path)
	return nil
}

func runExportJourney(cmd *cobra.Command, args []string) error {
	if exportService == nil {
		return errExportNotConfigured
	}
	if journeyService == nil {
		return errJourneyNotConfigured
	}
	format, err := exportFormat(cmd)
	if err != nil {
		return err
	}

	journey := domain.JourneyType(strings.ToLower(args[0]))
	raw, _ := cmd.Flags().GetStringArray("answer")
	answers, err := parseAnswers(raw)
	if err != nil {
		return err
	}
	result, err := journeyService.GenerateResult(journey, answers)
	if err != nil {
		return fmt.Errorf("failed to generate result: %w", err)
	}

	path, err := exportService.ExportJourneyResult(cmd.Context(), journey, answers, result, format)
	if err != nil {
		return err
	}
	cmd.Printf("Exported %s journey results to %s\n", journey.DisplayName(), path)
	return nil
}
