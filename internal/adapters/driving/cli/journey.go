package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Answer a journey and get guidance",
	Long: `Each journey asks a few questions about your business and turns the
answers into takeaways, next steps, and resources.

Journeys: explore, start, integrate.`,
}

var journeyFieldsCmd = &cobra.Command{
	Use:   "fields [journey]",
	Short: "List the questions a journey asks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runJourneyFields,
}

var journeyResultCmd = &cobra.Command{
	Use:   "result [journey]",
	Short: "Generate guidance from your answers",
	Long: `Generate guidance from answers given as key=value pairs:
  squareone journey result start -a businessName="Blue Door Bakery" -a challenge="funding"

Use --export to also save the result as a document.`,
	Args: cobra.ExactArgs(1),
	RunE: runJourneyResult,
}

func init() {
	journeyResultCmd.Flags().StringArrayP("answer", "a", nil, "answer as key=value (repeatable)")
	journeyResultCmd.Flags().String("export", "", "also export the result: pdf or md")

	journeyCmd.AddCommand(journeyFieldsCmd)
	journeyCmd.AddCommand(journeyResultCmd)
	rootCmd.AddCommand(journeyCmd)
}

func runJourneyFields(cmd *cobra.Command, args []string) error {
	if journeyService == nil {
		return errJourneyNotConfigured
	}

	journeys := domain.JourneyTypes()
	if len(args) == 1 {
		journeys = []domain.JourneyType{domain.JourneyType(strings.ToLower(args[0]))}
	}

	for _, j := range journeys {
		fields, err := journeyService.Fields(j)
		if err != nil {
			return fmt.Errorf("failed to list fields: %w", err)
		}
		cmd.Printf("[%s]\n", j.DisplayName())
		for _, f := range fields {
			cmd.Printf("  %-14s %s\n", f.Key, f.Label)
		}
		cmd.Println()
	}
	return nil
}

func runJourneyResult(cmd *cobra.Command, args []string) error {
	if journeyService == nil {
		return errJourneyNotConfigured
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
	printResult(cmd, journey, result)

	format, _ := cmd.Flags().GetString("export")
	if format == "" {
		return nil
	}
	if exportService == nil {
		return errExportNotConfigured
	}
	path, err := exportService.ExportJourneyResult(cmd.Context(), journey, answers, result, domain.ExportFormat(format))
	if err != nil {
		return err
	}
	cmd.Printf("\nExported to %s\n", path)
	return nil
}

// parseAnswers reads key=value pairs. Later pairs win.
func parseAnswers(raw []string) (domain.JourneyAnswers, error) {
	answers := make(domain.JourneyAnswers, len(raw))
	for _, r := range raw {
		key, value, ok := strings.Cut(r, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: answer %q must be key=value", domain.ErrInvalidInput, r)
		}
		answers[key] = strings.TrimSpace(value)
	}
	return answers, nil
}

func printResult(cmd *cobra.Command, journey domain.JourneyType, r *domain.JourneyResult) {
	cmd.Printf("Your %s Journey Results\n\n", journey.DisplayName())

	cmd.Println("Key Takeaways")
	for _, t := range r.KeyTakeaways {
		cmd.Printf("  • %s\n", t)
	}

	cmd.Println("\nNext Steps")
	for i, s := range r.NextSteps {
		cmd.Printf("  %d. %s\n", i+1, s)
	}

	if len(r.Resources) > 0 {
		cmd.Println("\nRecommended Resources")
		for _, res := range r.Resources {
			cmd.Printf("  %s\n    %s\n", res.Name, res.URL)
		}
	}
}
