package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/record"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Manage your saved worksheet",
	Long:  `List, add, annotate, or remove the items saved to your worksheet.`,
}

var worksheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved items",
	Args:  cobra.NoArgs,
	RunE:  runWorksheetList,
}

var worksheetAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Save a new item",
	Long: `Save a guide, resource, or tile to the worksheet.

Resources are given as name=url pairs:
  squareone worksheet add "Pricing notes" --type guide --resource "SBA=https://www.sba.gov"`,
	Args: cobra.ExactArgs(1),
	RunE: runWorksheetAdd,
}

var worksheetRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorksheetRemove,
}

var worksheetNotesCmd = &cobra.Command{
	Use:   "notes [item-id] [notes]",
	Short: "Replace an item's notes",
	Long:  `Replace the notes on a saved item. Pass "" to clear them.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runWorksheetNotes,
}

var worksheetClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every item",
	Long:  `Remove every item from the worksheet. Asks for confirmation unless --yes is given.`,
	Args:  cobra.NoArgs,
	RunE:  runWorksheetClear,
}

// confirmInput is read by the clear prompt.
var confirmInput io.Reader = os.Stdin

// isInteractive reports whether the clear prompt can be shown.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func init() {
	worksheetListCmd.Flags().Bool("json", false, "output as JSON")

	worksheetAddCmd.Flags().StringP("description", "d", "", "item description")
	worksheetAddCmd.Flags().StringP("type", "t", string(domain.ItemTypeGuide), "item type: tile, guide, or resource")
	worksheetAddCmd.Flags().StringP("journey", "j", "", "journey: explore, start, or integrate")
	worksheetAddCmd.Flags().Int("level", 0, "hierarchy level (0 = none)")
	worksheetAddCmd.Flags().StringP("notes", "n", "", "notes to save with the item")
	worksheetAddCmd.Flags().StringArrayP("resource", "r", nil, "resource link as name=url (repeatable)")

	worksheetClearCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")

	worksheetCmd.AddCommand(worksheetListCmd)
	worksheetCmd.AddCommand(worksheetAddCmd)
	worksheetCmd.AddCommand(worksheetRemoveCmd)
	worksheetCmd.AddCommand(worksheetNotesCmd)
	worksheetCmd.AddCommand(worksheetClearCmd)
	rootCmd.AddCommand(worksheetCmd)
}

func runWorksheetList(cmd *cobra.Command, _ []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}

	items := worksheetService.Items(cmd.Context())

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		data, err := record.EncodeItems(items)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(items) == 0 {
		cmd.Println("Your worksheet is empty.")
		cmd.Println("Save tiles with 'squareone tiles save [tile-id]'.")
		return nil
	}

	cmd.Println("Your worksheet:")
	cmd.Println()
	for i := range items {
		printItem(cmd, &items[i])
	}
	cmd.Printf("Total: %d items\n", len(items))
	return nil
}

func printItem(cmd *cobra.Command, item *domain.WorksheetItem) {
	cmd.Printf("  %s\n", item.ID)
	cmd.Printf("    Title: %s\n", item.Title)
	cmd.Printf("    Type: %s\n", item.Type)
	if item.JourneyType != "" {
		cmd.Printf("    Journey: %s\n", item.JourneyType.DisplayName())
	}
	if item.HasNotes() {
		cmd.Printf("    Notes: %s\n", item.Notes)
	}
	cmd.Printf("    Saved: %s\n", item.CreatedAt.Local().Format("Jan 2, 2006 15:04"))
	cmd.Println()
}

func runWorksheetAdd(cmd *cobra.Command, args []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}

	flags := cmd.Flags()
	description, _ := flags.GetString("description")
	itemType, _ := flags.GetString("type")
	journey, _ := flags.GetString("journey")
	level, _ := flags.GetInt("level")
	notes, _ := flags.GetString("notes")
	rawResources, _ := flags.GetStringArray("resource")

	resources, err := parseResources(rawResources)
	if err != nil {
		return err
	}

	draft := domain.ItemDraft{
		Title:       args[0],
		Description: description,
		Type:        domain.ItemType(strings.ToLower(itemType)),
		JourneyType: domain.JourneyType(strings.ToLower(journey)),
		Notes:       notes,
		Resources:   resources,
	}
	if level > 0 {
		draft.Level = &level
	}

	item, err := worksheetService.AddItem(cmd.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to save item: %w", err)
	}

	cmd.Printf("Saved %q as %s\n", item.Title, item.ID)
	return nil
}

// parseResources reads name=url pairs.
func parseResources(raw []string) ([]domain.ResourceLink, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	links := make([]domain.ResourceLink, 0, len(raw))
	for _, r := range raw {
		name, url, ok := strings.Cut(r, "=")
		name, url = strings.TrimSpace(name), strings.TrimSpace(url)
		if !ok || name == "" || url == "" {
			return nil, fmt.Errorf("%w: resource %q must be name=url", domain.ErrInvalidInput, r)
		}
		links = append(links, domain.ResourceLink{Name: name, URL: url})
	}
	return links, nil
}

func runWorksheetRemove(cmd *cobra.Command, args []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}

	if !worksheetService.RemoveItem(cmd.Context(), args[0]) {
		cmd.Printf("No worksheet item %s; nothing removed.\n", args[0])
		return nil
	}
	cmd.Printf("Removed item: %s\n", args[0])
	return nil
}

func runWorksheetNotes(cmd *cobra.Command, args []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}

	if !worksheetService.UpdateNotes(cmd.Context(), args[0], args[1]) {
		cmd.Printf("No worksheet item %s; notes unchanged.\n", args[0])
		return nil
	}
	if strings.TrimSpace(args[1]) == "" {
		cmd.Printf("Cleared notes on %s\n", args[0])
	} else {
		cmd.Printf("Updated notes on %s\n", args[0])
	}
	return nil
}

func runWorksheetClear(cmd *cobra.Command, _ []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}

	count := len(worksheetService.Items(cmd.Context()))
	if count == 0 {
		cmd.Println("Your worksheet is already empty.")
		return nil
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !isInteractive() {
			return fmt.Errorf("%w: refusing to clear %d items without --yes", domain.ErrInvalidInput, count)
		}
		cmd.Printf("Remove all %d items from your worksheet? This cannot be undone. [y/N]: ", count)
		if !confirmed(bufio.NewReader(confirmInput)) {
			cmd.Println("Cancelled.")
			return nil
		}
	}

	removed := worksheetService.ClearAll(cmd.Context())
	cmd.Printf("Removed %d items.\n", removed)
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func confirmed(reader *bufio.Reader) bool {
	answer, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
