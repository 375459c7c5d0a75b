package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
)

var tilesCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Browse journey tiles",
	Long: `Browse the stages and sub-tiles of a journey, open shared links,
and save tiles to your worksheet.

Only the Start journey is available. Any other journey returns you to the
home menu.`,
}

var tilesStagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List the journey's stages",
	Args:  cobra.NoArgs,
	RunE:  runTilesStages,
}

var tilesShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a stage or tile",
	Long: `Show a stage with its sub-tiles, or a single tile in detail.

The id may name a stage, a sub-tile of the stage given with --stage, or any
tile in the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: runTilesShow,
}

var tilesOpenCmd = &cobra.Command{
	Use:   "open [link]",
	Short: "Open a shared link",
	Long: `Open a link shared from SquareOne Journey, for example
  squareone tiles open "https://squareonejourney.com/journey/start?stage=stage-2&tile=legal-structure"

A bare query such as "stage=stage-1" also works.`,
	Args: cobra.ExactArgs(1),
	RunE: runTilesOpen,
}

var tilesLinkCmd = &cobra.Command{
	Use:   "link [id]",
	Short: "Print a shareable link to a stage or tile",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesLink,
}

var tilesSaveCmd = &cobra.Command{
	Use:   "save [id]",
	Short: "Save a tile to your worksheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesSave,
}

func init() {
	tilesCmd.PersistentFlags().String("journey", string(domain.JourneyStart), "journey route to browse")
	for _, c := range []*cobra.Command{tilesShowCmd, tilesLinkCmd, tilesSaveCmd} {
		c.Flags().String("stage", "", "stage to resolve the tile within")
	}
	tilesSaveCmd.Flags().StringP("notes", "n", "", "notes to save with the tile")

	tilesCmd.AddCommand(tilesStagesCmd)
	tilesCmd.AddCommand(tilesShowCmd)
	tilesCmd.AddCommand(tilesOpenCmd)
	tilesCmd.AddCommand(tilesLinkCmd)
	tilesCmd.AddCommand(tilesSaveCmd)
	rootCmd.AddCommand(tilesCmd)
}

// errRedirected stops a command after the home menu has been shown.
var errRedirected = errors.New("redirected to home")

// openNavigator starts a navigation session for the --journey route.
// Unsupported routes print a notice and the home menu.
func openNavigator(cmd *cobra.Command) (driving.TileNavigator, error) {
	if tileService == nil {
		return nil, errTilesNotConfigured
	}

	route, _ := cmd.Flags().GetString("journey")
	nav, err := tileService.Navigator(route)
	if errors.Is(err, domain.ErrUnsupportedJourneyRoute) {
		cmd.Printf("The %q journey is not available yet. Returning to the home menu.\n\n", route)
		printHome(cmd)
		return nil, errRedirected
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open journey: %w", err)
	}
	return nav, nil
}

// navigate moves to id, first selecting --stage when given. Without
// --stage, sub-tiles are looked for under each stage in turn.
func navigate(cmd *cobra.Command, nav driving.TileNavigator, id string) error {
	stage, _ := cmd.Flags().GetString("stage")
	if stage != "" {
		if !nav.SelectStage(stage) {
			return fmt.Errorf("unknown stage %q: %w", stage, domain.ErrNotFound)
		}
	}
	if nav.NavigateTo(id) {
		return nil
	}

	if stage == "" {
		for _, s := range nav.Stages() {
			nav.BackToStages()
			if nav.SelectStage(s.ID) && nav.NavigateTo(id) {
				return nil
			}
		}
		nav.BackToStages()
	}
	return fmt.Errorf("no stage or tile %q: %w", id, domain.ErrNotFound)
}

func runTilesStages(cmd *cobra.Command, _ []string) error {
	nav, err := openNavigator(cmd)
	if err != nil {
		return ignoreRedirect(err)
	}
	printView(cmd, nav)
	return nil
}

func runTilesShow(cmd *cobra.Command, args []string) error {
	nav, err := openNavigator(cmd)
	if err != nil {
		return ignoreRedirect(err)
	}
	if err := navigate(cmd, nav, args[0]); err != nil {
		return err
	}
	printView(cmd, nav)
	return nil
}

func runTilesOpen(cmd *cobra.Command, args []string) error {
	nav, err := openNavigator(cmd)
	if err != nil {
		return ignoreRedirect(err)
	}

	link, err := services.ParseDeepLink(args[0])
	if err != nil {
		return fmt.Errorf("failed to read link: %w", err)
	}
	if !nav.ResolveDeepLink(link) {
		cmd.Printf("Unknown stage %q. Showing all stages.\n\n", link.StageCode)
	}
	printView(cmd, nav)
	return nil
}

func runTilesLink(cmd *cobra.Command, args []string) error {
	nav, err := openNavigator(cmd)
	if err != nil {
		return ignoreRedirect(err)
	}
	if err := navigate(cmd, nav, args[0]); err != nil {
		return err
	}

	base := domain.DefaultAppSettings().Share.BaseURL
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			base = s.Share.BaseURL
		}
	}

	link, err := nav.ShareLink(base)
	if err != nil {
		return fmt.Errorf("failed to build link: %w", err)
	}
	cmd.Println(link)
	return nil
}

func runTilesSave(cmd *cobra.Command, args []string) error {
	if worksheetService == nil {
		return errWorksheetNotConfigured
	}
	nav, err := openNavigator(cmd)
	if err != nil {
		return ignoreRedirect(err)
	}
	if err := navigate(cmd, nav, args[0]); err != nil {
		return err
	}

	tile := nav.CurrentTile()
	if tile == nil {
		tile = nav.CurrentStage()
	}
	draft := domain.DraftFromTile(tile)
	draft.Notes, _ = cmd.Flags().GetString("notes")

	item, err := worksheetService.AddItem(cmd.Context(), draft)
	if err != nil {
		return fmt.Errorf("failed to save tile: %w", err)
	}
	cmd.Printf("Saved %q as %s\n", item.Title, item.ID)
	return nil
}

func ignoreRedirect(err error) error {
	if errors.Is(err, errRedirected) {
		return nil
	}
	return err
}

// printView prints whatever the navigator currently shows.
func printView(cmd *cobra.Command, nav driving.TileNavigator) {
	switch nav.State() {
	case domain.ViewingStageList:
		cmd.Printf("%s Journey\n\n", nav.Journey().DisplayName())
		for i, stage := range nav.Stages() {
			code, _ := services.StageCodeForID(stage.ID)
			cmd.Printf("  %d. %s\n", i+1, stage.Title)
			cmd.Printf("     id: %s  link: %s\n", stage.ID, code)
			if stage.Description != "" {
				cmd.Printf("     %s\n", stage.Description)
			}
		}

	case domain.ViewingSubTileList:
		stage := nav.CurrentStage()
		cmd.Printf("%s\n", stage.Title)
		cmd.Println(strings.Repeat("=", len(stage.Title)))
		if stage.Description != "" {
			cmd.Printf("%s\n", stage.Description)
		}
		cmd.Println()
		for _, sub := range nav.SubTiles() {
			cmd.Printf("  - %s (%s)\n", sub.Title, sub.ID)
		}

	case domain.ViewingTileDetail:
		printTile(cmd, nav.CurrentTile())
	}
}

func printTile(cmd *cobra.Command, t *domain.Tile) {
	cmd.Printf("%s\n", t.Title)
	cmd.Println(strings.Repeat("=", len(t.Title)))
	cmd.Printf("id: %s  level: %d\n", t.ID, t.Level)
	if len(t.Tags) > 0 {
		cmd.Printf("tags: %s\n", strings.Join(t.Tags, ", "))
	}
	if t.Description != "" {
		cmd.Printf("\n%s\n", t.Description)
	}

	switch c := t.Content.(type) {
	case domain.TextContent:
		cmd.Printf("\n%s\n", strings.TrimRight(c.Body, "\n"))
	case domain.VideoContent:
		cmd.Printf("\nVideo: %s\n  %s\n", c.Title, c.URL)
	case domain.InteractiveContent:
		cmd.Printf("\nInteractive: %s (open in the TUI)\n", c.Title)
	}

	if len(t.Resources) > 0 {
		cmd.Println("\nResources:")
		for _, r := range t.Resources {
			cmd.Printf("  - %s: %s\n", r.Name, r.URL)
		}
	}
}
