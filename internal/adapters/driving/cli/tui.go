package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/tui"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// tuiLogFile receives verbose logs while the TUI owns the terminal.
const tuiLogFile = "tui.log"

// tuiNotifications feeds service notifications into the TUI. When nil the
// TUI shows only its own status messages.
var tuiNotifications tui.NotificationSource

// dataDir is the resolved data directory of the running command.
var dataDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for SquareOne Journey.

Browse the Start journey, read tiles, save them to your worksheet, and
manage your notes with the keyboard.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  Esc      - Back
  s        - Save tile to worksheet
  w        - Open worksheet
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// SetTUINotifications sets where the TUI reads notifications from.
func SetTUINotifications(src tui.NotificationSource) {
	tuiNotifications = src
}

func init() {
	tuiCmd.Flags().String("link", "", "open a shared link on start")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Worksheet:     worksheetService,
		Tiles:         tileService,
		Export:        exportService,
		Settings:      settingsService,
		Notifications: tuiNotifications,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if link, _ := cmd.Flags().GetString("link"); link != "" {
		if err := app.OpenLink(link); err != nil {
			return fmt.Errorf("failed to open link: %w", err)
		}
	}

	restoreLogs := redirectTUILogs(dataDir)
	defer restoreLogs()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectTUILogs keeps log lines out of the alt-screen. Verbose logs are
// appended to tui.log in dir; otherwise they are dropped.
func redirectTUILogs(dir string) (restore func()) {
	if !logger.IsVerbose() || dir == "" {
		return logger.Redirect(io.Discard)
	}
	f, err := os.OpenFile(filepath.Join(dir, tuiLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return logger.Redirect(io.Discard)
	}
	restoreLogs := logger.Redirect(f)
	return func() {
		restoreLogs()
		_ = f.Close()
	}
}
