package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long:  `View and change where the worksheet is stored, how documents are exported, and where shared links point.`,
	RunE:  runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  storage.backend   sqlite, file, or memory (takes effect on next start)
  export.format     pdf or md
  export.directory  where exported files are written ("" = current directory)
  share.base_url    the journey page shared links point at`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

// settingSetters maps each settable key to its service call.
var settingSetters = map[string]func(value string) error{
	services.KeyStorageBackend: func(v string) error {
		return settingsService.SetStorageBackend(domain.StorageBackend(strings.ToLower(v)))
	},
	services.KeyExportFormat: func(v string) error {
		return settingsService.SetExportFormat(domain.ExportFormat(strings.ToLower(v)))
	},
	services.KeyExportDirectory: func(v string) error {
		return settingsService.SetExportDirectory(v)
	},
	services.KeyShareBaseURL: func(v string) error {
		return settingsService.SetShareBaseURL(v)
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	cmd.Println()

	cmd.Println("[Export]")
	cmd.Printf("  Format: %s\n", settings.Export.Format)
	dir := settings.Export.Directory
	if dir == "" {
		dir = "(current directory)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	cmd.Println()

	cmd.Println("[Share]")
	cmd.Printf("  Base URL: %s\n", settings.Share.BaseURL)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := strings.ToLower(args[0])
	set, ok := settingSetters[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q (one of %s)", domain.ErrInvalidInput, args[0], strings.Join(settingKeys(), ", "))
	}
	if err := set(args[1]); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, args[1])
	if key == services.KeyStorageBackend {
		cmd.Println("The new storage backend is used from the next run.")
	}
	return nil
}

func settingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for k := range settingSetters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
