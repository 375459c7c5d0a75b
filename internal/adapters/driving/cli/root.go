// Package cli implements the squareone command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired into the commands.
var (
	worksheetService driving.WorksheetService
	tileService      driving.TileService
	journeyService   driving.JourneyService
	exportService    driving.ExportService
	settingsService  driving.SettingsService
)

// Services bundles the core services the commands call into.
type Services struct {
	Worksheet driving.WorksheetService
	Tiles     driving.TileService
	Journey   driving.JourneyService
	Export    driving.ExportService
	Settings  driving.SettingsService
}

// Config is the process configuration resolved from flags and
// SQUAREONE_* environment variables.
type Config struct {
	// DataDir holds config.toml and the worksheet store.
	DataDir string
	Verbose bool
}

// BootstrapFunc builds services once the process configuration is known.
// The returned cleanup runs after the command finishes.
type BootstrapFunc func(cfg Config) (*Services, func(), error)

var (
	bootstrap BootstrapFunc
	cleanup   func()
	procCfg   = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "squareone",
	Short: "Plan and track your small-business journey",
	Long: `SquareOne Journey guides you through starting a business one step at a time.

Browse the Start journey tiles, save what matters to your worksheet, add
notes, and export everything as a PDF or Markdown document.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	},
	RunE: runHome,
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "directory for settings and saved data (default ~/.squareone)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging")

	procCfg.SetEnvPrefix("SQUAREONE")
	procCfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	procCfg.AutomaticEnv()
	_ = procCfg.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	_ = procCfg.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices wires services directly, bypassing bootstrap.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	worksheetService = s.Worksheet
	tileService = s.Tiles
	journeyService = s.Journey
	exportService = s.Export
	settingsService = s.Settings
}

// SetBootstrap registers the function that builds services before any
// command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// LoadConfig resolves the process configuration.
func LoadConfig() (Config, error) {
	cfg := Config{
		DataDir: procCfg.GetString("data-dir"),
		Verbose: procCfg.GetBool("verbose"),
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".squareone")
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func initServices(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	logger.SetVerbose(cfg.Verbose)
	dataDir = cfg.DataDir

	if bootstrap == nil {
		return nil
	}
	services, done, err := bootstrap(cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	SetServices(services)
	cleanup = done
	logger.Debug("data directory: %s", cfg.DataDir)
	return nil
}

// runHome prints the home menu.
func runHome(cmd *cobra.Command, _ []string) error {
	printHome(cmd)
	return nil
}

func printHome(cmd *cobra.Command) {
	cmd.Println("SquareOne Journey")
	cmd.Println("=================")
	cmd.Println()
	cmd.Println("  squareone tiles stages      Browse the Start journey")
	cmd.Println("  squareone worksheet list    Review your saved items")
	cmd.Println("  squareone journey fields    See what each journey asks")
	cmd.Println("  squareone export worksheet  Export your worksheet")
	cmd.Println("  squareone tui               Open the interactive view")
	cmd.Println()
	cmd.Println("Run 'squareone help' for every command.")
}

var (
	errWorksheetNotConfigured = errors.New("worksheet service not configured")
	errTilesNotConfigured     = errors.New("tile service not configured")
	errJourneyNotConfigured   = errors.New("journey service not configured")
	errExportNotConfigured    = errors.New("export service not configured")
	errSettingsNotConfigured  = errors.New("settings service not configured")
)
