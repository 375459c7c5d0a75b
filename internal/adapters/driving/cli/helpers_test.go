package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/catalog"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/notify"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/render/markdown"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/render/pdf"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/saver"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/memory"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
)

// testEnv exposes the adapters behind the wired services.
type testEnv struct {
	store     *memory.WorksheetStore
	notes     *notify.Recorder
	saver     *saver.Directory
	worksheet *services.WorksheetService
}

// setupTestServices wires real services over in-memory adapters and
// restores the previous wiring when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	env := &testEnv{
		store: memory.NewWorksheetStore(),
		notes: notify.NewRecorder(),
		saver: saver.NewDirectory(t.TempDir()),
	}
	env.worksheet = services.NewWorksheetService(env.store, env.notes)

	prev := &Services{
		Worksheet: worksheetService,
		Tiles:     tileService,
		Journey:   journeyService,
		Export:    exportService,
		Settings:  settingsService,
	}
	SetServices(&Services{
		Worksheet: env.worksheet,
		Tiles:     services.NewTileService(cat),
		Journey:   services.NewJourneyService(),
		Export:    services.NewExportService(env.worksheet, env.saver, env.notes, pdf.New(), markdown.New()),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
	})
	t.Cleanup(func() { SetServices(prev) })
	return env
}

// execute runs the root command with args and returns its output.
// Flag values are reset afterwards so tests do not leak into each other.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func commandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	return names
}
