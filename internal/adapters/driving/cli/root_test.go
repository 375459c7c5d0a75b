package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squareone-journey/squareone-cli/internal/core/services"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := commandNames(rootCmd)

	for _, want := range []string{"worksheet", "tiles", "journey", "export", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_ShowsHomeMenu(t *testing.T) {
	out, err := execute(t)

	require.NoError(t, err)
	assert.Contains(t, out, "SquareOne Journey")
	assert.Contains(t, out, "squareone tiles stages")
}

func TestLoadConfig_FromFlags(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { logger.SetVerbose(false) })

	var got Config
	SetBootstrap(func(cfg Config) (*Services, func(), error) {
		got = cfg
		return &Services{}, nil, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(nil)
	})

	_, err := execute(t, "--data-dir", dir, "--verbose", "version")
	require.NoError(t, err)

	assert.Equal(t, dir, got.DataDir)
	assert.True(t, got.Verbose)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SQUAREONE_DATA_DIR", dir)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
}

func TestLoadConfig_DefaultDataDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".squareone"), cfg.DataDir)
}

func TestBootstrap_ErrorStopsCommand(t *testing.T) {
	SetBootstrap(func(Config) (*Services, func(), error) {
		return nil, nil, errors.New("disk full")
	})
	t.Cleanup(func() { SetBootstrap(nil) })

	_, err := execute(t, "version")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestBootstrap_CleanupRuns(t *testing.T) {
	cleaned := false
	SetBootstrap(func(Config) (*Services, func(), error) {
		return &Services{Journey: services.NewJourneyService()}, func() { cleaned = true }, nil
	})
	t.Cleanup(func() {
		SetBootstrap(nil)
		SetServices(nil)
	})

	_, err := execute(t, "journey", "fields", "start")

	require.NoError(t, err)
	assert.True(t, cleaned)
}
