package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/catalog"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/config/file"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/notify"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/render/markdown"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/render/pdf"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/saver"
	filestore "github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/file"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/memory"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driven/storage/sqlite"
	"github.com/squareone-journey/squareone-cli/internal/adapters/driving/cli"
	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
	"github.com/squareone-journey/squareone-cli/internal/core/services"
	"github.com/squareone-journey/squareone-cli/internal/logger"
)

// bootstrap builds the services for cfg. Storage follows the persisted
// settings, so a backend change applies from the next start.
func bootstrap(cfg cli.Config) (*cli.Services, func(), error) {
	logger.Section("Startup")

	configStore, err := file.NewConfigStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening settings: %w", err)
	}
	watchCtx, stopWatching := context.WithCancel(context.Background())
	if err := configStore.Watch(watchCtx); err != nil {
		logger.Warn("settings will not reload while running: %v", err)
	}
	settings := services.NewSettingsService(configStore)
	current, err := settings.Get()
	if err != nil {
		stopWatching()
		return nil, nil, err
	}

	dataDir := filepath.Join(cfg.DataDir, "data")
	logger.Info("worksheet storage: %s in %s", current.Storage.Backend, dataDir)
	store, closeStore, err := openWorksheetStore(current.Storage.Backend, dataDir)
	if err != nil {
		stopWatching()
		return nil, nil, err
	}

	tiles, err := catalog.Default()
	if err != nil {
		stopWatching()
		closeStore()
		return nil, nil, fmt.Errorf("loading tiles: %w", err)
	}

	router := notify.NewRouter(notify.NewConsole(os.Stderr))
	cli.SetTUINotifications(router)

	worksheet := services.NewWorksheetService(store, router)
	export := services.NewExportService(
		worksheet,
		&settingsSaver{settings: settings},
		router,
		pdf.New(),
		markdown.New(),
	)

	return &cli.Services{
		Worksheet: worksheet,
		Tiles:     services.NewTileService(tiles),
		Journey:   services.NewJourneyService(),
		Export:    export,
		Settings:  settings,
	}, func() {
		stopWatching()
		closeStore()
	}, nil
}

func openWorksheetStore(backend domain.StorageBackend, dataDir string) (driven.WorksheetStore, func(), error) {
	logger.Debug("worksheet storage: %s", backend)

	switch backend {
	case domain.StorageFile:
		store, err := filestore.NewWorksheetStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening worksheet file: %w", err)
		}
		return store, func() {}, nil

	case domain.StorageMemory:
		return memory.NewWorksheetStore(), func() {}, nil

	default:
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("opening worksheet database: %w", err)
		}
		return db.WorksheetStore(), func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing worksheet database: %v", err)
			}
		}, nil
	}
}

// settingsSaver writes exports to the directory currently set in settings.
type settingsSaver struct {
	settings driving.SettingsService
}

func (s *settingsSaver) Save(ctx context.Context, name string, data []byte) (string, error) {
	dir := ""
	if current, err := s.settings.Get(); err == nil {
		dir = current.Export.Directory
	}
	return saver.NewDirectory(dir).Save(ctx, name, data)
}
