package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/squareone-journey/squareone-cli/internal/core/domain"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driven"
	"github.com/squareone-journey/squareone-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyStorageBackend  = "storage.backend"
	KeyExportFormat    = "export.format"
	KeyExportDirectory = "export.directory"
	KeyShareBaseURL    = "share.base_url"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or unrecognised
// values fall back to their defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()
	if s.configStore == nil {
		return &defaults, nil
	}

	return &domain.AppSettings{
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
		},
		Export: domain.ExportSettings{
			Directory: s.configStore.GetString(KeyExportDirectory), // empty means working directory
			Format:    s.getFormat(defaults.Export.Format),
		},
		Share: domain.ShareSettings{
			BaseURL: s.getString(KeyShareBaseURL, defaults.Share.BaseURL),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}

	if err := s.configStore.Set(KeyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(KeyExportFormat, settings.Export.Format.String()); err != nil {
		return fmt.Errorf("save export format: %w", err)
	}
	if err := s.configStore.Set(KeyExportDirectory, settings.Export.Directory); err != nil {
		return fmt.Errorf("save export directory: %w", err)
	}
	if err := s.configStore.Set(KeyShareBaseURL, settings.Share.BaseURL); err != nil {
		return fmt.Errorf("save share base_url: %w", err)
	}

	return nil
}

// SetStorageBackend selects the worksheet storage backend.
// Takes effect the next time the application starts.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, backend)
	}
	return s.update(func(a *domain.AppSettings) { a.Storage.Backend = backend })
}

// SetExportFormat selects the default export format.
func (s *SettingsService) SetExportFormat(format domain.ExportFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: export format %q", domain.ErrInvalidInput, format)
	}
	return s.update(func(a *domain.AppSettings) { a.Export.Format = format })
}

// SetExportDirectory selects where exported files are written.
func (s *SettingsService) SetExportDirectory(dir string) error {
	return s.update(func(a *domain.AppSettings) { a.Export.Directory = strings.TrimSpace(dir) })
}

// SetShareBaseURL sets the page that shareable links point at.
func (s *SettingsService) SetShareBaseURL(baseURL string) error {
	baseURL = strings.TrimSpace(baseURL)
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: share base url %q must be an absolute URL", domain.ErrInvalidInput, baseURL)
	}
	return s.update(func(a *domain.AppSettings) { a.Share.BaseURL = baseURL })
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) update(fn func(*domain.AppSettings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	fn(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getFormat(defaultVal domain.ExportFormat) domain.ExportFormat {
	format := domain.ExportFormat(s.configStore.GetString(KeyExportFormat))
	if !format.IsValid() {
		return defaultVal
	}
	return format
}
