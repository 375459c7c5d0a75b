package driving

import "github.com/squareone-journey/squareone-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetStorageBackend selects the worksheet storage backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetExportFormat selects the default export format.
	SetExportFormat(format domain.ExportFormat) error

	// SetExportDirectory selects where exported files are written.
	SetExportDirectory(dir string) error

	// SetShareBaseURL sets the page that shareable links point at.
	SetShareBaseURL(baseURL string) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
