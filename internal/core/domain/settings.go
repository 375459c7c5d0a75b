package domain

const unknownDescription = "Unknown"

// StorageBackend selects where the worksheet is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite stores the worksheet record in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageFile stores the worksheet record in a JSON file.
	StorageFile StorageBackend = "file"

	// StorageMemory keeps the worksheet for the current process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageFile, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageSQLite:
		return "SQLite database"
	case StorageFile:
		return "JSON file"
	case StorageMemory:
		return "In-memory (not persisted)"
	default:
		return unknownDescription
	}
}

// ExportFormat selects the document renderer.
type ExportFormat string

// Available export formats.
const (
	ExportPDF      ExportFormat = "pdf"
	ExportMarkdown ExportFormat = "md"
)

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	return f == ExportPDF || f == ExportMarkdown
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// StorageSettings holds worksheet persistence settings.
type StorageSettings struct {
	Backend StorageBackend
}

// ExportSettings holds document export settings.
type ExportSettings struct {
	// Directory is where exported files are written.
	// Empty means the current working directory.
	Directory string

	Format ExportFormat
}

// ShareSettings holds deep-link settings.
type ShareSettings struct {
	// BaseURL is the journey page that shareable links point at.
	BaseURL string
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Storage StorageSettings
	Export  ExportSettings
	Share   ShareSettings
}

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Storage: StorageSettings{Backend: StorageSQLite},
		Export:  ExportSettings{Format: ExportPDF},
		Share:   ShareSettings{BaseURL: "https://squareonejourney.com/journey/start"},
	}
}
