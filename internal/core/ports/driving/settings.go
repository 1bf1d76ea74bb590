package driving

import (
	"io/fs"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetBackend updates the storage backend.
	SetBackend(backend domain.Backend) error

	// SetFileMode updates the permissions for files the file backend creates.
	SetFileMode(mode fs.FileMode) error

	// SetVerbose enables or disables verbose logging.
	SetVerbose(verbose bool) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
