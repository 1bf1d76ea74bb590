package services

import (
	"fmt"
	"io/fs"

	"github.com/custodia-labs/textstore/internal/core/domain"
	"github.com/custodia-labs/textstore/internal/core/ports/driven"
	"github.com/custodia-labs/textstore/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStoreBackend  = "store.backend"
	keyStoreFileMode = "store.file_mode"
	keyLogVerbose    = "log.verbose"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Unset or unrecognised values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Store: domain.StoreSettings{
			Backend:  s.getBackend(defaults.Store.Backend),
			FileMode: s.getFileMode(defaults.Store.FileMode),
		},
		Log: domain.LogSettings{
			Verbose: s.configStore.GetBool(keyLogVerbose),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := s.configStore.Set(keyStoreBackend, settings.Store.Backend.String()); err != nil {
		return fmt.Errorf("save store backend: %w", err)
	}
	if err := s.configStore.Set(keyStoreFileMode, int64(settings.Store.FileMode)); err != nil {
		return fmt.Errorf("save store file_mode: %w", err)
	}
	if err := s.configStore.Set(keyLogVerbose, settings.Log.Verbose); err != nil {
		return fmt.Errorf("save log verbose: %w", err)
	}

	return nil
}

// SetBackend updates the storage backend.
func (s *SettingsService) SetBackend(backend domain.Backend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: backend %q", domain.ErrUnsupportedType, backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Store.Backend = backend
	return s.Save(settings)
}

// SetFileMode updates the permissions for files the file backend creates.
func (s *SettingsService) SetFileMode(mode fs.FileMode) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Store.FileMode = mode
	return s.Save(settings)
}

// SetVerbose enables or disables verbose logging.
func (s *SettingsService) SetVerbose(verbose bool) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.Log.Verbose = verbose
	return s.Save(settings)
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (s *SettingsService) getBackend(defaultVal domain.Backend) domain.Backend {
	backend, err := domain.ParseBackend(s.configStore.GetString(keyStoreBackend))
	if err != nil {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getFileMode(defaultVal fs.FileMode) fs.FileMode {
	if _, ok := s.configStore.Get(keyStoreFileMode); !ok {
		return defaultVal
	}
	mode := fs.FileMode(s.configStore.GetInt(keyStoreFileMode))
	if mode&^fs.ModePerm != 0 || mode&0o400 == 0 {
		return defaultVal
	}
	return mode
}
