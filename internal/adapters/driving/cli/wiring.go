package cli

import (
	"fmt"
	"io/fs"

	"github.com/custodia-labs/textstore/internal/adapters/driven/config/tomlstore"
	"github.com/custodia-labs/textstore/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/textstore/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textstore/internal/core/domain"
	"github.com/custodia-labs/textstore/internal/core/ports/driven"
	"github.com/custodia-labs/textstore/internal/core/services"
	"github.com/custodia-labs/textstore/internal/logger"
)

// configFileMode keeps the config file private to the user.
const configFileMode fs.FileMode = 0o600

// buildServices loads configuration from configDir and builds the services.
// A non-empty backendOverride takes precedence over the configured backend.
func buildServices(configDir, backendOverride string) (*services.TextService, *services.SettingsService, error) {
	path, err := tomlstore.DefaultPath(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("locating config: %w", err)
	}

	configStore, err := tomlstore.NewConfigStore(file.NewTextStore(file.WithFileMode(configFileMode)), path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	settingsSvc := services.NewSettingsService(configStore)

	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, nil, fmt.Errorf("reading settings: %w", err)
	}
	if settings.Log.Verbose {
		logger.SetVerbose(true)
	}
	logger.Debug("config loaded from %s", configStore.Path())

	backend := settings.Store.Backend
	if backendOverride != "" {
		backend, err = domain.ParseBackend(backendOverride)
		if err != nil {
			return nil, nil, err
		}
	}

	store, err := newTextStore(backend, settings.Store.FileMode)
	if err != nil {
		return nil, nil, err
	}

	return services.NewTextService(store, backend), settingsSvc, nil
}

// newTextStore creates the TextStore for backend.
func newTextStore(backend domain.Backend, fileMode fs.FileMode) (driven.TextStore, error) {
	switch backend {
	case domain.BackendFile:
		return file.NewTextStore(file.WithFileMode(fileMode)), nil
	case domain.BackendMemory:
		logger.Warn("memory backend: texts are discarded when the process exits")
		return memory.NewTextStore(), nil
	default:
		return nil, fmt.Errorf("%w: backend %q", domain.ErrUnsupportedType, backend)
	}
}
