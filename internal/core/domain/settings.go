package domain

import "io/fs"

// DefaultFileMode is the permission set for files created by the file backend.
const DefaultFileMode fs.FileMode = 0o644

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Store StoreSettings `json:"store"`
	Log   LogSettings   `json:"log"`
}

// StoreSettings configures which TextStore serves commands.
type StoreSettings struct {
	// Backend selects the storage medium.
	Backend Backend `json:"backend"`

	// FileMode is applied to files the file backend creates.
	FileMode fs.FileMode `json:"file_mode"`
}

// LogSettings configures diagnostic output.
type LogSettings struct {
	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose"`
}

// DefaultAppSettings returns settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Store: StoreSettings{
			Backend:  DefaultBackend,
			FileMode: DefaultFileMode,
		},
	}
}

// Validate checks that the settings can be applied.
func (s AppSettings) Validate() error {
	if !s.Store.Backend.IsValid() {
		return ErrUnsupportedType
	}
	if s.Store.FileMode&^fs.ModePerm != 0 || s.Store.FileMode&0o400 == 0 {
		return ErrInvalidInput
	}
	return nil
}
