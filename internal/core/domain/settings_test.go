package domain

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	settings := DefaultAppSettings()

	assert.Equal(t, BackendFile, settings.Store.Backend)
	assert.Equal(t, fs.FileMode(0o644), settings.Store.FileMode)
	assert.False(t, settings.Log.Verbose)
	assert.NoError(t, settings.Validate())
}

func TestAppSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*AppSettings)
		wantErr error
	}{
		{"memory backend", func(s *AppSettings) { s.Store.Backend = BackendMemory }, nil},
		{"private files", func(s *AppSettings) { s.Store.FileMode = 0o600 }, nil},
		{"unknown backend", func(s *AppSettings) { s.Store.Backend = "s3" }, ErrUnsupportedType},
		{"owner cannot read", func(s *AppSettings) { s.Store.FileMode = 0o200 }, ErrInvalidInput},
		{"non-permission bits", func(s *AppSettings) { s.Store.FileMode = fs.ModeDir | 0o644 }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultAppSettings()
			tt.modify(&settings)

			err := settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
