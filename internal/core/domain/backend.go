package domain

import (
	"fmt"
	"strings"
)

const unknownDescription = "Unknown"

// Backend selects the storage medium behind a TextStore.
type Backend string

// Available backends.
const (
	// BackendFile stores each text as a file on the real file system.
	BackendFile Backend = "file"

	// BackendMemory keeps texts in a process-local map.
	BackendMemory Backend = "memory"
)

// DefaultBackend is used when nothing is configured.
const DefaultBackend = BackendFile

// ParseBackend converts a user-supplied string into a Backend.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	if !b.IsValid() {
		return "", fmt.Errorf("%w: backend %q", ErrUnsupportedType, s)
	}
	return b, nil
}

// IsValid returns true if the backend is recognised.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendMemory:
		return true
	default:
		return false
	}
}

// IsPersistent returns true if writes outlive the process.
func (b Backend) IsPersistent() bool {
	return b == BackendFile
}

// String returns the string representation.
func (b Backend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b Backend) Description() string {
	switch b {
	case BackendFile:
		return "File (names are file-system paths)"
	case BackendMemory:
		return "Memory (process-local, discarded on exit)"
	default:
		return unknownDescription
	}
}
