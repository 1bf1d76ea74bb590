package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrIO", ErrIO},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
		{"ErrUnsupportedType", ErrUnsupportedType},
		{"ErrInvalidText", ErrInvalidText},
		{"ErrNonexistentParent", ErrNonexistentParent},
		{"ErrNonUTF8", ErrNonUTF8},
		{"ErrWildcardInParent", ErrWildcardInParent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestErrNotFound(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
	assert.False(t, errors.Is(ErrNotFound, ErrIO))
}

func TestErrIO(t *testing.T) {
	assert.Equal(t, "io error", ErrIO.Error())
	assert.False(t, errors.Is(ErrIO, ErrNotFound))
}

// Encoding failures are IO errors, never NotFound.
func TestErrInvalidText_IsIO(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidText, ErrIO))
	assert.False(t, errors.Is(ErrInvalidText, ErrNotFound))
	assert.Equal(t, "io error: invalid text encoding", ErrInvalidText.Error())
}

func TestPatternErrors_AreInvalidInput(t *testing.T) {
	for _, err := range []error{ErrNonexistentParent, ErrNonUTF8, ErrWildcardInParent} {
		t.Run(err.Error(), func(t *testing.T) {
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.False(t, errors.Is(err, ErrIO))
		})
	}
}

// TestErrors_Wrapping mirrors how adapters attach both the kind and the OS cause.
func TestErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: %s: %w", ErrIO, "/etc/shadow", fs.ErrPermission)

	assert.True(t, errors.Is(wrapped, ErrIO))
	assert.True(t, errors.Is(wrapped, fs.ErrPermission))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "/etc/shadow")
}
