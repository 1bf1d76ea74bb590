package file

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

func TestNewTextStore(t *testing.T) {
	store := NewTextStore()
	require.NotNil(t, store)
	assert.Equal(t, domain.DefaultFileMode, store.FileMode())
}

func TestNewTextStore_WithFileMode(t *testing.T) {
	store := NewTextStore(WithFileMode(0o600 | fs.ModeDir))
	assert.Equal(t, fs.FileMode(0o600), store.FileMode())
}

func TestTextStore_Greeting(t *testing.T) {
	dir := t.TempDir()
	store := NewTextStore()
	greeting := filepath.Join(dir, "greeting")

	require.NoError(t, store.WriteText(greeting, "hello world"))

	got, err := store.ReadText(greeting)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = store.ReadText(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTextStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"single_line", "hello"},
		{"newlines", "line one\nline two\r\nline three\n"},
		{"no_trailing_newline", "last line"},
		{"unicode", "héllo wörld 日本語 🚀"},
		{"large", strings.Repeat("0123456789abcdef\n", 64*1024)},
	}

	dir := t.TempDir()
	store := NewTextStore()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name := filepath.Join(dir, tt.name+".txt")
			require.NoError(t, store.WriteText(name, tt.content))

			got, err := store.ReadText(name)
			require.NoError(t, err)
			assert.Equal(t, tt.content, got)
		})
	}
}

func TestTextStore_WriteText_RawLayout(t *testing.T) {
	name := filepath.Join(t.TempDir(), "raw.txt")
	store := NewTextStore()

	require.NoError(t, store.WriteText(name, "no header\nno footer"))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, []byte("no header\nno footer"), data)
}

func TestTextStore_Overwrite(t *testing.T) {
	name := filepath.Join(t.TempDir(), "note.txt")
	store := NewTextStore()

	require.NoError(t, store.WriteText(name, "a much longer first version"))
	require.NoError(t, store.WriteText(name, "v2"))

	got, err := store.ReadText(name)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestTextStore_WriteText_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewTextStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.WriteText(filepath.Join(dir, "note.txt"), strings.Repeat("x", i)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "note.txt", entries[0].Name())
}

func TestTextStore_Durability_NewInstance(t *testing.T) {
	name := filepath.Join(t.TempDir(), "durable.txt")

	require.NoError(t, NewTextStore().WriteText(name, "persisted\n"))

	got, err := NewTextStore().ReadText(name)
	require.NoError(t, err)
	assert.Equal(t, "persisted\n", got)
}

func TestTextStore_ReadText_SeesExternalWrites(t *testing.T) {
	name := filepath.Join(t.TempDir(), "shared.txt")
	store := NewTextStore()

	require.NoError(t, store.WriteText(name, "ours"))
	require.NoError(t, os.WriteFile(name, []byte("theirs"), 0o644))

	got, err := store.ReadText(name)
	require.NoError(t, err)
	assert.Equal(t, "theirs", got)
}

func TestTextStore_ReadText_NotFound(t *testing.T) {
	dir := t.TempDir()
	store := NewTextStore()

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.txt")},
		{"missing directory", filepath.Join(dir, "nope", "missing.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.ReadText(tt.path)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.NotErrorIs(t, err, domain.ErrIO)
			assert.Empty(t, got)
		})
	}
}

func TestTextStore_ReadText_ThroughRegularFile(t *testing.T) {
	dir := t.TempDir()
	store := NewTextStore()
	file := filepath.Join(dir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := store.ReadText(filepath.Join(file, "child.txt"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTextStore_ReadText_InvalidText(t *testing.T) {
	name := filepath.Join(t.TempDir(), "binary.bin")
	require.NoError(t, os.WriteFile(name, []byte{0xff, 0xfe, 0x00, 0x41}, 0o644))

	_, err := NewTextStore().ReadText(name)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidText)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestTextStore_ReadText_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := NewTextStore().ReadText(dir)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestTextStore_ReadText_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}

	name := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(name, []byte("secret"), 0o000))

	_, err := NewTextStore().ReadText(name)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestTextStore_WriteText_MissingParent(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "not", "created", "note.txt")

	err := NewTextStore().WriteText(name, "content")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.NotErrorIs(t, err, domain.ErrNotFound)

	_, statErr := os.Stat(filepath.Join(dir, "not"))
	assert.True(t, errors.Is(statErr, fs.ErrNotExist), "parent directories must not be created")
}

func TestTextStore_WriteText_Directory(t *testing.T) {
	dir := t.TempDir()

	err := NewTextStore().WriteText(dir, "content")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestTextStore_WriteText_ReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}

	dir := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := NewTextStore().WriteText(filepath.Join(dir, "note.txt"), "content")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestTextStore_WriteText_InvalidText(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bad.txt")

	err := NewTextStore().WriteText(name, "bad \xff bytes")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidText)

	_, statErr := os.Stat(name)
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestTextStore_WriteText_FileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}

	dir := t.TempDir()
	store := NewTextStore(WithFileMode(0o600))

	created := filepath.Join(dir, "created.txt")
	require.NoError(t, store.WriteText(created, "new"))
	info, err := os.Stat(created)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())

	existing := filepath.Join(dir, "existing.txt")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o640))
	require.NoError(t, os.Chmod(existing, 0o640))
	require.NoError(t, store.WriteText(existing, "new"))
	info, err = os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o640), info.Mode().Perm())
}

func TestTextStore_WriteText_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	store := NewTextStore()
	require.NoError(t, store.WriteText(link, "new"))

	info, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&fs.ModeSymlink, "link must survive the write")

	got, err := store.ReadText(target)
	require.NoError(t, err)
	assert.Equal(t, "new", got)
}

func TestTextStore_WriteText_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	dir := t.TempDir()
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.Symlink("later.txt", link))

	store := NewTextStore()
	require.NoError(t, store.WriteText(link, "created through link"))

	got, err := store.ReadText(filepath.Join(dir, "later.txt"))
	require.NoError(t, err)
	assert.Equal(t, "created through link", got)
}
