package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/custodia-labs/textstore/internal/core/domain"
	"github.com/custodia-labs/textstore/internal/core/ports/driven"
)

// Ensure TextStore implements the interfaces.
var (
	_ driven.TextStore   = (*TextStore)(nil)
	_ driven.TextLister  = (*TextStore)(nil)
	_ driven.TextWatcher = (*TextStore)(nil)
)

// TextStore is a file-system implementation of driven.TextStore.
// It holds only immutable options; the file system is the sole state.
type TextStore struct {
	fileMode fs.FileMode
}

// Option configures a TextStore.
type Option func(*TextStore)

// WithFileMode sets the permissions used when a write creates a new file.
// Overwrites keep the existing file's permissions.
func WithFileMode(mode fs.FileMode) Option {
	return func(s *TextStore) {
		s.fileMode = mode.Perm()
	}
}

// NewTextStore creates a new file-backed text store.
func NewTextStore(opts ...Option) *TextStore {
	s := &TextStore{fileMode: domain.DefaultFileMode}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FileMode returns the permissions given to newly created files.
func (s *TextStore) FileMode() fs.FileMode {
	return s.fileMode
}

// WriteText writes content to the file at name, replacing it entirely.
func (s *TextStore) WriteText(name, content string) error {
	if !utf8.ValidString(content) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidText, name)
	}

	target, mode, err := s.resolveTarget(name)
	if err != nil {
		return ioError(name, err)
	}

	tmpPath := filepath.Join(filepath.Dir(target), "."+filepath.Base(target)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return ioError(name, err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return ioError(name, err)
	}
	// OpenFile is subject to the umask.
	if err := f.Chmod(mode); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return ioError(name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return ioError(name, err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return ioError(name, err)
	}

	return nil
}

// ReadText reads the whole file at name as UTF-8 text.
func (s *TextStore) ReadText(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		if isNotExist(err) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotFound, name)
		}
		return "", ioError(name, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidText, name)
	}

	return string(data), nil
}

// resolveTarget follows a symlink at name so the rename replaces the link's
// target rather than the link, and picks the mode for the new file.
func (s *TextStore) resolveTarget(name string) (string, fs.FileMode, error) {
	info, err := os.Lstat(name)
	if err != nil {
		if isNotExist(err) {
			return name, s.fileMode, nil
		}
		return "", 0, err
	}

	target := name
	if info.Mode()&fs.ModeSymlink != 0 {
		target, err = filepath.EvalSymlinks(name)
		if err != nil {
			if isNotExist(err) {
				// Dangling link: write where it points.
				link, lerr := os.Readlink(name)
				if lerr != nil {
					return "", 0, lerr
				}
				if !filepath.IsAbs(link) {
					link = filepath.Join(filepath.Dir(name), link)
				}
				return link, s.fileMode, nil
			}
			return "", 0, err
		}
		if info, err = os.Stat(target); err != nil {
			return "", 0, err
		}
	}

	if info.IsDir() {
		return "", 0, &fs.PathError{Op: "write", Path: name, Err: syscall.EISDIR}
	}

	return target, info.Mode().Perm(), nil
}

// isNotExist reports whether err means nothing exists at the path, including
// a path that runs through a regular file.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// ioError wraps a medium failure as domain.ErrIO while keeping the OS cause
// reachable through errors.Is.
func ioError(name string, err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		err = linkErr.Err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrIO, name, err)
}
