package file

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// Watch calls onChange with the new content of name each time the file is
// created, written, or replaced. Consecutive identical contents are reported
// once. A file that disappears is skipped until it comes back.
//
// The parent directory is watched rather than the file itself so that
// atomic replaces (rename over the target) are seen.
func (s *TextStore) Watch(ctx context.Context, name string, onChange func(content string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return ioError(name, err)
	}
	defer watcher.Close()

	target := filepath.Clean(name)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return ioError(name, err)
	}

	last, err := s.ReadText(name)
	seen := err == nil
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}

			content, err := s.ReadText(name)
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if seen && content == last {
				continue
			}
			last, seen = content, true
			onChange(content)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("%w: watching %s: %w", domain.ErrIO, name, err)
		}
	}
}
