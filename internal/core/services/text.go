package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/textstore/internal/core/domain"
	"github.com/custodia-labs/textstore/internal/core/ports/driven"
	"github.com/custodia-labs/textstore/internal/core/ports/driving"
	"github.com/custodia-labs/textstore/internal/logger"
)

// Ensure TextService implements the interface.
var _ driving.TextService = (*TextService)(nil)

// TextService reads and writes named texts through a driven.TextStore.
type TextService struct {
	store   driven.TextStore
	backend domain.Backend
}

// NewTextService creates a text service over store.
func NewTextService(store driven.TextStore, backend domain.Backend) *TextService {
	return &TextService{
		store:   store,
		backend: backend,
	}
}

// Read returns the text stored under name.
func (s *TextService) Read(name string) (string, error) {
	logger.Debug("read %q from %s store", name, s.backend)

	content, err := s.store.ReadText(name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("nothing stored under %q", name)
		} else {
			logger.Warn("read %q failed: %v", name, err)
		}
		return "", err
	}

	logger.Debug("read %d bytes from %q", len(content), name)
	return content, nil
}

// Write stores content under name.
func (s *TextService) Write(name, content string) error {
	logger.Debug("write %d bytes to %q in %s store", len(content), name, s.backend)

	if err := s.store.WriteText(name, content); err != nil {
		logger.Warn("write %q failed: %v", name, err)
		return err
	}
	return nil
}

// List returns the names matching pattern.
func (s *TextService) List(pattern string) ([]string, error) {
	lister, ok := s.store.(driven.TextLister)
	if !ok {
		return nil, fmt.Errorf("%w: %s store cannot list names", domain.ErrNotImplemented, s.backend)
	}

	names, err := lister.ListNames(pattern)
	if err != nil {
		logger.Warn("list %q failed: %v", pattern, err)
		return nil, err
	}

	logger.Debug("pattern %q matched %d names", pattern, len(names))
	return names, nil
}

// Watch reports each new content of name until ctx is cancelled.
func (s *TextService) Watch(ctx context.Context, name string, onChange func(content string)) error {
	watcher, ok := s.store.(driven.TextWatcher)
	if !ok {
		return fmt.Errorf("%w: %s store cannot watch names", domain.ErrNotImplemented, s.backend)
	}

	logger.Info("watching %q", name)
	return watcher.Watch(ctx, name, func(content string) {
		logger.Debug("%q changed (%d bytes)", name, len(content))
		onChange(content)
	})
}

// Backend reports which storage medium serves this service.
func (s *TextService) Backend() domain.Backend {
	return s.backend
}
