package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/textstore/internal/core/domain"
	"github.com/custodia-labs/textstore/internal/core/ports/driven"
)

// Ensure TextStore implements the interfaces.
var (
	_ driven.TextStore  = (*TextStore)(nil)
	_ driven.TextLister = (*TextStore)(nil)
)

// TextStore is an in-memory implementation of driven.TextStore.
// Names are arbitrary string keys. Each instance owns its own map, so two
// stores never see each other's writes. Safe for concurrent use.
type TextStore struct {
	mu    sync.RWMutex
	texts map[string]string
}

// NewTextStore creates a new, empty in-memory text store.
func NewTextStore() *TextStore {
	return &TextStore{
		texts: make(map[string]string),
	}
}

// WriteText stores content under name, replacing any prior content.
// It never fails.
func (s *TextStore) WriteText(name, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[name] = content
	return nil
}

// ReadText returns the content stored under name.
func (s *TextStore) ReadText(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, ok := s.texts[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return content, nil
}

// ListNames returns the sorted keys matching pattern.
// Keys are flat, so wildcards match across '/' as well.
func (s *TextStore) ListNames(pattern string) ([]string, error) {
	wild, err := domain.ContainsWildcards(pattern)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := []string{}
	if !wild {
		if _, ok := s.texts[pattern]; ok {
			names = append(names, pattern)
		}
		return names, nil
	}

	for name := range s.texts {
		if domain.MatchWildcard(pattern, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// Len returns the number of stored texts.
func (s *TextStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.texts)
}
