package mcp

import (
	"context"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// mockTextService is a mock implementation of driving.TextService.
type mockTextService struct {
	content string
	names   []string
	err     error

	written map[string]string
	pattern string
}

func (m *mockTextService) Read(_ string) (string, error) {
	return m.content, m.err
}

func (m *mockTextService) Write(name, content string) error {
	if m.err != nil {
		return m.err
	}
	if m.written == nil {
		m.written = make(map[string]string)
	}
	m.written[name] = content
	return nil
}

func (m *mockTextService) List(pattern string) ([]string, error) {
	m.pattern = pattern
	return m.names, m.err
}

func (m *mockTextService) Watch(_ context.Context, _ string, _ func(string)) error {
	return domain.ErrNotImplemented
}

func (m *mockTextService) Backend() domain.Backend {
	return domain.BackendMemory
}
