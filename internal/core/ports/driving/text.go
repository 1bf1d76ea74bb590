package driving

import (
	"context"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// TextService provides named text storage to external actors.
type TextService interface {
	// Read returns the text stored under name.
	Read(name string) (string, error)

	// Write stores content under name, replacing prior content.
	Write(name, content string) error

	// List returns the names matching pattern.
	// Returns domain.ErrNotImplemented if the store cannot list.
	List(pattern string) ([]string, error)

	// Watch streams the content of name on every change until ctx ends.
	// Returns domain.ErrNotImplemented if the store cannot watch.
	Watch(ctx context.Context, name string, onChange func(content string)) error

	// Backend reports which storage medium serves this service.
	Backend() domain.Backend
}
