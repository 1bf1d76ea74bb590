package driven

import "context"

// TextStore reads and writes whole texts by name.
//
// What a name means is up to the implementation: a file-system path for the
// file store, an arbitrary key for the memory store. Callers should hold a
// TextStore rather than a concrete type so either can be substituted.
type TextStore interface {
	// WriteText stores content under name, fully replacing any prior content.
	// Readers observe either the old or the new content, never a mix.
	// Returns domain.ErrIO if the medium rejects the write.
	WriteText(name, content string) error

	// ReadText returns the content currently stored under name.
	// Returns domain.ErrNotFound if nothing is stored under name, and
	// domain.ErrIO for any other medium failure.
	ReadText(name string) (string, error)
}

// TextLister lists the names held by a TextStore.
type TextLister interface {
	// ListNames returns the sorted names matching pattern.
	// '?' matches one rune and '*' any run of runes. A pattern without
	// wildcards returns itself if present, and an empty list otherwise.
	ListNames(pattern string) ([]string, error)
}

// TextWatcher notifies callers when the text stored under a name changes.
type TextWatcher interface {
	// Watch calls onChange with the full new content each time name is
	// written. It blocks until ctx is cancelled, returning nil, or until
	// the watch fails.
	Watch(ctx context.Context, name string, onChange func(content string)) error
}
