package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent failures callers are expected to branch on.
var (
	// ErrNotFound indicates no content exists under the requested name.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates the storage medium failed for a reason other than absence.
	ErrIO = errors.New("io error")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates the store does not offer an optional capability.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown storage backend.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrInvalidText indicates stored bytes are not valid UTF-8 text.
	// It is an ErrIO.
	ErrInvalidText = fmt.Errorf("%w: invalid text encoding", ErrIO)

	// Name pattern errors.

	// ErrNonexistentParent indicates the directory a pattern points into does not exist.
	ErrNonexistentParent = fmt.Errorf("%w: nonexistent parent", ErrInvalidInput)

	// ErrNonUTF8 indicates a name or pattern is not valid UTF-8.
	ErrNonUTF8 = fmt.Errorf("%w: name is not valid UTF-8", ErrInvalidInput)

	// ErrWildcardInParent indicates a wildcard outside the last path component.
	ErrWildcardInParent = fmt.Errorf("%w: wildcard in parent", ErrInvalidInput)
)
