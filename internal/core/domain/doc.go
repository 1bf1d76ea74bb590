// Package domain defines the core types and errors for textstore.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines:
//
//   - Error kinds: ErrNotFound, ErrIO and the name pattern errors
//   - Backend: which TextStore implementation to use
//   - Wildcard helpers shared by every TextLister
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
