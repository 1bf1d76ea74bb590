// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextStore: Whole-text read/write by name (file system or in-memory)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// A TextStore may also implement these; services type-assert for them
// and report domain.ErrNotImplemented when they are missing:
//
//   - TextLister: Wildcard listing of stored names
//   - TextWatcher: Change notification for a single name
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
