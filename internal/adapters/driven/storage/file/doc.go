// Package file provides the file-system implementation of driven.TextStore.
//
// A name is used directly as a file-system path. The store keeps no state
// between calls: every read and write is a fresh file-system operation, and
// a new TextStore sees exactly what any other process left on disk.
//
// Writes go to a temporary file in the target's directory and are renamed
// over the target, so readers never observe a partially written text.
// Missing parent directories are not created.
package file
