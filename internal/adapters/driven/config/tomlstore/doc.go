// Package tomlstore provides a TOML implementation of driven.ConfigStore.
//
// The TOML document is read and written as a single text through a
// driven.TextStore, so configuration lives wherever that store puts it:
// a file for the file backend, or process memory in tests.
package tomlstore
