// Package mcp provides an MCP (Model Context Protocol) server adapter for textstore.
// It lets AI assistants read, write, and list named texts through the
// configured TextStore.
package mcp

import "errors"

// ErrMissingTextService is returned when the text service is not provided.
var ErrMissingTextService = errors.New("mcp: text service is required")
