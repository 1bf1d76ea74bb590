package mcp

import (
	"github.com/custodia-labs/textstore/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Text reads, writes, and lists named texts.
	Text driving.TextService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Text == nil {
		return ErrMissingTextService
	}
	return nil
}
