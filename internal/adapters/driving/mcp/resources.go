package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

const (
	// URIScheme is the custom URI scheme for textstore resources.
	uriScheme = "textstore://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "texts/{name}",
		Name:        "text",
		Description: "Content of a stored text; the name is URL-escaped",
		MIMEType:    "text/plain",
	}, s.handleTextResource)
}

// handleTextResource returns the content stored under the name in the URI.
func (s *Server) handleTextResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractTextName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Text.Read(name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading text: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     content,
		}},
	}, nil
}

// extractTextName extracts the unescaped name from a URI like textstore://texts/{name}.
func extractTextName(uri string) string {
	const prefix = uriScheme + "texts/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}

// TextURI returns the resource URI for a stored text.
func TextURI(name string) string {
	return uriScheme + "texts/" + url.PathEscape(name)
}
