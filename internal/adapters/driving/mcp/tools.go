package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/textstore/internal/core/domain"
)

// ReadTextInput is the input schema for the read_text tool.
type ReadTextInput struct {
	Name string `json:"name" jsonschema:"the name of the text to read"`
}

// ReadTextOutput is the output schema for the read_text tool.
type ReadTextOutput struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Found   bool   `json:"found"`
}

// WriteTextInput is the input schema for the write_text tool.
type WriteTextInput struct {
	Name    string `json:"name" jsonschema:"the name to store the text under"`
	Content string `json:"content" jsonschema:"the full text; replaces any existing content"`
}

// WriteTextOutput is the output schema for the write_text tool.
type WriteTextOutput struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

// ListNamesInput is the input schema for the list_names tool.
type ListNamesInput struct {
	Pattern string `json:"pattern" jsonschema:"name pattern; ? matches one character and * any run of characters"`
}

// ListNamesOutput is the output schema for the list_names tool.
type ListNamesOutput struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "read_text",
		Description: "Read the full text stored under a name",
	}, s.handleReadText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "write_text",
		Description: "Store a text under a name, replacing any existing text",
	}, s.handleWriteText)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_names",
		Description: "List stored names matching a wildcard pattern",
	}, s.handleListNames)
}

// handleReadText handles the read_text tool invocation.
// A missing name is reported in the output rather than as a tool failure.
func (s *Server) handleReadText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ReadTextInput,
) (*mcp.CallToolResult, ReadTextOutput, error) {
	content, err := s.ports.Text.Read(input.Name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ReadTextOutput{Name: input.Name}, nil
	}
	if err != nil {
		return nil, ReadTextOutput{}, err
	}

	return nil, ReadTextOutput{
		Name:    input.Name,
		Content: content,
		Found:   true,
	}, nil
}

// handleWriteText handles the write_text tool invocation.
func (s *Server) handleWriteText(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input WriteTextInput,
) (*mcp.CallToolResult, WriteTextOutput, error) {
	if input.Name == "" {
		return nil, WriteTextOutput{}, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	if err := s.ports.Text.Write(input.Name, input.Content); err != nil {
		return nil, WriteTextOutput{}, err
	}

	return nil, WriteTextOutput{
		Name:  input.Name,
		Bytes: len(input.Content),
	}, nil
}

// handleListNames handles the list_names tool invocation.
func (s *Server) handleListNames(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ListNamesInput,
) (*mcp.CallToolResult, ListNamesOutput, error) {
	pattern := input.Pattern
	if pattern == "" {
		pattern = "*"
	}

	names, err := s.ports.Text.List(pattern)
	if err != nil {
		return nil, ListNamesOutput{}, err
	}
	if names == nil {
		names = []string{}
	}

	return nil, ListNamesOutput{
		Names: names,
		Count: len(names),
	}, nil
}
