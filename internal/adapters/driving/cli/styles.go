package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Colour palette for command output.
const (
	colourPrimary   = lipgloss.Color("#7C3AED")
	colourSecondary = lipgloss.Color("#06B6D4")
	colourMuted     = lipgloss.Color("#6C7086")
)

// outputStyles styles command output. Styles render as plain text when the
// writer is not a colour terminal.
type outputStyles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Muted   lipgloss.Style
}

// newOutputStyles creates styles for output written to w.
func newOutputStyles(w io.Writer) *outputStyles {
	r := lipgloss.NewRenderer(w)

	return &outputStyles{
		Title:   r.NewStyle().Bold(true).Foreground(colourPrimary),
		Section: r.NewStyle().Bold(true).Foreground(colourSecondary),
		Muted:   r.NewStyle().Foreground(colourMuted),
	}
}
