package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	enabled bool
	err     lipgloss.Style
	name    lipgloss.Style
	notice  lipgloss.Style
}

// newStyles builds styles bound to w. The renderer falls back to plain text
// when w is not a terminal.
func newStyles(w io.Writer, enabled bool) styles {
	r := lipgloss.NewRenderer(w)
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return styles{
		enabled: enabled,
		err:     base.Foreground(lipgloss.Color("9")),
		name:    base.Foreground(lipgloss.Color("12")).Bold(true),
		notice:  base.Foreground(lipgloss.Color("8")),
	}
}

func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	// Rendered line by line so multi-line text is not padded to a block.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func (s styles) diagnostic(text string) string { return s.render(s.err, text) }

func (s styles) binding(name string) string { return s.render(s.name, name) }

func (s styles) hint(text string) string { return s.render(s.notice, text) }
