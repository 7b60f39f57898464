package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/scribe/pkg/core"
)

// DefaultWidth is the column width used when none is given.
const DefaultWidth = 60

// Terminal renders notes as styled blocks of a fixed width.
type Terminal struct {
	renderer *lipgloss.Renderer
	width    int
}

// NewTerminal returns a renderer for w. The color profile is detected from w,
// so plain writers such as pipes and buffers get unstyled (but aligned) text.
func NewTerminal(w io.Writer, width int) *Terminal {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Terminal{renderer: lipgloss.NewRenderer(w), width: width}
}

// Style builds the lipgloss style for f.
func (t *Terminal) Style(f core.Formatting) lipgloss.Style {
	s := t.renderer.NewStyle().Width(t.width)

	switch f.FontFamily {
	case core.FontSerif:
		s = s.Italic(true)
	case core.FontMono:
		s = s.Foreground(lipgloss.Color("245"))
	case core.FontSans:
	}

	switch f.FontSize {
	case core.SizeSmall:
		s = s.Faint(true)
	case core.SizeLarge:
		s = s.Bold(true)
	case core.SizeXLarge:
		s = s.Bold(true).Underline(true)
	case core.SizeNormal:
	}

	switch f.TextAlign {
	case core.AlignCenter:
		s = s.Align(lipgloss.Center)
	case core.AlignRight:
		s = s.Align(lipgloss.Right)
	case core.AlignLeft, core.AlignJustify:
		// lipgloss has no justification; wrapped lines stay flush left.
		s = s.Align(lipgloss.Left)
	}

	return s
}

// Render returns the note content with its formatting applied.
func (t *Terminal) Render(n core.Note) (string, error) {
	if err := n.Formatting.Validate(); err != nil {
		return "", err
	}
	return t.Style(n.Formatting).Render(ApplyCase(n.Content, n.Formatting.TextCase)), nil
}
