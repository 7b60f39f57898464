package render

import (
	"bytes"
	"fmt"
	stdhtml "html"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/aretw0/scribe/pkg/core"
)

// HTML renders notes as Markdown inside an <article> styled with inline CSS.
// Raw HTML in the content is dropped by goldmark.
type HTML struct {
	md goldmark.Markdown
}

// NewHTML returns an HTML renderer.
func NewHTML() *HTML {
	return &HTML{
		md: goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps())),
	}
}

// CSS returns the inline declarations for f.
func CSS(f core.Formatting) string {
	var family, size, transform, align string

	switch f.FontFamily {
	case core.FontSans:
		family = "sans-serif"
	case core.FontSerif:
		family = "serif"
	case core.FontMono:
		family = "monospace"
	}

	switch f.FontSize {
	case core.SizeSmall:
		size = "0.875rem"
	case core.SizeNormal:
		size = "1rem"
	case core.SizeLarge:
		size = "1.25rem"
	case core.SizeXLarge:
		size = "1.5rem"
	}

	switch f.TextCase {
	case core.CaseNormal:
		transform = "none"
	case core.CaseUpper:
		transform = "uppercase"
	case core.CaseLower:
		transform = "lowercase"
	case core.CaseCapitalize:
		transform = "capitalize"
	}

	switch f.TextAlign {
	case core.AlignLeft:
		align = "left"
	case core.AlignCenter:
		align = "center"
	case core.AlignRight:
		align = "right"
	case core.AlignJustify:
		align = "justify"
	}

	return fmt.Sprintf("font-family: %s; font-size: %s; text-transform: %s; text-align: %s",
		family, size, transform, align)
}

// Render writes one note to w.
func (h *HTML) Render(w io.Writer, n core.Note) error {
	if err := n.Formatting.Validate(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := h.md.Convert([]byte(n.Content), &body); err != nil {
		return fmt.Errorf("failed to convert note %s: %w", n.ID, err)
	}

	_, err := fmt.Fprintf(w, "<article class=\"note\" id=\"note-%s\" style=\"%s\">\n%s</article>\n",
		stdhtml.EscapeString(n.ID), CSS(n.Formatting), body.String())
	return err
}

// RenderAll writes every note in order, wrapped in a <section>.
func (h *HTML) RenderAll(w io.Writer, notes []core.Note) error {
	var sb strings.Builder
	sb.WriteString("<section class=\"notes\">\n")
	for _, n := range notes {
		if err := h.Render(&sb, n); err != nil {
			return err
		}
	}
	sb.WriteString("</section>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
