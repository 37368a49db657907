// Package render converts news bodies from markdown to HTML.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Markdown renders markdown text to HTML. Raw HTML in the source is escaped.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a renderer with GitHub-flavoured extensions.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
			),
		),
	}
}

// HTML renders source.
func (m *Markdown) HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
