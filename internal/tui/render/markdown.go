package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Markdown renders md for the given theme and wrap width.
func Markdown(md string, theme Theme, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.GlamourStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}

// MarkdownOrPlain renders md, falling back to the raw text on failure.
func MarkdownOrPlain(md string, theme Theme, width int) string {
	out, err := Markdown(md, theme, width)
	if err != nil {
		return md
	}
	return out
}
