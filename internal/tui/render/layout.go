package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	tileWidth  = 16
	tileHeight = 3
	// GridColumns is the number of channel tiles per row on the home screen.
	GridColumns = 4
	minWidth    = 40
)

// Overlay centres box over a width x height area, replacing the page behind it.
func Overlay(box string, width, height int) string {
	if width < minWidth {
		width = minWidth
	}
	if height < lipgloss.Height(box) {
		height = lipgloss.Height(box)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// Truncate shortens s to at most n cells, adding an ellipsis.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// PageFrame stacks a title, body and optional footer lines.
func PageFrame(theme Theme, title, subtitle, body string) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(title))
	if subtitle != "" {
		b.WriteString("  ")
		b.WriteString(theme.Muted.Render(subtitle))
	}
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}

// FitHeight pads or trims s to exactly h lines.
func FitHeight(s string, h int) string {
	if h <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
