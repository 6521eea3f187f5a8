// Package render draws the wiifolio screens. Functions here are pure: they
// take plain state structs and return strings.
package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/settings"
)

// Palette colours, taken from the Wii menu.
const (
	wiiBlue      = lipgloss.Color("#3b7dd9")
	wiiLightBlue = lipgloss.Color("#88c0e8")
	wiiWhite     = lipgloss.Color("#f5f5f5")
	wiiGray      = lipgloss.Color("#e8e8e8")
	wiiDark      = lipgloss.Color("#333333")
	nightBase    = lipgloss.Color("#1b1f27")
	nightPanel   = lipgloss.Color("#262c38")
	nightMuted   = lipgloss.Color("#8a94a6")
	dayMuted     = lipgloss.Color("#6b6b6b")
	red          = lipgloss.Color("#d64545")
	amber        = lipgloss.Color("#d9a23b")
	green        = lipgloss.Color("#3ba55c")
)

// Theme is the set of styles for one colour scheme.
type Theme struct {
	Name settings.Theme

	Text         lipgloss.Style
	Muted        lipgloss.Style
	Title        lipgloss.Style
	Accent       lipgloss.Style
	Tile         lipgloss.Style
	TileSelected lipgloss.Style
	TileDisabled lipgloss.Style
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	Tag          lipgloss.Style
	Modal        lipgloss.Style
	Bar          lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style

	statusStyles map[errors.Kind]lipgloss.Style

	// GlamourStyle names the glamour standard style matching this theme.
	GlamourStyle string
}

// ThemeFor returns the styles for t.
func ThemeFor(t settings.Theme) Theme {
	if t == settings.ThemeDark {
		return newTheme(settings.ThemeDark, wiiWhite, nightMuted, nightPanel, nightBase, "dark")
	}
	return newTheme(settings.ThemeLight, wiiDark, dayMuted, wiiWhite, wiiGray, "light")
}

func newTheme(name settings.Theme, fg, muted, panel, bar lipgloss.Color, glamourStyle string) Theme {
	tile := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(wiiLightBlue).
		Foreground(fg).
		Padding(0, 1).
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center)

	return Theme{
		Name:         name,
		Text:         lipgloss.NewStyle().Foreground(fg),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		Title:        lipgloss.NewStyle().Foreground(wiiBlue).Bold(true),
		Accent:       lipgloss.NewStyle().Foreground(wiiBlue),
		Tile:         tile,
		TileSelected: tile.BorderForeground(wiiBlue).BorderStyle(lipgloss.ThickBorder()).Bold(true),
		TileDisabled: tile.Foreground(muted).BorderForeground(muted),
		Row:          lipgloss.NewStyle().Foreground(fg).PaddingLeft(2),
		RowSelected:  lipgloss.NewStyle().Foreground(wiiBlue).Bold(true).PaddingLeft(0),
		Tag: lipgloss.NewStyle().
			Foreground(wiiBlue).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(wiiLightBlue).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(wiiLightBlue).
			Background(panel).
			Foreground(fg).
			Padding(1, 2),
		Bar: lipgloss.NewStyle().
			Background(bar).
			Foreground(fg).
			Padding(0, 1),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(wiiBlue).
			Padding(0, 1),
		statusStyles: map[errors.Kind]lipgloss.Style{
			errors.KindError:   lipgloss.NewStyle().Foreground(red).Bold(true),
			errors.KindWarning: lipgloss.NewStyle().Foreground(amber),
			errors.KindInfo:    lipgloss.NewStyle().Foreground(wiiBlue),
			errors.KindSuccess: lipgloss.NewStyle().Foreground(green),
		},
		GlamourStyle: glamourStyle,
	}
}

// Status returns the style for a status message kind.
func (t Theme) Status(k errors.Kind) lipgloss.Style {
	if s, ok := t.statusStyles[k]; ok {
		return s
	}
	return t.Text
}
