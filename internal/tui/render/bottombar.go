package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/icon"
	"github.com/eallis/wiifolio/internal/settings"
)

// Clock formats.
const (
	Clock12h = "12h"
	Clock24h = "24h"
)

// BottomBarState is the input for BottomBar.
type BottomBarState struct {
	Now          time.Time
	ClockFormat  string
	Socials      []content.Social
	SoundEnabled bool
	ShowBack     bool
	Width        int
}

// ClockText formats now like the console clock: "03:04 PM" or "15:04".
func ClockText(now time.Time, format string) string {
	if format == Clock24h {
		return now.Format("15:04")
	}
	return now.Format("03:04 PM")
}

// DateText formats now as "Mon, Jan 2".
func DateText(now time.Time) string {
	return now.Format("Mon, Jan 2")
}

// BottomBar renders the console strip: back hint, socials, indicators and clock.
func BottomBar(theme Theme, s BottomBarState) string {
	var left []string
	if s.ShowBack {
		left = append(left, theme.Accent.Render(icon.Glyph(icon.Home)+" esc"))
	}
	for _, social := range s.Socials {
		left = append(left, theme.Text.Render(icon.Glyph(social.Icon)+" "+social.Label))
	}

	themeIndicator := "☀ light"
	if theme.Name == settings.ThemeDark {
		themeIndicator = "☾ dark"
	}
	soundIndicator := "♪ off"
	if s.SoundEnabled {
		soundIndicator = "♪ on"
	}
	right := strings.Join([]string{
		theme.Muted.Render("t " + themeIndicator),
		theme.Muted.Render("s " + soundIndicator),
		theme.Title.Render(ClockText(s.Now, s.ClockFormat)),
		theme.Muted.Render(DateText(s.Now)),
	}, "  ")

	leftText := strings.Join(left, "  ")
	width := s.Width
	if width < minWidth {
		width = minWidth
	}
	gap := width - lipgloss.Width(leftText) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return theme.Bar.Width(width).Render(leftText + strings.Repeat(" ", gap) + right)
}

// StatusLine renders msg coloured by its kind.
func StatusLine(theme Theme, msg errors.Message, width int) string {
	return theme.Status(msg.Kind).Render(Truncate(msg.Text, max(width, minWidth)))
}
