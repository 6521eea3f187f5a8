package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/icon"
)

// Channel is one tile on the home grid.
type Channel struct {
	Title    string
	Subtitle string
	Icon     icon.Tag
	Disabled bool
}

// HomeState is the input for Home.
type HomeState struct {
	Profile  content.Profile
	Channels []Channel
	Selected int
	Width    int
}

// Home draws the Mii hero card above the channel grid.
func Home(theme Theme, s HomeState) string {
	hero := Hero(theme, s.Profile)
	grid := ChannelGrid(theme, s.Channels, s.Selected)
	return lipgloss.JoinVertical(lipgloss.Center, hero, "", grid)
}

// Hero renders the profile card.
func Hero(theme Theme, p content.Profile) string {
	width := 60
	lines := []string{
		theme.Title.Render(icon.Glyph(icon.User) + "  " + p.Name),
		theme.Accent.Render(p.Role),
		"",
		theme.Text.Width(width - 4).Render(p.Bio),
	}
	return theme.Modal.Width(width).Render(strings.Join(lines, "\n"))
}

// ChannelGrid lays the channels out GridColumns per row.
func ChannelGrid(theme Theme, channels []Channel, selected int) string {
	var rows []string
	for start := 0; start < len(channels); start += GridColumns {
		end := start + GridColumns
		if end > len(channels) {
			end = len(channels)
		}
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, channelTile(theme, channels[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func channelTile(theme Theme, c Channel, selected bool) string {
	style := theme.Tile
	switch {
	case c.Disabled:
		style = theme.TileDisabled
	case selected:
		style = theme.TileSelected
	}
	body := icon.Glyph(c.Icon) + "\n" + Truncate(c.Title, tileWidth-2)
	if c.Subtitle != "" {
		body += "\n" + Truncate(c.Subtitle, tileWidth-2)
	}
	return style.Render(body)
}
