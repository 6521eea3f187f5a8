package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/carousel"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockText(t *testing.T) {
	now := time.Date(2026, time.March, 9, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "07:05 AM", ClockText(now, Clock12h))
	assert.Equal(t, "07:05", ClockText(now, Clock24h))
	assert.Equal(t, "07:05 AM", ClockText(now, ""))
	assert.Equal(t, "Mon, Mar 9", DateText(now))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.n), "Truncate(%q, %d)", tt.in, tt.n)
	}
}

func TestFitHeight(t *testing.T) {
	assert.Equal(t, "a\nb\n", FitHeight("a\nb", 3))
	assert.Equal(t, "a\nb", FitHeight("a\nb\nc\nd", 2))
	assert.Equal(t, "", FitHeight("a", 0))
}

func TestOverlayCentresBox(t *testing.T) {
	out := Overlay("box", 60, 5)
	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "box")
}

func TestBottomBarIndicators(t *testing.T) {
	now := time.Date(2026, time.January, 2, 15, 4, 0, 0, time.UTC)
	state := BottomBarState{
		Now:          now,
		ClockFormat:  Clock12h,
		Socials:      content.Default().Socials,
		SoundEnabled: true,
		ShowBack:     true,
		Width:        200,
	}

	light := BottomBar(ThemeFor(settings.ThemeLight), state)
	assert.Contains(t, light, "03:04 PM")
	assert.Contains(t, light, "☀ light")
	assert.Contains(t, light, "♪ on")
	assert.Contains(t, light, "esc")

	state.SoundEnabled = false
	state.ShowBack = false
	dark := BottomBar(ThemeFor(settings.ThemeDark), state)
	assert.Contains(t, dark, "☾ dark")
	assert.Contains(t, dark, "♪ off")
	assert.NotContains(t, dark, " esc")
}

func TestStatusLineTruncates(t *testing.T) {
	msg := errors.Message{Text: strings.Repeat("x", 100), Kind: errors.KindWarning}
	out := StatusLine(ThemeFor(settings.ThemeLight), msg, 50)
	assert.LessOrEqual(t, lipgloss.Width(out), 50)
}

func TestArtModalLabels(t *testing.T) {
	art, ok := content.Default().ArtWork("abstract-landscape")
	require.True(t, ok)
	theme := ThemeFor(settings.ThemeLight)
	viewer := ViewerState{
		Item:        carousel.Item{URL: art.ProcessImages[1], Caption: content.ProcessCaption(2)},
		HasItem:     true,
		Counter:     "2 / 3",
		CanNavigate: true,
		Width:       120,
	}

	final := ArtModal(theme, ArtModalState{ArtWork: art, Viewer: viewer})
	assert.Contains(t, final, content.FinalArtworkCaption)
	assert.Contains(t, final, "Creative Process (3)")
	assert.NotContains(t, final, "2 / 3")

	process := ArtModal(theme, ArtModalState{ArtWork: art, Viewer: viewer, ShowingProcess: true})
	assert.Contains(t, process, "Process #2")
	assert.Contains(t, process, "2 / 3")
	assert.Contains(t, process, "f final")
}

func TestLightboxWithoutNavigation(t *testing.T) {
	out := Lightbox(ThemeFor(settings.ThemeDark), ViewerState{
		Title:   "London Adventure",
		Item:    carousel.Item{URL: "cover.jpg"},
		HasItem: true,
		Width:   120,
	})
	assert.Contains(t, out, "London Adventure")
	assert.Contains(t, out, "cover.jpg")
	assert.NotContains(t, out, "next")

	empty := Lightbox(ThemeFor(settings.ThemeDark), ViewerState{Title: "Empty", Width: 120})
	assert.Contains(t, empty, "Nothing to show")
}

func TestHomeMarksDisabledChannels(t *testing.T) {
	channels := []Channel{
		{Title: "Dev Projects", Subtitle: "Code"},
		{Title: "Playlist", Disabled: true},
	}
	out := Home(ThemeFor(settings.ThemeLight), HomeState{Profile: content.Default().Profile, Channels: channels})
	assert.Contains(t, out, "Dev Projects")
	assert.Contains(t, out, "Playlist")
	assert.Contains(t, out, content.Default().Profile.Name)
}

func TestContactStatusBanner(t *testing.T) {
	theme := ThemeFor(settings.ThemeLight)
	fields := []ContactField{{Label: "Email", View: "ada@", Error: "invalid email address"}}

	out := Contact(theme, ContactState{Fields: fields, Status: contact.StatusIdle})
	assert.Contains(t, out, "invalid email address")

	out = Contact(theme, ContactState{Fields: fields, Status: contact.StatusSent})
	assert.Contains(t, out, contact.SentMessage)

	out = Contact(theme, ContactState{Fields: fields, Status: contact.StatusSending, Spinner: "*"})
	assert.Contains(t, out, "* Sending...")
}

func TestMarkdownOrPlainFallsBack(t *testing.T) {
	out := MarkdownOrPlain("# Title\n\nparagraph", ThemeFor(settings.ThemeLight), 60)
	assert.Contains(t, out, "paragraph")
}

func TestProjectsListsStack(t *testing.T) {
	projects := content.Default().Projects
	out := Projects(ThemeFor(settings.ThemeLight), projects, 0, 120)
	assert.Contains(t, out, projects[0].Title)
}
