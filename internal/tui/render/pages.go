package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/carousel"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/icon"
)

// Projects lists dev projects with the selected one expanded.
func Projects(theme Theme, projects []content.DevProject, selected, width int) string {
	if len(projects) == 0 {
		return theme.Muted.Render("No projects yet")
	}
	var b strings.Builder
	for i, p := range projects {
		title := p.Title
		if p.Featured {
			title = "★ " + title
		}
		if p.Date != "" {
			title += theme.Muted.Render("  " + p.Date)
		}
		if i != selected {
			b.WriteString(theme.Row.Render(title))
			b.WriteString("\n")
			continue
		}
		b.WriteString(theme.RowSelected.Render("▸ " + title))
		b.WriteString("\n")
		detail := []string{
			theme.Text.Width(max(width-6, 20)).Render(p.Description),
			stackTags(theme, p.Stack),
		}
		if p.DemoURL != "" {
			detail = append(detail, theme.Muted.Render("demo ")+theme.Accent.Render(p.DemoURL))
		}
		if p.RepoURL != "" {
			detail = append(detail, theme.Muted.Render("repo ")+theme.Accent.Render(p.RepoURL))
		}
		b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(strings.Join(detail, "\n")))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func stackTags(theme Theme, stack []string) string {
	tags := make([]string, 0, len(stack))
	for _, s := range stack {
		tags = append(tags, theme.Tag.Render(s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tags...)
}

// Albums draws the album grid for the gallery page.
func Albums(theme Theme, albums []content.PhotoAlbum, selected int) string {
	if len(albums) == 0 {
		return theme.Muted.Render("No albums yet")
	}
	channels := make([]Channel, len(albums))
	for i, a := range albums {
		channels[i] = Channel{
			Title:    a.Title,
			Subtitle: fmt.Sprintf("%d photos", a.PhotoCount),
			Icon:     icon.Photo,
		}
	}
	grid := ChannelGrid(theme, channels, selected)
	if selected < 0 || selected >= len(albums) {
		return grid
	}
	a := albums[selected]
	caption := theme.Muted.Render(a.Date + "  " + a.Description)
	return lipgloss.JoinVertical(lipgloss.Left, grid, "", caption)
}

// ViewerState is the input for Lightbox and ArtModal.
type ViewerState struct {
	Title       string
	Subtitle    string
	Item        carousel.Item
	HasItem     bool
	Counter     string
	CanNavigate bool
	Width       int
}

// Lightbox renders the photo viewer modal.
func Lightbox(theme Theme, s ViewerState) string {
	lines := []string{theme.Title.Render(s.Title)}
	if s.Subtitle != "" {
		lines = append(lines, theme.Muted.Render(s.Subtitle))
	}
	lines = append(lines, "", viewerBody(theme, s), "", viewerHelp(theme, s, "esc close"))
	return theme.Modal.Width(modalWidth(s.Width)).Render(strings.Join(lines, "\n"))
}

// ArtList lists artworks with their medium.
func ArtList(theme Theme, works []content.ArtWork, selected int) string {
	if len(works) == 0 {
		return theme.Muted.Render("No artworks yet")
	}
	var b strings.Builder
	for i, a := range works {
		line := fmt.Sprintf("%s  %s", a.Title, theme.Muted.Render(string(a.Medium)))
		if a.Featured {
			line = "★ " + line
		}
		if i == selected {
			b.WriteString(theme.RowSelected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// ArtModalState is the input for ArtModal.
type ArtModalState struct {
	ArtWork        content.ArtWork
	Viewer         ViewerState
	ShowingProcess bool
}

// ArtModal renders an artwork with its process carousel.
func ArtModal(theme Theme, s ArtModalState) string {
	a := s.ArtWork
	label := content.FinalArtworkCaption
	url := a.FinalImage
	if s.ShowingProcess && s.Viewer.HasItem {
		label = s.Viewer.Item.Caption
		url = s.Viewer.Item.URL
	}
	width := modalWidth(s.Viewer.Width)
	lines := []string{
		theme.Title.Render(a.Title) + "  " + theme.Muted.Render(string(a.Medium)),
		theme.Text.Width(width - 6).Render(a.Description),
		"",
		theme.Accent.Render(label),
		theme.Muted.Render(url),
		"",
		theme.Text.Render(fmt.Sprintf("Creative Process (%d)", len(a.ProcessImages))),
	}
	if s.ShowingProcess && s.Viewer.Counter != "" {
		lines = append(lines, theme.Muted.Render(s.Viewer.Counter))
	}
	lines = append(lines, "", viewerHelp(theme, s.Viewer, "f final · esc close"))
	return theme.Modal.Width(width).Render(strings.Join(lines, "\n"))
}

func viewerBody(theme Theme, s ViewerState) string {
	if !s.HasItem {
		return theme.Muted.Render("Nothing to show")
	}
	var lines []string
	if s.Item.Caption != "" {
		lines = append(lines, theme.Accent.Render(s.Item.Caption))
	}
	lines = append(lines, theme.Muted.Render(s.Item.URL))
	if s.Counter != "" {
		lines = append(lines, theme.Text.Render(s.Counter))
	}
	return strings.Join(lines, "\n")
}

func viewerHelp(theme Theme, s ViewerState, extra string) string {
	if !s.CanNavigate {
		return theme.Muted.Render(extra)
	}
	return theme.Muted.Render("←/h prev · →/l next · 1-9 jump · " + extra)
}

func modalWidth(width int) int {
	w := width - 10
	if w > 80 {
		w = 80
	}
	if w < minWidth {
		w = minWidth
	}
	return w
}

// NewsList lists news items with category and date.
func NewsList(theme Theme, items []content.NewsItem, selected int) string {
	if len(items) == 0 {
		return theme.Muted.Render("No news")
	}
	var b strings.Builder
	for i, n := range items {
		head := fmt.Sprintf("[%s] %s  %s", n.Category, n.Title, theme.Muted.Render(n.Date))
		if i == selected {
			b.WriteString(theme.RowSelected.Render("▸ " + head))
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().PaddingLeft(4).Render(theme.Muted.Render(n.Preview)))
		} else {
			b.WriteString(theme.Row.Render(head))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
