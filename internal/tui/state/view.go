package state

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eallis/wiifolio/internal/carousel"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/tui/render"
)

// View renders the TUI.
func (m *Model) View() string {
	bodyHeight := m.bodyHeight()
	body := m.pageView()
	if overlay, ok := m.overlayView(); ok {
		body = render.Overlay(overlay, m.width, bodyHeight)
	}

	var s strings.Builder
	s.WriteString(render.FitHeight(lipgloss.NewStyle().Padding(0, 1).Render(body), bodyHeight))
	s.WriteString("\n")
	if msg, ok := m.status.Current(statusClearAfter); ok {
		s.WriteString(render.StatusLine(m.theme, msg, m.width))
	}
	s.WriteString("\n")
	if m.help.ShowAll {
		s.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		s.WriteString(m.help.ShortHelpView(m.contextHelp()))
	}
	s.WriteString("\n")
	s.WriteString(render.BottomBar(m.theme, render.BottomBarState{
		Now:          m.now,
		ClockFormat:  m.clockFormat,
		Socials:      m.catalog.Socials,
		SoundEnabled: m.prefs.SoundEnabled,
		ShowBack:     m.page != PageHome,
		Width:        m.width,
	}))
	return s.String()
}

func (m *Model) pageView() string {
	h := headings[m.page]
	var body string
	switch m.page {
	case PageHome:
		return render.Home(m.theme, render.HomeState{
			Profile:  m.catalog.Profile,
			Channels: channelTiles(),
			Selected: m.homeIndex,
			Width:    m.width,
		})
	case PageProjects:
		body = render.Projects(m.theme, m.catalog.ProjectsFeaturedFirst(), m.projectIndex, m.width)
	case PageGallery:
		body = render.Albums(m.theme, m.catalog.Albums, m.albumIndex)
	case PageArt:
		body = render.ArtList(m.theme, m.catalog.ArtWorks, m.artIndex)
	case PageAbout:
		body = m.about.View()
	case PageContact:
		body = m.form.view(m.theme, m.width)
	case PageNews:
		body = render.NewsList(m.theme, m.catalog.News, m.newsIndex)
	}
	return render.PageFrame(m.theme, h.title, h.subtitle, body)
}

// overlayView returns the modal drawn over the page, if any.
func (m *Model) overlayView() (string, bool) {
	switch {
	case m.lightbox.IsOpen():
		album, _ := m.catalog.Album(m.lightbox.CollectionID())
		return render.Lightbox(m.theme, m.viewerState(album.Title, album.Date)), true
	case m.artNav.IsOpen():
		art, _ := m.catalog.ArtWork(m.artNav.CollectionID())
		return render.ArtModal(m.theme, render.ArtModalState{
			ArtWork:        art,
			Viewer:         m.viewerStateFor(m.artNav.CurrentItem, m.artNav.CounterText(), m.artNav.CanNavigate(), "", ""),
			ShowingProcess: m.showingProcess,
		}), true
	case m.newsOpen && len(m.catalog.News) > 0:
		item := m.catalog.News[clampIndex(m.newsIndex, len(m.catalog.News))]
		width := min(m.width-10, 80)
		article := render.MarkdownOrPlain(content.NewsMarkdown(item), m.theme, width-6)
		return m.theme.Modal.Width(width).Render(article + "\n\n" + m.theme.Muted.Render("↑/↓ other news · esc close")), true
	}
	return "", false
}

func (m *Model) viewerState(title, subtitle string) render.ViewerState {
	return m.viewerStateFor(m.lightbox.CurrentItem, m.lightbox.CounterText(), m.lightbox.CanNavigate(), title, subtitle)
}

func (m *Model) viewerStateFor(current func() (carousel.Item, bool), counter string, canNavigate bool, title, subtitle string) render.ViewerState {
	item, ok := current()
	return render.ViewerState{
		Title:       title,
		Subtitle:    subtitle,
		Item:        item,
		HasItem:     ok,
		Counter:     counter,
		CanNavigate: canNavigate,
		Width:       m.width,
	}
}
