package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/sound"
	"github.com/eallis/wiifolio/internal/tui/render"
)

// handleKeyMsg processes keyboard input. Overlays take precedence over the
// page underneath; the contact page owns all printable keys.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	switch {
	case m.page == PageContact:
		return m, m.handleContactKey(msg)
	case m.lightbox.IsOpen():
		return m, m.handleLightboxKey(msg)
	case m.artNav.IsOpen():
		return m, m.handleArtModalKey(msg)
	case m.newsOpen:
		return m, m.handleNewsOverlayKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Theme):
		return m, m.toggleTheme()
	case key.Matches(msg, m.keys.Sound):
		return m, m.toggleSound()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Back):
		return m, m.navigate(PageHome)
	}

	switch m.page {
	case PageHome:
		return m, m.handleHomeKey(msg)
	case PageProjects:
		m.projectIndex = m.moveList(msg, m.projectIndex, len(m.catalog.Projects))
	case PageGallery:
		return m, m.handleGalleryKey(msg)
	case PageArt:
		return m, m.handleArtListKey(msg)
	case PageNews:
		return m, m.handleNewsKey(msg)
	case PageAbout:
		var cmd tea.Cmd
		m.about, cmd = m.about.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Shutdown()
	return m, tea.Quit
}

// moveList moves a list cursor with up/down, clamped to [0, n).
func (m *Model) moveList(msg tea.KeyMsg, index, n int) int {
	if n == 0 {
		return 0
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		index--
	case key.Matches(msg, m.keys.Down):
		index++
	}
	return clampIndex(index, n)
}

// moveGrid moves a grid cursor; left/right step by one, up/down by a row.
func (m *Model) moveGrid(msg tea.KeyMsg, index, n int) int {
	if n == 0 {
		return 0
	}
	next := index
	switch {
	case key.Matches(msg, m.keys.Left):
		next--
	case key.Matches(msg, m.keys.Right):
		next++
	case key.Matches(msg, m.keys.Up):
		next -= render.GridColumns
	case key.Matches(msg, m.keys.Down):
		next += render.GridColumns
	}
	if next < 0 || next >= n {
		return index
	}
	return next
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Open) {
		ch := homeChannels[m.homeIndex]
		if ch.Disabled {
			return m.notify(errors.KindInfo, ch.Title+" is coming soon")
		}
		return m.navigate(ch.target)
	}
	before := m.homeIndex
	m.homeIndex = m.moveGrid(msg, m.homeIndex, len(homeChannels))
	if m.homeIndex != before {
		return playCmd(m.player, sound.Hover)
	}
	return nil
}

func (m *Model) handleGalleryKey(msg tea.KeyMsg) tea.Cmd {
	albums := m.catalog.Albums
	if key.Matches(msg, m.keys.Open) && len(albums) > 0 {
		album := albums[m.albumIndex]
		m.lightbox.Open(album.ID, 0)
		if !m.lightbox.IsOpen() {
			return m.notify(errors.KindWarning, album.Title+" has nothing to show")
		}
		return playCmd(m.player, sound.Whoosh)
	}
	m.albumIndex = m.moveGrid(msg, m.albumIndex, len(albums))
	return nil
}

func (m *Model) handleLightboxKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.lightbox.Close()
		return playCmd(m.player, sound.Whoosh)
	case key.Matches(msg, m.keys.Left):
		m.lightbox.Prev()
	case key.Matches(msg, m.keys.Right):
		m.lightbox.Next()
	case key.Matches(msg, m.keys.Jump):
		m.lightbox.JumpTo(digit(msg))
	case key.Matches(msg, m.keys.Quit):
		_, cmd := m.quit()
		return cmd
	default:
		return nil
	}
	return playCmd(m.player, sound.Click)
}

func (m *Model) handleArtListKey(msg tea.KeyMsg) tea.Cmd {
	works := m.catalog.ArtWorks
	if key.Matches(msg, m.keys.Open) && len(works) > 0 {
		m.artNav.Open(works[m.artIndex].ID, 0)
		m.showingProcess = false
		return playCmd(m.player, sound.Whoosh)
	}
	m.artIndex = m.moveList(msg, m.artIndex, len(works))
	return nil
}

// handleArtModalKey drives the process carousel. The modal starts on the
// final artwork; the first navigation switches to the process images.
func (m *Model) handleArtModalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.artNav.Close()
		m.showingProcess = false
		return playCmd(m.player, sound.Whoosh)
	case key.Matches(msg, m.keys.Final):
		m.showingProcess = false
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		// A single process image has no prev/next; digits still select it.
		if !m.artNav.CanNavigate() {
			return nil
		}
		if key.Matches(msg, m.keys.Left) {
			m.artNav.Prev()
		} else {
			m.artNav.Next()
		}
		m.showingProcess = true
	case key.Matches(msg, m.keys.Jump):
		i := digit(msg)
		if i < 0 || i >= m.processCount() {
			return nil
		}
		m.artNav.JumpTo(i)
		m.showingProcess = true
	case key.Matches(msg, m.keys.Quit):
		_, cmd := m.quit()
		return cmd
	default:
		return nil
	}
	return playCmd(m.player, sound.Click)
}

func (m *Model) processCount() int {
	art, ok := m.catalog.ArtWork(m.artNav.CollectionID())
	if !ok {
		return 0
	}
	return len(art.ProcessImages)
}

func (m *Model) handleNewsKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Open) && len(m.catalog.News) > 0 {
		m.newsOpen = true
		return playCmd(m.player, sound.Whoosh)
	}
	m.newsIndex = m.moveList(msg, m.newsIndex, len(m.catalog.News))
	return nil
}

func (m *Model) handleNewsOverlayKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.newsOpen = false
		return playCmd(m.player, sound.Whoosh)
	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.newsIndex = m.moveList(msg, m.newsIndex, len(m.catalog.News))
	case key.Matches(msg, m.keys.Quit):
		_, cmd := m.quit()
		return cmd
	}
	return nil
}

func (m *Model) handleContactKey(msg tea.KeyMsg) tea.Cmd {
	f := m.form
	switch {
	case key.Matches(msg, m.keys.Back):
		if f.status.Busy() {
			return m.notify(errors.KindInfo, "Still sending...")
		}
		return m.navigate(PageHome)
	case f.status.Busy():
		return nil
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.NextField):
		return f.move(1)
	case key.Matches(msg, m.keys.PrevField):
		return f.move(-1)
	}
	return f.update(msg)
}

// digit returns the zero-based index for a 1-9 key press, or -1.
func digit(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}
