// Package state holds the Bubble Tea model that drives the wiifolio TUI.
package state

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/internal/carousel"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/content"
	"github.com/eallis/wiifolio/internal/errors"
	"github.com/eallis/wiifolio/internal/logging"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/sound"
	"github.com/eallis/wiifolio/internal/tui/render"
)

const (
	defaultWidth       = 80
	defaultHeight      = 24
	chromeLines        = 3 // status, help, bottom bar
	statusClearAfter   = 5 * time.Second
	defaultStatusReset = 3 * time.Second
)

// Submitter sends a contact form.
type Submitter interface {
	Submit(ctx context.Context, form contact.Form) (contact.Submission, error)
}

// Options configures NewModel. Only Catalog is required.
type Options struct {
	Catalog     *content.Catalog
	Preferences settings.Preferences
	// SavePreferences persists preference changes; nil keeps them in memory.
	SavePreferences func(settings.Preferences) error
	Submitter       Submitter
	Player          *sound.Player
	StartPage       Page
	ClockFormat     string
	// ContactStatusReset is how long the sent/failed banner stays up.
	ContactStatusReset time.Duration
	Now                func() time.Time
}

// Model is the root Bubble Tea model.
type Model struct {
	catalog   *content.Catalog
	prefs     settings.Preferences
	theme     render.Theme
	save      func(settings.Preferences) error
	submitter Submitter
	player    *sound.Player
	status    *errors.TUIHandler
	logger    logging.Logger
	keys      keyMap
	help      help.Model

	ctx    context.Context
	cancel context.CancelFunc

	page        Page
	width       int
	height      int
	now         time.Time
	clock       func() time.Time
	clockFormat string

	homeIndex    int
	projectIndex int
	albumIndex   int
	artIndex     int
	newsIndex    int
	newsOpen     bool

	lightbox       *carousel.Navigator
	artNav         *carousel.Navigator
	showingProcess bool

	about      viewport.Model
	aboutWidth int
	aboutTheme settings.Theme

	form        *contactForm
	statusReset time.Duration
}

// NewModel creates the root model.
func NewModel(opts Options) *Model {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = content.Default()
	}
	clock := opts.Now
	if clock == nil {
		clock = time.Now
	}
	prefs := opts.Preferences
	prefs.Theme = settings.NormalizeTheme(string(prefs.Theme))
	statusReset := opts.ContactStatusReset
	if statusReset <= 0 {
		statusReset = defaultStatusReset
	}
	clockFormat := opts.ClockFormat
	if clockFormat != render.Clock24h {
		clockFormat = render.Clock12h
	}
	player := opts.Player
	if player != nil {
		player.SetEnabled(prefs.SoundEnabled)
	}

	logger := logging.With("component", "tui")
	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		catalog:     catalog,
		prefs:       prefs,
		theme:       render.ThemeFor(prefs.Theme),
		save:        opts.SavePreferences,
		submitter:   opts.Submitter,
		player:      player,
		status:      errors.NewTUIHandler(nil),
		logger:      logger,
		keys:        defaultKeyMap(),
		help:        help.New(),
		ctx:         ctx,
		cancel:      cancel,
		page:        opts.StartPage,
		width:       defaultWidth,
		height:      defaultHeight,
		now:         clock(),
		clock:       clock,
		clockFormat: clockFormat,
		lightbox:    carousel.New(content.AlbumProvider(catalog), carousel.WithLogger(logger.With("viewer", "lightbox"))),
		artNav:      carousel.New(content.ProcessProvider(catalog), carousel.WithLogger(logger.With("viewer", "art"))),
		about:       viewport.New(defaultWidth, defaultHeight-chromeLines-2),
		form:        newContactForm(),
		statusReset: statusReset,
	}
	return m
}

// Init starts the clock.
func (m *Model) Init() tea.Cmd {
	if m.page == PageContact {
		return tea.Batch(clockTick(), m.form.focusCurrent())
	}
	return clockTick()
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()
	case statusExpiredMsg:
		return m, nil
	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Error("failed to save preferences", "error", msg.err)
			return m, m.notify(errors.KindError, "Could not save preferences: "+msg.err.Error())
		}
		return m, nil
	case submitResultMsg:
		return m, m.handleSubmitResult(msg)
	case contactResetMsg:
		if msg.seq == m.form.seq && (m.form.status == contact.StatusSent || m.form.status == contact.StatusFailed) {
			m.form.status, _ = m.form.status.Transition(contact.StatusIdle)
		}
		return m, nil
	case spinner.TickMsg:
		if !m.form.status.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spinner, cmd = m.form.spinner.Update(msg)
		return m, cmd
	}

	if m.page == PageContact {
		return m, m.form.update(msg)
	}
	return m, nil
}

// Shutdown cancels in-flight work such as a pending submission.
func (m *Model) Shutdown() {
	m.cancel()
}

// Page returns the current route.
func (m *Model) Page() Page {
	return m.page
}

// Preferences returns the current preferences.
func (m *Model) Preferences() settings.Preferences {
	return m.prefs
}

func (m *Model) resize(width, height int) {
	if width > 0 {
		m.width = width
	}
	if height > 0 {
		m.height = height
	}
	m.help.Width = m.width
	m.form.setWidth(m.width - 4)
	m.about.Width = m.width
	m.about.Height = max(m.bodyHeight()-2, 3)
	m.refreshAbout()
}

func (m *Model) bodyHeight() int {
	return max(m.height-chromeLines, 5)
}

// refreshAbout re-renders the about markdown when the width or theme changed.
func (m *Model) refreshAbout() {
	if m.aboutWidth == m.width && m.aboutTheme == m.prefs.Theme {
		return
	}
	m.aboutWidth = m.width
	m.aboutTheme = m.prefs.Theme
	md := content.AboutMarkdown(m.catalog)
	m.about.SetContent(render.MarkdownOrPlain(md, m.theme, min(m.width-4, 100)))
	m.about.GotoTop()
}

// notify records a status message and schedules its expiry redraw.
func (m *Model) notify(kind errors.Kind, text string) tea.Cmd {
	switch kind {
	case errors.KindError:
		m.status.Error(text)
	case errors.KindWarning:
		m.status.Warning(text)
	case errors.KindSuccess:
		m.status.Success(text)
	default:
		m.status.Info(text)
	}
	return statusExpiry(statusClearAfter)
}

func (m *Model) navigate(to Page) tea.Cmd {
	if to == m.page {
		return nil
	}
	m.logger.Debug("navigate", "from", m.page.String(), "to", to.String())
	from := m.page
	m.page = to
	var cmds []tea.Cmd
	if from == PageContact {
		m.form.blurAll()
	}
	switch to {
	case PageContact:
		cmds = append(cmds, m.form.focusCurrent())
	case PageAbout:
		m.refreshAbout()
	}
	cmds = append(cmds, playCmd(m.player, sound.Whoosh))
	return tea.Batch(cmds...)
}

func (m *Model) toggleTheme() tea.Cmd {
	m.prefs = m.prefs.ToggleTheme()
	m.theme = render.ThemeFor(m.prefs.Theme)
	m.refreshAbout()
	return tea.Batch(
		savePrefsCmd(m.save, m.prefs),
		m.notify(errors.KindInfo, "Theme: "+string(m.prefs.Theme)),
		playCmd(m.player, sound.Click),
	)
}

func (m *Model) toggleSound() tea.Cmd {
	m.prefs = m.prefs.ToggleSound()
	if m.player != nil {
		m.player.SetEnabled(m.prefs.SoundEnabled)
	}
	label := "off"
	if m.prefs.SoundEnabled {
		label = "on"
	}
	return tea.Batch(
		savePrefsCmd(m.save, m.prefs),
		m.notify(errors.KindInfo, "Sound: "+label),
		playCmd(m.player, sound.Click),
	)
}

func (m *Model) submit() tea.Cmd {
	f := m.form
	if f.status.Busy() {
		return nil
	}
	if m.submitter == nil {
		return m.notify(errors.KindError, "Contact form is unavailable")
	}
	form := f.values()
	if err := form.Validate(); err != nil {
		f.errs = contact.FieldErrors(err)
		return m.notify(errors.KindWarning, "Please fill in the highlighted fields")
	}
	if f.status == contact.StatusSent {
		f.status, _ = f.status.Transition(contact.StatusIdle)
	}
	next, err := f.status.Transition(contact.StatusSending)
	if err != nil {
		m.logger.Warn("unexpected contact status", "error", err)
		return nil
	}
	f.status = next
	f.errs = nil
	f.seq++
	f.blurAll()
	return tea.Batch(f.spinner.Tick, submitCmd(m.ctx, m.submitter, form), playCmd(m.player, sound.Click))
}

func (m *Model) handleSubmitResult(msg submitResultMsg) tea.Cmd {
	f := m.form
	if msg.err != nil {
		f.status, _ = f.status.Transition(contact.StatusFailed)
		m.logger.Error("contact submission failed", "error", msg.err)
		cmds := []tea.Cmd{contactResetAfter(m.statusReset, f.seq)}
		if m.page == PageContact {
			cmds = append(cmds, f.focusCurrent())
		}
		return tea.Batch(cmds...)
	}
	f.status, _ = f.status.Transition(contact.StatusSent)
	f.clear()
	m.logger.Info("contact submission sent", "id", msg.submission.ID.String())
	cmds := []tea.Cmd{contactResetAfter(m.statusReset, f.seq), playCmd(m.player, sound.Whoosh)}
	if m.page == PageContact {
		cmds = append(cmds, f.focusCurrent())
	}
	return tea.Batch(cmds...)
}
