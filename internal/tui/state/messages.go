package state

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/internal/contact"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/sound"
)

// clockTickMsg advances the bottom bar clock.
type clockTickMsg time.Time

// statusExpiredMsg forces a redraw once a status message has aged out.
type statusExpiredMsg struct{}

// prefsSavedMsg reports the outcome of persisting preferences.
type prefsSavedMsg struct {
	prefs settings.Preferences
	err   error
}

// submitResultMsg carries the outcome of a contact submission.
type submitResultMsg struct {
	submission contact.Submission
	err        error
}

// contactResetMsg returns the form status to idle. seq guards against a
// stale reset clearing a newer submission's banner.
type contactResetMsg struct {
	seq int
}

func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func statusExpiry(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return statusExpiredMsg{}
	})
}

func contactResetAfter(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return contactResetMsg{seq: seq}
	})
}

func savePrefsCmd(save func(settings.Preferences) error, prefs settings.Preferences) tea.Cmd {
	if save == nil {
		return nil
	}
	return func() tea.Msg {
		return prefsSavedMsg{prefs: prefs, err: save(prefs)}
	}
}

func submitCmd(ctx context.Context, s Submitter, form contact.Form) tea.Cmd {
	return func() tea.Msg {
		sub, err := s.Submit(ctx, form)
		return submitResultMsg{submission: sub, err: err}
	}
}

func playCmd(p *sound.Player, c sound.Cue) tea.Cmd {
	if p == nil || !p.Enabled() {
		return nil
	}
	return func() tea.Msg {
		p.Play(c)
		return nil
	}
}
