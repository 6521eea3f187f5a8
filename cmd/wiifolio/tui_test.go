package main

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubProgram(t *testing.T, err error) **state.Model {
	t.Helper()
	var got *state.Model
	orig := runProgram
	runProgram = func(m tea.Model) error {
		got = m.(*state.Model)
		return err
	}
	t.Cleanup(func() { runProgram = orig })
	return &got
}

func TestRunTUIStartsOnRequestedPage(t *testing.T) {
	got := stubProgram(t, nil)
	open, _ := tempOutbox(t)
	client := newMemorySettings()

	err := runTUI(tuiOptions{page: "gallery", theme: "dark"}, client, open)
	require.NoError(t, err)
	require.NotNil(t, *got)
	assert.Equal(t, state.PageGallery, (*got).Page())
	assert.Equal(t, settings.ThemeDark, (*got).Preferences().Theme)
	assert.Empty(t, client.saved)
}

func TestRunTUIUsesDefaultsWhenPreferencesUnreadable(t *testing.T) {
	got := stubProgram(t, nil)
	open, _ := tempOutbox(t)
	client := newMemorySettings()
	client.loadErr = errors.New("bad toml")

	require.NoError(t, runTUI(tuiOptions{}, client, open))
	assert.Equal(t, state.PageHome, (*got).Page())
	assert.Equal(t, settings.ThemeLight, (*got).Preferences().Theme)
}

func TestRunTUIRejectsBadFlags(t *testing.T) {
	got := stubProgram(t, nil)
	open, _ := tempOutbox(t)

	err := runTUI(tuiOptions{page: "arcade"}, newMemorySettings(), open)
	assert.ErrorContains(t, err, "unknown page")

	err = runTUI(tuiOptions{theme: "sepia"}, newMemorySettings(), open)
	assert.Error(t, err)
	assert.Nil(t, *got)
}

func TestRunTUIReportsOutboxAndProgramErrors(t *testing.T) {
	stubProgram(t, errors.New("no tty"))
	open, _ := tempOutbox(t)

	err := runTUI(tuiOptions{}, newMemorySettings(), open)
	assert.ErrorContains(t, err, "run tui: no tty")

	failing := func() (outboxStore, error) { return nil, errors.New("locked") }
	err = runTUI(tuiOptions{}, newMemorySettings(), failing)
	assert.ErrorContains(t, err, "open outbox: locked")
}
