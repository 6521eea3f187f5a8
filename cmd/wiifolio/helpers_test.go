package main

import (
	"path/filepath"
	"testing"

	"github.com/eallis/wiifolio/internal/settings"
	"github.com/eallis/wiifolio/internal/storage/sqlite"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	errors, warnings, infos, successes []string
}

func (r *recordingHandler) Error(msg string)   { r.errors = append(r.errors, msg) }
func (r *recordingHandler) Warning(msg string) { r.warnings = append(r.warnings, msg) }
func (r *recordingHandler) Info(msg string)    { r.infos = append(r.infos, msg) }
func (r *recordingHandler) Success(msg string) { r.successes = append(r.successes, msg) }

type memorySettings struct {
	prefs   settings.Preferences
	loadErr error
	saved   []settings.Preferences
	resets  int
}

func newMemorySettings() *memorySettings {
	return &memorySettings{prefs: settings.Preferences{Theme: settings.ThemeLight, SoundEnabled: true}}
}

func (m *memorySettings) Load() (settings.Preferences, error) { return m.prefs, m.loadErr }

func (m *memorySettings) Save(p settings.Preferences) error {
	m.prefs = p
	m.saved = append(m.saved, p)
	return nil
}

func (m *memorySettings) Reset() error {
	m.resets++
	m.prefs = settings.Preferences{Theme: settings.ThemeLight, SoundEnabled: true}
	return nil
}

func (m *memorySettings) Path() string { return "/tmp/prefs.toml" }

// tempOutbox returns an opener for a fresh SQLite outbox in a temp dir.
func tempOutbox(t *testing.T) (outboxOpener, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outbox.db")
	return func() (outboxStore, error) {
		o, err := sqlite.Open(path)
		if err != nil {
			return nil, err
		}
		return o, nil
	}, path
}

func mustOpen(t *testing.T, open outboxOpener) outboxStore {
	t.Helper()
	store, err := open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}
