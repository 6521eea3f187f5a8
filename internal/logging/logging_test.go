package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eallis/wiifolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStateDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	config.Load()
	return filepath.Join(tmpDir, "state", config.AppName)
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestInitDisabledReturnsNoop(t *testing.T) {
	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, l)
	assert.NoError(t, l.Shutdown())
}

func TestInitWritesJSONToStateDir(t *testing.T) {
	stateDir := setupStateDir(t)

	l, err := Init(Config{Enabled: true, Level: "debug", MaxFiles: 5, Command: "tui", PID: 42})
	require.NoError(t, err)
	impl := l.(*loggerImpl)
	assert.True(t, strings.HasPrefix(impl.path, filepath.Join(stateDir, "logs")))

	l.With("page", "gallery").Info("lightbox opened", "collection", "japan-2024")
	require.NoError(t, l.Shutdown())

	content := readLog(t, impl.path)
	assert.Contains(t, content, `"msg":"lightbox opened"`)
	assert.Contains(t, content, `"page":"gallery"`)
	assert.Contains(t, content, `"collection":"japan-2024"`)
	assert.Contains(t, content, `"pid":42`)
}

func TestLevelFiltering(t *testing.T) {
	setupStateDir(t)

	l, err := Init(Config{Enabled: true, Level: "warn", MaxFiles: 5, Command: "tui"})
	require.NoError(t, err)
	path := l.(*loggerImpl).path
	l.Info("hidden")
	l.Warn("visible")
	require.NoError(t, l.Shutdown())

	content := readLog(t, path)
	assert.NotContains(t, content, "hidden")
	assert.Contains(t, content, "visible")
}

func TestRedactsContactDetails(t *testing.T) {
	setupStateDir(t)

	l, err := Init(Config{Enabled: true, Level: "info", MaxFiles: 5, Command: "tui"})
	require.NoError(t, err)
	path := l.(*loggerImpl).path
	l.Info("submission from visitor@example.com",
		"email", "visitor@example.com",
		"message", "hello there",
		"note", "reply to visitor@example.com",
		"subject", "collab")
	require.NoError(t, l.Shutdown())

	content := readLog(t, path)
	assert.NotContains(t, content, "visitor@example.com")
	assert.NotContains(t, content, "hello there")
	assert.Contains(t, content, "collab")
	assert.Contains(t, content, redacted)
}

func TestRedactorKeySegments(t *testing.T) {
	r := newRedactor()

	assert.True(t, r.isSensitive("sender_email"))
	assert.True(t, r.isSensitive("Message"))
	assert.False(t, r.isSensitive("collection"))
	assert.False(t, r.isSensitive("username_hint"))

	in := []any{"email", "a@b.io", "count", 3}
	out := r.redact(in)
	assert.Equal(t, []any{"email", redacted, "count", 3}, out)
	assert.Equal(t, "a@b.io", in[1], "input must not be modified")
}

func TestRotateKeepsNewestFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, logFilePrefix+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
		mod := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.log"), []byte("x"), 0600))

	require.NoError(t, rotate(dir, 2))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{logFilePrefix + "d.log", logFilePrefix + "e.log", "other.log"}, names)
}

func TestGlobalLoggerLifecycle(t *testing.T) {
	setupStateDir(t)
	t.Setenv("WIIFOLIO_LOGGING_ENABLED", "true")
	config.Load()

	require.NoError(t, InitGlobal())
	path := CurrentLogFile()
	require.NotEmpty(t, path)

	Info("global entry", "page", "home")
	require.NoError(t, ShutdownGlobal())
	assert.Equal(t, "", CurrentLogFile())
	assert.IsType(t, noopLogger{}, GetGlobal())

	assert.Contains(t, readLog(t, path), "global entry")
}
