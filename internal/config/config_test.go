package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	t.Setenv("HOME", tmpDir)
	return tmpDir
}

func TestLoadAndGet(t *testing.T) {
	isolate(t)
	Load()

	require.Equal(t, "default", Get("missing", "default"))
	require.Equal(t, "light", Get("default_theme", ""))
	require.Equal(t, 1500, GetInt("submit_delay_ms", 0))
	require.True(t, GetBool("default_sound", false))
}

func TestDirectoryDefaults(t *testing.T) {
	tmpDir := isolate(t)
	Load()

	require.Equal(t, filepath.Join(tmpDir, "config", AppName), Get("config_dir", ""))
	require.Equal(t, filepath.Join(tmpDir, "state", AppName), Get("state_dir", ""))
	require.Equal(t, filepath.Join(tmpDir, "state", AppName, "outbox.db"), Get("outbox_path", ""))
}

func TestLoadingPrecedence(t *testing.T) {
	tmpDir := isolate(t)

	configFile := filepath.Join(tmpDir, "custom.toml")
	content := `
submit_delay_ms = 200
default_theme = "dark"
clock_format = "24h"
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	t.Setenv("WIIFOLIO_CONFIG_PATH", configFile)
	t.Setenv("WIIFOLIO_SUBMIT_DELAY_MS", "10")

	reset()
	Load()

	require.Equal(t, "10", Get("submit_delay_ms", ""), "environment should override config file")
	require.Equal(t, "dark", Get("default_theme", ""), "config file value should be used when not overridden")
	require.Equal(t, "24h", Get("clock_format", ""))
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("WIIFOLIO_DEFAULT_THEME", "purple")
	t.Setenv("WIIFOLIO_SUBMIT_DELAY_MS", "-5")
	t.Setenv("WIIFOLIO_DEFAULT_SOUND", "maybe")
	t.Setenv("WIIFOLIO_LOGGING_MAX_FILES", "0")

	Load()

	require.Equal(t, "light", Get("default_theme", ""))
	require.Equal(t, "1500", Get("submit_delay_ms", ""))
	require.Equal(t, "true", Get("default_sound", ""))
	require.Equal(t, "10", Get("logging_max_files", ""))
}

func TestBooleanNormalization(t *testing.T) {
	isolate(t)
	t.Setenv("WIIFOLIO_DEFAULT_SOUND", "off")
	t.Setenv("WIIFOLIO_DEBUG", "YES")

	Load()

	require.Equal(t, "false", Get("default_sound", ""))
	require.Equal(t, "true", Get("debug", ""))
}

func TestGetDuration(t *testing.T) {
	isolate(t)
	t.Setenv("WIIFOLIO_STATUS_RESET_MS", "250")
	Load()

	require.Equal(t, 250*time.Millisecond, GetDuration("status_reset_ms", time.Second))
	require.Equal(t, time.Second, GetDuration("missing_ms", time.Second))
}

func TestSampleConfigCreation(t *testing.T) {
	tmpDir := isolate(t)
	reset()
	Load()

	samplePath := filepath.Join(tmpDir, "config", AppName, "config.toml")
	require.FileExists(t, samplePath)

	content, err := os.ReadFile(samplePath)
	require.NoError(t, err)
	require.Contains(t, string(content), "submit_delay_ms")
	require.Contains(t, string(content), "default_theme")
	require.Contains(t, string(content), "state_dir")
}

func TestCoerceConfigValue(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
		ok   bool
	}{
		{"x", "x", true},
		{int64(42), "42", true},
		{3, "3", true},
		{1.5, "1.5", true},
		{true, "true", true},
		{[]string{"a"}, "", false},
	}
	for _, tc := range cases {
		got, ok := coerceConfigValue(tc.in)
		require.Equal(t, tc.ok, ok)
		require.Equal(t, tc.want, got)
	}
}
