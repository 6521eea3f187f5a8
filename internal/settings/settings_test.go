package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eallis/wiifolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfig(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmpDir, "state"))
	t.Setenv("HOME", tmpDir)
	config.Load()
	return filepath.Join(tmpDir, config.AppName)
}

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	setupConfig(t)

	prefs, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeLight, SoundEnabled: true}, prefs)
}

func TestDefaultsFollowConfig(t *testing.T) {
	setupConfig(t)
	t.Setenv("WIIFOLIO_DEFAULT_THEME", "dark")
	t.Setenv("WIIFOLIO_DEFAULT_SOUND", "false")
	config.Load()

	assert.Equal(t, Preferences{Theme: ThemeDark, SoundEnabled: false}, Default())
}

func TestSaveThenLoad(t *testing.T) {
	configDir := setupConfig(t)

	require.NoError(t, Save(Preferences{Theme: ThemeDark, SoundEnabled: false}))
	assert.FileExists(t, filepath.Join(configDir, "prefs.toml"))

	prefs, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Preferences{Theme: ThemeDark, SoundEnabled: false}, prefs)
}

func TestSaveRejectsUnknownTheme(t *testing.T) {
	setupConfig(t)

	err := Save(Preferences{Theme: "neon"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme")
	assert.NoFileExists(t, Path())
}

func TestLoadNormalizesStoredTheme(t *testing.T) {
	setupConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0755))
	require.NoError(t, os.WriteFile(Path(), []byte("theme = \"purple\"\nsound_enabled = false\n"), 0644))

	prefs, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, prefs.Theme)
	assert.False(t, prefs.SoundEnabled)
}

func TestLoadReportsMalformedFile(t *testing.T) {
	setupConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(Path()), 0755))
	require.NoError(t, os.WriteFile(Path(), []byte("theme = [broken"), 0644))

	prefs, err := Load()
	require.Error(t, err)
	assert.Equal(t, Default(), prefs)
}

func TestPathOverride(t *testing.T) {
	tmpDir := setupConfig(t)
	custom := filepath.Join(tmpDir, "custom", "p.toml")
	t.Setenv("WIIFOLIO_PREFS_PATH", custom)
	config.Load()

	assert.Equal(t, custom, Path())
	require.NoError(t, Save(Default()))
	assert.FileExists(t, custom)
}

func TestReset(t *testing.T) {
	setupConfig(t)
	require.NoError(t, Reset(), "resetting a missing file is fine")

	require.NoError(t, Save(Preferences{Theme: ThemeDark}))
	require.NoError(t, Reset())
	assert.NoFileExists(t, Path())
}

func TestSet(t *testing.T) {
	base := Preferences{Theme: ThemeLight, SoundEnabled: true}

	p, err := base.Set("theme", "DARK")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme)

	p, err = base.Set("sound", "off")
	require.Error(t, err)
	assert.Equal(t, base, p)

	p, err = base.Set("sound", "false")
	require.NoError(t, err)
	assert.False(t, p.SoundEnabled)

	_, err = base.Set("theme", "sepia")
	assert.Error(t, err)

	_, err = base.Set("volume", "11")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestToggles(t *testing.T) {
	p := Preferences{Theme: ThemeLight, SoundEnabled: true}
	assert.Equal(t, ThemeDark, p.ToggleTheme().Theme)
	assert.Equal(t, ThemeLight, p.ToggleTheme().ToggleTheme().Theme)
	assert.False(t, p.ToggleSound().SoundEnabled)
	assert.Equal(t, ThemeLight, p.Theme, "toggles return copies")
}

func TestNormalizeTheme(t *testing.T) {
	assert.Equal(t, ThemeDark, NormalizeTheme(" Dark "))
	assert.Equal(t, ThemeLight, NormalizeTheme(""))
	assert.Equal(t, ThemeLight, NormalizeTheme("sepia"))
}
