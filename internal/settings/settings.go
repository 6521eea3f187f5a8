// Package settings persists the visitor's display preferences.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/eallis/wiifolio/internal/config"
	"github.com/pelletier/go-toml/v2"
)

// Theme is the colour scheme of the TUI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Keys accepted by Set.
const (
	KeyTheme = "theme"
	KeySound = "sound"
)

// ErrUnknownKey is returned by Set for keys other than KeyTheme and KeySound.
var ErrUnknownKey = errors.New("unknown preference key")

// Preferences holds the persisted visitor choices.
//
// Stored at {config_dir}/prefs.toml:
//
//	theme = "dark"
//	sound_enabled = true
type Preferences struct {
	Theme        Theme `toml:"theme"`
	SoundEnabled bool  `toml:"sound_enabled"`
}

// NormalizeTheme maps anything other than "dark" to the light theme.
func NormalizeTheme(s string) Theme {
	if Theme(strings.ToLower(strings.TrimSpace(s))) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// Default returns the preferences used when nothing is stored yet,
// taken from default_theme and default_sound.
func Default() Preferences {
	return Preferences{
		Theme:        NormalizeTheme(config.Get("default_theme", string(ThemeLight))),
		SoundEnabled: config.GetBool("default_sound", true),
	}
}

// Load reads the preferences file. A missing file yields Default().
func Load() (Preferences, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read preferences file: %w", err)
	}

	prefs := Default()
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Default(), fmt.Errorf("failed to parse preferences file %s: %w", path, err)
	}
	prefs.Theme = NormalizeTheme(string(prefs.Theme))
	return prefs, nil
}

// Save validates prefs and writes them, creating the config directory if needed.
func Save(prefs Preferences) error {
	if err := validate(prefs); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), config.FileModeDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := toml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := os.WriteFile(path, data, config.FileModeFile); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}
	return nil
}

// Reset removes the stored file so the next Load returns defaults.
func Reset() error {
	if err := os.Remove(Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove preferences file: %w", err)
	}
	return nil
}

func validate(prefs Preferences) error {
	switch prefs.Theme {
	case ThemeLight, ThemeDark:
		return nil
	default:
		return fmt.Errorf("invalid theme: %q", prefs.Theme)
	}
}

// Set applies a textual key/value pair, as given on the command line.
func (p Preferences) Set(key, value string) (Preferences, error) {
	switch strings.ToLower(key) {
	case KeyTheme:
		theme := Theme(strings.ToLower(value))
		if err := validate(Preferences{Theme: theme}); err != nil {
			return p, err
		}
		p.Theme = theme
	case KeySound:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return p, fmt.Errorf("invalid sound value %q: expected true or false", value)
		}
		p.SoundEnabled = enabled
	default:
		return p, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return p, nil
}

// ToggleTheme flips between light and dark.
func (p Preferences) ToggleTheme() Preferences {
	if p.Theme == ThemeDark {
		p.Theme = ThemeLight
	} else {
		p.Theme = ThemeDark
	}
	return p
}

// ToggleSound flips SoundEnabled.
func (p Preferences) ToggleSound() Preferences {
	p.SoundEnabled = !p.SoundEnabled
	return p
}
