package settings

import (
	"os"
	"path/filepath"

	"github.com/eallis/wiifolio/internal/config"
)

const prefsFilename = "prefs" + config.FileExtTOML

// Path returns the preferences file location. prefs_path overrides the
// default of {config_dir}/prefs.toml.
func Path() string {
	if override := config.Get("prefs_path", ""); override != "" {
		return override
	}
	return filepath.Join(resolveConfigDir(), prefsFilename)
}

// resolveConfigDir returns config_dir, falling back to the XDG default
// when configuration has not been loaded.
func resolveConfigDir() string {
	if configDir := config.Get("config_dir", ""); configDir != "" {
		return configDir
	}
	home, _ := os.UserHomeDir()
	xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfigHome == "" {
		xdgConfigHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfigHome, config.AppName)
}
