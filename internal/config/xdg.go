package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigDir returns the XDG config directory for the tool, typically
// ~/.config/totp on Linux.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "totp")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json5")
}

// DataDir returns the XDG data directory holding the service index and
// the file-store fallback, typically ~/.local/share/totp on Linux.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "totp")
}
