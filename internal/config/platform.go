// File: internal/config/platform.go

package config

import (
	"os"
	"runtime"
	"time"
)

// PlatformDefaults holds platform-specific default values
type PlatformDefaults struct {
	// Global hotkeys
	CycleHotkey string `json:"cycle_hotkey" yaml:"cycle_hotkey"`
	ClearHotkey string `json:"clear_hotkey" yaml:"clear_hotkey"`

	// Clipboard monitoring
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`

	// Directory name under the user config dir
	DirName string `json:"dir_name" yaml:"dir_name"`

	// Hotkeys need the Accessibility permission
	NeedsAccessibility bool `json:"needs_accessibility" yaml:"needs_accessibility"`
}

// GetPlatformDefaults returns defaults for the running platform
func GetPlatformDefaults() PlatformDefaults {
	return platformDefaultsFor(runtime.GOOS)
}

func platformDefaultsFor(goos string) PlatformDefaults {
	switch goos {
	case "darwin":
		return PlatformDefaults{
			CycleHotkey:        "cmd+shift+v",
			ClearHotkey:        "cmd+alt+c",
			PollInterval:       200 * time.Millisecond,
			DirName:            "com.berrythewa.clipcycle",
			NeedsAccessibility: true,
		}
	case "windows":
		return PlatformDefaults{
			CycleHotkey:  "ctrl+shift+v",
			ClearHotkey:  "ctrl+alt+c",
			PollInterval: 200 * time.Millisecond,
			DirName:      "ClipCycle",
		}
	default: // Linux and other Unix-like systems
		return PlatformDefaults{
			CycleHotkey:  "ctrl+shift+v",
			ClearHotkey:  "ctrl+alt+c",
			PollInterval: 200 * time.Millisecond,
			DirName:      "clipcycle",
		}
	}
}

// ApplyPlatformDefaults fills fields left empty by a partial config file
func ApplyPlatformDefaults(cfg *Config) {
	defaults := GetPlatformDefaults()

	if cfg.Hotkeys.Cycle == "" {
		cfg.Hotkeys.Cycle = defaults.CycleHotkey
	}
	if cfg.Hotkeys.Clear == "" {
		cfg.Hotkeys.Clear = defaults.ClearHotkey
	}
	if cfg.Monitor.PollInterval == 0 {
		cfg.Monitor.PollInterval = defaults.PollInterval
	}
}

// getDesktopConfigPath returns the path to the config file on desktop platforms
func getDesktopConfigPath() (string, error) {
	// First check environment variable
	if path := os.Getenv("CLIPCYCLE_CONFIG"); path != "" {
		return path, nil
	}

	paths, err := GetConfigPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}
