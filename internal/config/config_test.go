// File: internal/config/config_test.go

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	// Save original function and restore it after the test
	origGetConfigPath := getConfigPath
	defer func() { getConfigPath = origGetConfigPath }()

	getConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "config.yaml"), nil
	}

	// Missing file yields defaults and is not created
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(tempDir, "config.yaml")); !os.IsNotExist(err) {
		t.Errorf("Load() wrote a config file: %v", err)
	}

	// Partial file keeps defaults for absent fields
	partial := "history:\n  capacity: 5\nmonitor:\n  poll_interval: 350ms\nhotkeys:\n  cycle: alt+shift+v\n"
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(partial), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err = Load(configPath)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := DefaultConfig()
	want.History.Capacity = 5
	want.Monitor.PollInterval = 350 * time.Millisecond
	want.Hotkeys.Cycle = "alt+shift+v"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loaded config mismatch (-want +got):\n%s", diff)
	}
}

func TestSave(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	testConfig := DefaultConfig()
	testConfig.History.Capacity = 7
	testConfig.Console.PrintOnCopy = true
	testConfig.Window.RefreshInterval = time.Second
	testConfig.Log.Level = "debug"

	if err := testConfig.Save(configPath); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	file, err := os.Open(configPath)
	if err != nil {
		t.Fatalf("Failed to open saved config: %v", err)
	}
	defer file.Close()

	var loadedConfig Config
	if err := yaml.NewDecoder(file).Decode(&loadedConfig); err != nil {
		t.Fatalf("Failed to decode saved config: %v", err)
	}

	if diff := cmp.Diff(testConfig, &loadedConfig); diff != "" {
		t.Errorf("Saved config doesn't match original (-want +got):\n%s", diff)
	}

	data, _ := os.ReadFile(configPath)
	if !strings.Contains(string(data), "refresh_interval: 1s") {
		t.Errorf("durations should be written in Go notation:\n%s", data)
	}
}

func TestLoadConfigErrorHandling(t *testing.T) {
	tempDir := t.TempDir()

	origGetConfigPath := getConfigPath
	defer func() { getConfigPath = origGetConfigPath }()

	// Malformed YAML
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("history: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write invalid config: %v", err)
	}
	if _, err := Load(configPath); err == nil {
		t.Error("Load() should fail with invalid YAML")
	}

	// Out of range value
	if err := os.WriteFile(configPath, []byte("history:\n  capacity: 11\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(configPath); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, want ErrInvalid", err)
	}

	// Error in getConfigPath
	getConfigPath = func() (string, error) {
		return "", os.ErrPermission
	}
	if _, err := Load(""); err == nil {
		t.Error("Load() should fail when getConfigPath fails")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CLIPCYCLE_CAPACITY", "4")
	t.Setenv("CLIPCYCLE_POLL_INTERVAL", "150")
	t.Setenv("CLIPCYCLE_REFRESH_INTERVAL", "2s")
	t.Setenv("CLIPCYCLE_IGNORE_BLANK", "false")
	t.Setenv("CLIPCYCLE_BACKEND", "memory")
	t.Setenv("CLIPCYCLE_HOTKEY_CYCLE", "ctrl+alt+v")
	t.Setenv("CLIPCYCLE_HOTKEY_CLEAR", "ctrl+alt+x")
	t.Setenv("CLIPCYCLE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := DefaultConfig()
	want.History.Capacity = 4
	want.History.IgnoreBlank = false
	want.Monitor.PollInterval = 150 * time.Millisecond
	want.Monitor.Backend = "memory"
	want.Window.RefreshInterval = 2 * time.Second
	want.Hotkeys.Cycle = "ctrl+alt+v"
	want.Hotkeys.Clear = "ctrl+alt+x"
	want.Log.Level = "debug"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("env overrides mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvOverrides_Malformed(t *testing.T) {
	for _, env := range []string{
		"CLIPCYCLE_CAPACITY",
		"CLIPCYCLE_POLL_INTERVAL",
		"CLIPCYCLE_IGNORE_BLANK",
	} {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, "lots")
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"capacity zero", func(c *Config) { c.History.Capacity = 0 }, "history.capacity"},
		{"capacity too large", func(c *Config) { c.History.Capacity = MaxCapacity + 1 }, "history.capacity"},
		{"poll interval", func(c *Config) { c.Monitor.PollInterval = 0 }, "monitor.poll_interval"},
		{"refresh interval", func(c *Config) { c.Window.RefreshInterval = -time.Second }, "window.refresh_interval"},
		{"backend", func(c *Config) { c.Monitor.Backend = "x11" }, "monitor.backend"},
		{"log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"preview", func(c *Config) { c.Console.PreviewLength = 2 }, "console.preview_length"},
		{"window size", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"bad hotkey", func(c *Config) { c.Hotkeys.Cycle = "v" }, "hotkeys.cycle"},
		{"same hotkeys", func(c *Config) { c.Hotkeys.Clear = c.Hotkeys.Cycle }, "both"},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() error = %v, want ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %q", err, tt.field)
			}
		})
	}
}

func TestValidate_HotkeysDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hotkeys.Enabled = false
	cfg.Hotkeys.Cycle = "nonsense"

	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled hotkeys should not be parsed: %v", err)
	}
}

func TestBindings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hotkeys.Cycle = "<ctrl>+<shift>+v"
	cfg.Hotkeys.Clear = "ctrl+alt+c"

	b, err := cfg.Bindings()
	if err != nil {
		t.Fatalf("Bindings() failed: %v", err)
	}
	if b.Cycle.String() != "ctrl+shift+v" || b.Clear.String() != "ctrl+alt+c" {
		t.Errorf("Bindings() = %s / %s", b.Cycle, b.Clear)
	}
}

func TestPlatformDefaults(t *testing.T) {
	mac := platformDefaultsFor("darwin")
	if mac.CycleHotkey != "cmd+shift+v" || mac.ClearHotkey != "cmd+alt+c" || !mac.NeedsAccessibility {
		t.Errorf("darwin defaults = %+v", mac)
	}

	for _, goos := range []string{"linux", "windows", "freebsd"} {
		d := platformDefaultsFor(goos)
		if d.CycleHotkey != "ctrl+shift+v" || d.ClearHotkey != "ctrl+alt+c" {
			t.Errorf("%s defaults = %+v", goos, d)
		}
		if d.PollInterval != 200*time.Millisecond {
			t.Errorf("%s poll interval = %v", goos, d.PollInterval)
		}
	}
}

func TestGetConfigPaths(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIPCYCLE_CONFIG_DIR", dir)

	paths, err := GetConfigPaths()
	if err != nil {
		t.Fatalf("GetConfigPaths() failed: %v", err)
	}
	if paths.ConfigFile != filepath.Join(dir, "config.yaml") {
		t.Errorf("ConfigFile = %s", paths.ConfigFile)
	}

	t.Setenv("CLIPCYCLE_CONFIG", "/etc/clipcycle.yaml")
	path, err := GetActiveConfigPath()
	if err != nil || path != "/etc/clipcycle.yaml" {
		t.Errorf("GetActiveConfigPath() = %q, %v", path, err)
	}
}
