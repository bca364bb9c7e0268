// File: internal/config/config.go

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/berrythewa/clipcycle/internal/clipboard"
	"github.com/berrythewa/clipcycle/internal/hotkey"
)

// ErrInvalid is returned when a configuration value is out of range
var ErrInvalid = errors.New("invalid configuration")

// MaxCapacity is the largest supported number of history slots
const MaxCapacity = 10

// getConfigPath is swapped out in tests
var getConfigPath = getDesktopConfigPath

// ConfigPaths holds all relevant paths for the application
type ConfigPaths struct {
	BaseDir    string // Base directory for all config files
	ConfigFile string // Path to the config file
	LogDir     string // Directory for log files
}

// Config holds all application configuration
type Config struct {
	History HistoryConfig `json:"history" yaml:"history"`
	Monitor MonitorConfig `json:"monitor" yaml:"monitor"`
	Window  WindowConfig  `json:"window" yaml:"window"`
	Console ConsoleConfig `json:"console" yaml:"console"`
	Hotkeys HotkeyConfig  `json:"hotkeys" yaml:"hotkeys"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

// HistoryConfig controls the in-memory history
type HistoryConfig struct {
	Capacity    int  `json:"capacity" yaml:"capacity"`
	IgnoreBlank bool `json:"ignore_blank" yaml:"ignore_blank"`
}

// MonitorConfig controls clipboard polling
type MonitorConfig struct {
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`
	Backend      string        `json:"backend" yaml:"backend"` // auto|native|atotto|memory
}

// WindowConfig holds GUI settings
type WindowConfig struct {
	Title           string        `json:"title" yaml:"title"`
	RefreshInterval time.Duration `json:"refresh_interval" yaml:"refresh_interval"`
	PreviewLength   int           `json:"preview_length" yaml:"preview_length"`
	Width           float32       `json:"width" yaml:"width"`
	Height          float32       `json:"height" yaml:"height"`
}

// ConsoleConfig holds terminal output settings
type ConsoleConfig struct {
	PreviewLength int  `json:"preview_length" yaml:"preview_length"`
	PrintOnCopy   bool `json:"print_on_copy" yaml:"print_on_copy"`
}

// HotkeyConfig holds the global key bindings
type HotkeyConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Cycle   string `json:"cycle" yaml:"cycle"`
	Clear   string `json:"clear" yaml:"clear"`
}

// LogConfig holds logging-related configuration
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug|info|warn|error
	Format string `json:"format" yaml:"format"` // console|json
	File   string `json:"file" yaml:"file"`     // empty: stderr
}

// GetConfigPaths returns the platform-specific configuration paths
func GetConfigPaths() (*ConfigPaths, error) {
	// First check environment variable for base directory
	baseDir := os.Getenv("CLIPCYCLE_CONFIG_DIR")
	if baseDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(configDir, GetPlatformDefaults().DirName)
	}

	return &ConfigPaths{
		BaseDir:    baseDir,
		ConfigFile: filepath.Join(baseDir, "config.yaml"),
		LogDir:     filepath.Join(baseDir, "logs"),
	}, nil
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	defaults := GetPlatformDefaults()

	return &Config{
		History: HistoryConfig{
			Capacity:    3,
			IgnoreBlank: true,
		},
		Monitor: MonitorConfig{
			PollInterval: defaults.PollInterval,
			Backend:      clipboard.BackendAuto,
		},
		Window: WindowConfig{
			Title:           "Clipboard History",
			RefreshInterval: 500 * time.Millisecond,
			PreviewLength:   60,
			Width:           400,
			Height:          200,
		},
		Console: ConsoleConfig{
			PreviewLength: 120,
		},
		Hotkeys: HotkeyConfig{
			Enabled: true,
			Cycle:   defaults.CycleHotkey,
			Clear:   defaults.ClearHotkey,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration from configPath, or the default location when
// configPath is empty. A missing file yields the defaults; nothing is written.
// Environment overrides are applied and the result is validated.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// fields absent from the file keep their defaults
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		ApplyPlatformDefaults(cfg)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := overrideFromEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the specified file
func (c *Config) Save(configPath string) error {
	// Ensure the directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetActiveConfigPath returns the config file path used when none is given
func GetActiveConfigPath() (string, error) {
	return getConfigPath()
}

// Validate checks every value against its allowed range. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.History.Capacity < 1 || c.History.Capacity > MaxCapacity {
		add("history.capacity must be between 1 and %d, got %d", MaxCapacity, c.History.Capacity)
	}
	if c.Monitor.PollInterval <= 0 {
		add("monitor.poll_interval must be positive")
	}
	switch c.Monitor.Backend {
	case clipboard.BackendAuto, clipboard.BackendNative, clipboard.BackendAtotto, clipboard.BackendMemory:
	default:
		add("monitor.backend %q is not one of auto, native, atotto, memory", c.Monitor.Backend)
	}
	if c.Window.RefreshInterval <= 0 {
		add("window.refresh_interval must be positive")
	}
	if c.Window.PreviewLength < 4 {
		add("window.preview_length must be at least 4")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window size must be positive")
	}
	if c.Console.PreviewLength < 4 {
		add("console.preview_length must be at least 4")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		add("log.format %q is not one of console, json", c.Log.Format)
	}
	if c.Hotkeys.Enabled {
		if _, err := c.Bindings(); err != nil {
			add("%v", err)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// Bindings parses the configured hotkeys
func (c *Config) Bindings() (hotkey.Bindings, error) {
	cycle, err := hotkey.Parse(c.Hotkeys.Cycle)
	if err != nil {
		return hotkey.Bindings{}, fmt.Errorf("hotkeys.cycle: %w", err)
	}
	reset, err := hotkey.Parse(c.Hotkeys.Clear)
	if err != nil {
		return hotkey.Bindings{}, fmt.Errorf("hotkeys.clear: %w", err)
	}
	if cycle == reset {
		return hotkey.Bindings{}, fmt.Errorf("hotkeys.cycle and hotkeys.clear are both %s", cycle)
	}
	return hotkey.Bindings{Cycle: cycle, Clear: reset}, nil
}

// overrideFromEnv overrides configuration values from environment variables
func overrideFromEnv(config *Config) error {
	if val := os.Getenv("CLIPCYCLE_CAPACITY"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: CLIPCYCLE_CAPACITY=%q: %v", ErrInvalid, val, err)
		}
		config.History.Capacity = n
	}
	if val := os.Getenv("CLIPCYCLE_IGNORE_BLANK"); val != "" {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: CLIPCYCLE_IGNORE_BLANK=%q: %v", ErrInvalid, val, err)
		}
		config.History.IgnoreBlank = b
	}
	if val := os.Getenv("CLIPCYCLE_POLL_INTERVAL"); val != "" {
		d, err := parseInterval(val)
		if err != nil {
			return fmt.Errorf("%w: CLIPCYCLE_POLL_INTERVAL=%q: %v", ErrInvalid, val, err)
		}
		config.Monitor.PollInterval = d
	}
	if val := os.Getenv("CLIPCYCLE_REFRESH_INTERVAL"); val != "" {
		d, err := parseInterval(val)
		if err != nil {
			return fmt.Errorf("%w: CLIPCYCLE_REFRESH_INTERVAL=%q: %v", ErrInvalid, val, err)
		}
		config.Window.RefreshInterval = d
	}
	if val := os.Getenv("CLIPCYCLE_BACKEND"); val != "" {
		config.Monitor.Backend = val
	}
	if val := os.Getenv("CLIPCYCLE_HOTKEY_CYCLE"); val != "" {
		config.Hotkeys.Cycle = val
	}
	if val := os.Getenv("CLIPCYCLE_HOTKEY_CLEAR"); val != "" {
		config.Hotkeys.Clear = val
	}
	if val := os.Getenv("CLIPCYCLE_LOG_LEVEL"); val != "" {
		config.Log.Level = val
	}
	return nil
}

// parseInterval accepts a Go duration ("250ms") or plain milliseconds ("250")
func parseInterval(val string) (time.Duration, error) {
	if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(val)
}
