package cmd

import (
	"github.com/berrythewa/clipcycle/internal/config"
	"github.com/berrythewa/clipcycle/internal/hotkey"
	"go.uber.org/zap"
)

// Shared variables across all commands
var (
	cfg       *config.Config
	zapLogger *zap.Logger

	newRegistrar func(*zap.Logger) hotkey.Registrar

	cfgFile  string
	logLevel string
	verbose  bool
	quiet    bool
)

// SetConfig sets the configuration for commands
func SetConfig(config *config.Config) {
	cfg = config
}

func GetConfig() *config.Config {
	return cfg
}

// SetZapLogger sets the logger for commands
func SetZapLogger(log *zap.Logger) {
	zapLogger = log
}

func GetZapLogger() *zap.Logger {
	if zapLogger == nil {
		return zap.NewNop()
	}
	return zapLogger
}

// ConfigFile returns the --config flag value
func ConfigFile() string {
	return cfgFile
}

// SetRegistrarFactory sets how commands that run the daemon obtain the global
// hotkey registrar. Without one, hotkeys are reported as unavailable.
func SetRegistrarFactory(fn func(*zap.Logger) hotkey.Registrar) {
	newRegistrar = fn
}

// NewRegistrar returns a registrar from the configured factory, or nil
func NewRegistrar(logger *zap.Logger) hotkey.Registrar {
	if newRegistrar == nil {
		return nil
	}
	return newRegistrar(logger.Named("hotkey"))
}
