package cmd

import (
	"fmt"

	"github.com/berrythewa/clipcycle/internal/common"
	"github.com/berrythewa/clipcycle/internal/config"
	"go.uber.org/zap"
)

// SetupLogger creates a zap logger from the log config and the --verbose and
// --quiet flags
func SetupLogger(cfg *config.Config) (*zap.Logger, error) {
	return common.NewLogger(cfg.Log, common.LoggerOptions{
		Verbose: verbose,
		Quiet:   quiet,
	})
}

// GetLogger returns the configured logger, creating it if necessary
func GetLogger() (*zap.Logger, error) {
	if zapLogger != nil {
		return zapLogger, nil
	}

	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	logger, err := SetupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	zapLogger = logger
	return logger, nil
}
