package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/berrythewa/clipcycle/internal/config"
)

// AddPersistentFlags registers the flags shared by every command
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is the platform config dir, see 'config path')")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")
}

// LoadConfig loads the configuration and logger and shares them with every
// command. It is used as PersistentPreRunE by both root commands.
func LoadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		loaded.Log.Level = logLevel
		if err := loaded.Validate(); err != nil {
			return err
		}
	}
	SetConfig(loaded)

	logger, err := SetupLogger(loaded)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	SetZapLogger(logger)
	return nil
}

// RunFlags are the overrides accepted by the commands that start the daemon
type RunFlags struct {
	Capacity     int
	PollInterval time.Duration
	Backend      string
	NoHotkeys    bool
}

// AddRunFlags registers the run overrides on cmd
func AddRunFlags(cmd *cobra.Command, rf *RunFlags) {
	cmd.Flags().IntVarP(&rf.Capacity, "capacity", "n", 0, "number of history slots (1-10)")
	cmd.Flags().DurationVar(&rf.PollInterval, "poll-interval", 0, "clipboard poll interval, e.g. 200ms")
	cmd.Flags().StringVar(&rf.Backend, "backend", "", "clipboard backend (auto, native, atotto, memory)")
	cmd.Flags().BoolVar(&rf.NoHotkeys, "no-hotkeys", false, "do not register global hotkeys")
}

// Apply copies the flags the user set onto c and validates the result
func (rf *RunFlags) Apply(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("capacity") {
		c.History.Capacity = rf.Capacity
	}
	if flags.Changed("poll-interval") {
		c.Monitor.PollInterval = rf.PollInterval
	}
	if flags.Changed("backend") {
		c.Monitor.Backend = rf.Backend
	}
	if rf.NoHotkeys {
		c.Hotkeys.Enabled = false
	}
	return c.Validate()
}
