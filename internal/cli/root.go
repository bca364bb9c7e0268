package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cmdpkg "github.com/berrythewa/clipcycle/internal/cli/cmd"
	"github.com/berrythewa/clipcycle/internal/daemon"
	"github.com/berrythewa/clipcycle/internal/gui"
)

var (
	runFlags cmdpkg.RunFlags

	// Version information - set by main
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "none"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "clipcycle",
	Short: "Multi-slot clipboard history with a global cycle hotkey",
	Long: `clipcycle keeps the last few copied text snippets, shows them in a
small window and lets you cycle the active clipboard entry with a global hotkey.

Running clipcycle without any commands opens the history window.
Use 'clipcycle console' to run in the terminal instead.`,
	SilenceUsage:      true,
	PersistentPreRunE: cmdpkg.LoadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := cmdpkg.GetConfig()
		if err := runFlags.Apply(cmd, cfg); err != nil {
			return err
		}
		return runGUI(cmd.Context())
	},
}

// runGUI runs the daemon in the background and the window on the main
// goroutine. Closing the window stops the daemon.
func runGUI(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := cmdpkg.GetConfig()
	logger := cmdpkg.GetZapLogger()
	defer logger.Sync()

	d, err := daemon.New(daemon.Options{
		Config:    cfg,
		Logger:    logger,
		Registrar: cmdpkg.NewRegistrar(logger),
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	app := gui.NewApp(cfg.Window, cfg.History.Capacity, d, d.Dispatcher(), logger.Named("gui"))
	d.History().OnChange(app.Refresh)

	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()

	app.Run(ctx, cancel)
	cancel()

	if err := <-done; err != nil {
		logger.Error("Daemon stopped with error", zap.Error(err))
		return err
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersionInfo sets the version information used by the version command
func SetVersionInfo(version, buildTime, commit string) {
	Version = version
	BuildTime = buildTime
	Commit = commit
	cmdpkg.SetVersionInfo(version, buildTime, commit)
}

// AddCommand adds a command to the root command
func AddCommand(cmd *cobra.Command) {
	RootCmd.AddCommand(cmd)
}

func init() {
	cmdpkg.AddPersistentFlags(RootCmd)
	cmdpkg.AddRunFlags(RootCmd, &runFlags)

	for _, command := range cmdpkg.GetCommands() {
		AddCommand(command)
	}
}
