package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.design/x/hotkey/mainthread"

	"github.com/berrythewa/clipcycle/internal/daemon"
)

// newConsoleCmd creates the console command
func newConsoleCmd() *cobra.Command {
	var rf RunFlags

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run without a window and print the history to the terminal",
		Long: `Run the clipboard history in the terminal.

The history stack is printed after every cycle and clear. Set
console.print_on_copy in the config file to also print it on every new copy.
Press Ctrl+C to exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.Apply(cmd, cfg); err != nil {
				return err
			}
			return RunConsole(cmd)
		},
	}

	AddRunFlags(cmd, &rf)
	return cmd
}

// RunConsole runs the daemon with the console sink until SIGINT or SIGTERM.
// On macOS the hotkey event loop needs the main thread, so the daemon runs
// on a separate goroutine under mainthread.Init.
func RunConsole(cmd *cobra.Command) error {
	logger := GetZapLogger()
	defer logger.Sync()

	d, err := daemon.New(daemon.Options{
		Config:    cfg,
		Logger:    logger,
		Registrar: NewRegistrar(logger),
		Console:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOrBackground(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var runErr error
	mainthread.Init(func() {
		runErr = d.Run(ctx)
	})
	return runErr
}

// contextOrBackground returns the command context, which is nil when a
// command is executed without ExecuteContext
func contextOrBackground(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
