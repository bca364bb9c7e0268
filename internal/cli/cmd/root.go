package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewDaemonRootCmd creates the root command of the windowless binary. It
// runs the console mode when no subcommand is given.
func NewDaemonRootCmd() *cobra.Command {
	var rf RunFlags

	root := &cobra.Command{
		Use:   "clipcycled",
		Short: "Multi-slot clipboard history for the terminal",
		Long: `clipcycled keeps the last few copied text snippets and lets you
cycle the active clipboard entry with a global hotkey:
  • Copy text as usual, it is added to the history
  • Press the cycle hotkey to put the next entry on the clipboard, then paste
  • Press the clear hotkey to forget the history`,
		SilenceUsage:      true,
		PersistentPreRunE: LoadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rf.Apply(cmd, cfg); err != nil {
				return err
			}
			return RunConsole(cmd)
		},
	}

	AddPersistentFlags(root)
	AddRunFlags(root, &rf)
	root.AddCommand(newConfigCmd(), newVersionCmd())
	return root
}

// ExecuteDaemon runs the windowless root command
func ExecuteDaemon() {
	if err := NewDaemonRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
