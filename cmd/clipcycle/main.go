package main

import (
	"github.com/berrythewa/clipcycle/internal/cli"
	cmdpkg "github.com/berrythewa/clipcycle/internal/cli/cmd"
	"github.com/berrythewa/clipcycle/internal/hotkey/native"
)

var (
	version   = "dev"
	buildTime = "unknown"
	commit    = "none"
)

func main() {
	// Set version information
	cli.SetVersionInfo(version, buildTime, commit)

	cmdpkg.SetRegistrarFactory(native.NewRegistrar)

	// Execute the root command
	cli.Execute()
}
