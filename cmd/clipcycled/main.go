// clipcycled is the windowless build: it never links the GUI toolkit. Build
// with -tags nohotkeys to run on a machine without a display server.
package main

import (
	cmdpkg "github.com/berrythewa/clipcycle/internal/cli/cmd"
	"github.com/berrythewa/clipcycle/internal/hotkey/native"
)

var (
	version   = "dev"
	buildTime = "unknown"
	commit    = "none"
)

func main() {
	cmdpkg.SetVersionInfo(version, buildTime, commit)
	cmdpkg.SetRegistrarFactory(native.NewRegistrar)
	cmdpkg.ExecuteDaemon()
}
