//go:build (!darwin && !linux && !windows) || nohotkeys

package native

import (
	"go.uber.org/zap"

	"github.com/berrythewa/clipcycle/internal/hotkey"
)

// NewRegistrar returns a registrar whose every Register fails: this build
// has no global hotkey support.
func NewRegistrar(_ *zap.Logger) hotkey.Registrar {
	return hotkey.Unavailable{Reason: "global hotkeys are not supported by this build"}
}
