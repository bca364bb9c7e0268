//go:build !nohotkeys

package native

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/berrythewa/clipcycle/internal/hotkey"
)

// X11 maps Alt to Mod1 and Super to Mod4 on virtually every keymap
func nativeModifiers(m hotkey.Modifier) []xhotkey.Modifier {
	var mods []xhotkey.Modifier
	if m&hotkey.ModCtrl != 0 {
		mods = append(mods, xhotkey.ModCtrl)
	}
	if m&hotkey.ModShift != 0 {
		mods = append(mods, xhotkey.ModShift)
	}
	if m&hotkey.ModAlt != 0 {
		mods = append(mods, xhotkey.Mod1)
	}
	if m&hotkey.ModSuper != 0 {
		mods = append(mods, xhotkey.Mod4)
	}
	return mods
}
