//go:build !nohotkeys

package native

import (
	xhotkey "golang.design/x/hotkey"

	"github.com/berrythewa/clipcycle/internal/hotkey"
)

func nativeModifiers(m hotkey.Modifier) []xhotkey.Modifier {
	var mods []xhotkey.Modifier
	if m&hotkey.ModCtrl != 0 {
		mods = append(mods, xhotkey.ModCtrl)
	}
	if m&hotkey.ModShift != 0 {
		mods = append(mods, xhotkey.ModShift)
	}
	if m&hotkey.ModAlt != 0 {
		mods = append(mods, xhotkey.ModOption)
	}
	if m&hotkey.ModSuper != 0 {
		mods = append(mods, xhotkey.ModCmd)
	}
	return mods
}
