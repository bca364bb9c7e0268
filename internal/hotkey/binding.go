// Package hotkey maps global key combinations to clipboard history actions.
//
// Bindings are written as "modifier+modifier+key", for example "ctrl+shift+v"
// or "cmd+alt+c". The pynput style "<ctrl>+<shift>+v" is accepted as well.
package hotkey

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// ErrInvalidBinding is returned when a binding descriptor cannot be parsed.
var ErrInvalidBinding = errors.New("invalid hotkey binding")

// Modifier is a bit set of modifier keys
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModSuper
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModCtrl, "ctrl"},
	{ModSuper, "cmd"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"cmd":     ModSuper,
	"command": ModSuper,
	"super":   ModSuper,
	"win":     ModSuper,
	"meta":    ModSuper,
}

var namedKeys = map[string]string{
	"space":  "space",
	"tab":    "tab",
	"enter":  "enter",
	"return": "enter",
	"esc":    "escape",
	"escape": "escape",
	"delete": "delete",
	"del":    "delete",
}

// Binding is a parsed key combination
type Binding struct {
	Modifiers Modifier
	Key       string
}

// Parse parses a binding descriptor. At least one modifier is required so a
// global binding never swallows a plain key press.
func Parse(desc string) (Binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(desc)), "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("%w: %q needs modifier+key", ErrInvalidBinding, desc)
	}

	var b Binding
	for _, part := range parts[:len(parts)-1] {
		name := strings.Trim(strings.TrimSpace(part), "<>")
		mod, ok := modifierAliases[name]
		if !ok {
			return Binding{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidBinding, name, desc)
		}
		if b.Modifiers&mod != 0 {
			return Binding{}, fmt.Errorf("%w: modifier %q repeated in %q", ErrInvalidBinding, name, desc)
		}
		b.Modifiers |= mod
	}

	key, err := parseKey(strings.Trim(strings.TrimSpace(parts[len(parts)-1]), "<>"))
	if err != nil {
		return Binding{}, fmt.Errorf("%w: %v in %q", ErrInvalidBinding, err, desc)
	}
	b.Key = key
	return b, nil
}

func parseKey(name string) (string, error) {
	switch {
	case name == "":
		return "", errors.New("missing key")
	case len(name) == 1 && (name[0] >= 'a' && name[0] <= 'z' || name[0] >= '0' && name[0] <= '9'):
		return name, nil
	case name[0] == 'f' && len(name) <= 3:
		if n, err := strconv.Atoi(name[1:]); err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == name[1:] {
			return name, nil
		}
	}
	if key, ok := namedKeys[name]; ok {
		return key, nil
	}
	return "", fmt.Errorf("unsupported key %q", name)
}

// String returns the canonical descriptor, e.g. "ctrl+shift+v"
func (b Binding) String() string {
	parts := make([]string, 0, 5)
	for _, m := range modifierNames {
		if b.Modifiers&m.mod != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(append(parts, b.Key), "+")
}

// Has reports whether every modifier in mod is part of the binding
func (b Binding) Has(mod Modifier) bool {
	return b.Modifiers&mod == mod
}

// RegistrationHint returns user guidance for a failed hotkey registration
func RegistrationHint() string {
	return hintFor(runtime.GOOS)
}

func hintFor(goos string) string {
	switch goos {
	case "darwin":
		return "grant Accessibility permission to your terminal (System Settings > Privacy & Security > Accessibility)"
	case "linux":
		return "make sure an X11 session is available and no other application owns the combination"
	default:
		return "the combination may already be owned by another application; pick a different one in the config file"
	}
}
