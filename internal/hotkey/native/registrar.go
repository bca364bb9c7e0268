//go:build (darwin || linux || windows) && !nohotkeys

// Package native registers global hotkeys with the operating system. On
// Linux the underlying library connects to the X server when the package is
// initialised, so only binaries import it; build with -tags nohotkeys for a
// headless binary.
package native

import (
	"fmt"
	"sync"

	xhotkey "golang.design/x/hotkey"
	"go.uber.org/zap"

	"github.com/berrythewa/clipcycle/internal/hotkey"
)

var nativeKeys = map[string]xhotkey.Key{
	"a": xhotkey.KeyA, "b": xhotkey.KeyB, "c": xhotkey.KeyC, "d": xhotkey.KeyD,
	"e": xhotkey.KeyE, "f": xhotkey.KeyF, "g": xhotkey.KeyG, "h": xhotkey.KeyH,
	"i": xhotkey.KeyI, "j": xhotkey.KeyJ, "k": xhotkey.KeyK, "l": xhotkey.KeyL,
	"m": xhotkey.KeyM, "n": xhotkey.KeyN, "o": xhotkey.KeyO, "p": xhotkey.KeyP,
	"q": xhotkey.KeyQ, "r": xhotkey.KeyR, "s": xhotkey.KeyS, "t": xhotkey.KeyT,
	"u": xhotkey.KeyU, "v": xhotkey.KeyV, "w": xhotkey.KeyW, "x": xhotkey.KeyX,
	"y": xhotkey.KeyY, "z": xhotkey.KeyZ,

	"0": xhotkey.Key0, "1": xhotkey.Key1, "2": xhotkey.Key2, "3": xhotkey.Key3,
	"4": xhotkey.Key4, "5": xhotkey.Key5, "6": xhotkey.Key6, "7": xhotkey.Key7,
	"8": xhotkey.Key8, "9": xhotkey.Key9,

	"f1": xhotkey.KeyF1, "f2": xhotkey.KeyF2, "f3": xhotkey.KeyF3, "f4": xhotkey.KeyF4,
	"f5": xhotkey.KeyF5, "f6": xhotkey.KeyF6, "f7": xhotkey.KeyF7, "f8": xhotkey.KeyF8,
	"f9": xhotkey.KeyF9, "f10": xhotkey.KeyF10, "f11": xhotkey.KeyF11, "f12": xhotkey.KeyF12,

	"space":  xhotkey.KeySpace,
	"tab":    xhotkey.KeyTab,
	"enter":  xhotkey.KeyReturn,
	"escape": xhotkey.KeyEscape,
	"delete": xhotkey.KeyDelete,
}

// Registrar registers system-wide hotkeys through golang.design/x/hotkey.
type Registrar struct {
	logger *zap.Logger
}

// NewRegistrar returns the registrar for this platform
func NewRegistrar(logger *zap.Logger) hotkey.Registrar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registrar{logger: logger}
}

func (r *Registrar) Register(b hotkey.Binding, fn func()) (hotkey.Handle, error) {
	key, ok := nativeKeys[b.Key]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported key %q", hotkey.ErrInvalidBinding, b.Key)
	}

	hk := xhotkey.New(nativeModifiers(b.Modifiers), key)
	if err := hk.Register(); err != nil {
		return nil, err
	}

	h := &nativeHandle{
		hk:     hk,
		done:   make(chan struct{}),
		logger: r.logger.With(zap.Stringer("binding", b)),
	}
	go h.listen(fn)
	return h, nil
}

type nativeHandle struct {
	hk     *xhotkey.Hotkey
	done   chan struct{}
	once   sync.Once
	logger *zap.Logger
}

func (h *nativeHandle) listen(fn func()) {
	keydown := h.hk.Keydown()
	for {
		select {
		case <-h.done:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			h.logger.Debug("Hotkey pressed")
			fn()
		}
	}
}

func (h *nativeHandle) Unregister() error {
	var err error
	h.once.Do(func() {
		close(h.done)
		err = h.hk.Unregister()
	})
	return err
}
