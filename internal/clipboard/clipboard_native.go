package clipboard

import (
	"fmt"

	"golang.design/x/clipboard"
)

// NativeClipboard talks to the platform clipboard through
// golang.design/x/clipboard (NSPasteboard, Win32, X11).
type NativeClipboard struct{}

// NewNativeClipboard initialises the native clipboard. Init fails on systems
// without a display server, in which case ErrUnavailable is returned.
func NewNativeClipboard() (*NativeClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &NativeClipboard{}, nil
}

func (c *NativeClipboard) Name() string { return "native" }

// ReadText never fails; the library reports an unreadable or non-text
// clipboard as empty.
func (c *NativeClipboard) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (c *NativeClipboard) WriteText(text string) error {
	// the returned channel only signals a later overwrite by someone else
	_ = clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

func (c *NativeClipboard) Close() error { return nil }
