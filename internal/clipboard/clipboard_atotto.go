package clipboard

import (
	"fmt"

	atottoClip "github.com/atotto/clipboard"
)

// AtottoClipboard is a fallback clipboard implementation using the
// atotto/clipboard library, which shells out to pbcopy, xclip, xsel,
// wl-copy or the Win32 API depending on the platform.
type AtottoClipboard struct{}

// NewAtottoClipboard returns the atotto backend, or ErrUnavailable when no
// helper utility was found on this system.
func NewAtottoClipboard() (*AtottoClipboard, error) {
	if atottoClip.Unsupported {
		return nil, fmt.Errorf("%w: no clipboard utility found", ErrUnavailable)
	}
	return &AtottoClipboard{}, nil
}

func (c *AtottoClipboard) Name() string { return "atotto" }

func (c *AtottoClipboard) ReadText() (string, error) {
	text, err := atottoClip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}

func (c *AtottoClipboard) WriteText(text string) error {
	if err := atottoClip.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

func (c *AtottoClipboard) Close() error { return nil }
