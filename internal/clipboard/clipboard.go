package clipboard

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Backend names accepted by New
const (
	BackendAuto   = "auto"
	BackendNative = "native"
	BackendAtotto = "atotto"
	BackendMemory = "memory"
)

// Clipboard is the system clipboard capability. Implementations may be slow
// or fail transiently; callers treat every error as retryable.
type Clipboard interface {
	// Name returns a human-readable name for the backend
	Name() string

	// ReadText returns the current clipboard text. An empty clipboard is
	// reported as "", nil.
	ReadText() (string, error)

	// WriteText replaces the clipboard contents with text
	WriteText(text string) error

	// Close releases any resources held by the backend
	Close() error
}

// New returns the clipboard backend selected by name. "auto" tries the
// native backend first and falls back to atotto.
func New(backend string, logger *zap.Logger) (Clipboard, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch backend {
	case BackendNative:
		native, err := NewNativeClipboard()
		if err != nil {
			return nil, err
		}
		return native, nil
	case BackendAtotto:
		atotto, err := NewAtottoClipboard()
		if err != nil {
			return nil, err
		}
		return atotto, nil
	case BackendMemory:
		return NewMemoryClipboard(), nil
	case BackendAuto, "":
		native, err := NewNativeClipboard()
		if err == nil {
			return native, nil
		}
		logger.Debug("Native clipboard unavailable, trying atotto", zap.Error(err))

		atotto, err := NewAtottoClipboard()
		if err != nil {
			return nil, err
		}
		return atotto, nil
	default:
		return nil, fmt.Errorf("unknown clipboard backend %q", backend)
	}
}
