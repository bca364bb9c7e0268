package clipboard

import (
	"strings"
	"sync"

	"github.com/berrythewa/clipcycle/internal/types"
)

// HistoryOption configures a ClipboardHistory
type HistoryOption func(*ClipboardHistory)

// WithIgnoreBlank sets whether blank or whitespace-only text is rejected.
func WithIgnoreBlank(ignore bool) HistoryOption {
	return func(ch *ClipboardHistory) {
		ch.ignoreBlank = ignore
	}
}

// ClipboardHistory is a bounded, oldest-first sequence of text entries with a
// cursor marking the active entry. It is safe for concurrent use.
type ClipboardHistory struct {
	mu          sync.Mutex
	entries     []string
	active      int
	size        int
	ignoreBlank bool

	observerMu sync.RWMutex
	observers  []func()
}

// NewClipboardHistory creates a history holding at most size entries.
// A size below one is treated as one.
func NewClipboardHistory(size int, opts ...HistoryOption) *ClipboardHistory {
	if size < 1 {
		size = 1
	}
	ch := &ClipboardHistory{
		entries:     make([]string, 0, size),
		active:      types.NoActive,
		size:        size,
		ignoreBlank: true,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}

// OnChange registers fn to be called after every mutation that changed the
// history. Observers run outside the history lock, on the mutating goroutine.
func (ch *ClipboardHistory) OnChange(fn func()) {
	ch.observerMu.Lock()
	defer ch.observerMu.Unlock()
	ch.observers = append(ch.observers, fn)
}

func (ch *ClipboardHistory) notify() {
	ch.observerMu.RLock()
	observers := ch.observers
	ch.observerMu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// Insert appends text and makes it the active entry. Blank text (when the
// ignore-blank policy is on) and text equal to the most recent entry are
// silently dropped. It reports whether the text was stored.
func (ch *ClipboardHistory) Insert(text string) bool {
	ch.mu.Lock()
	if ch.ignoreBlank && strings.TrimSpace(text) == "" {
		ch.mu.Unlock()
		return false
	}
	if n := len(ch.entries); n > 0 && ch.entries[n-1] == text {
		ch.mu.Unlock()
		return false
	}

	if len(ch.entries) == ch.size {
		// shift rather than reslice so the backing array never grows
		copy(ch.entries, ch.entries[1:])
		ch.entries = ch.entries[:len(ch.entries)-1]
	}
	ch.entries = append(ch.entries, text)
	ch.active = len(ch.entries) - 1
	ch.mu.Unlock()

	ch.notify()
	return true
}

// CycleActive advances the active cursor by one, wrapping to the oldest entry,
// and returns the new active entry. It returns false on an empty history.
func (ch *ClipboardHistory) CycleActive() (string, bool) {
	ch.mu.Lock()
	if len(ch.entries) == 0 {
		ch.mu.Unlock()
		return "", false
	}
	ch.active = (ch.active + 1) % len(ch.entries)
	text := ch.entries[ch.active]
	ch.mu.Unlock()

	ch.notify()
	return text, true
}

// CurrentActive returns the active entry, if the cursor points at one.
func (ch *ClipboardHistory) CurrentActive() (string, bool) {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	if ch.active < 0 || ch.active >= len(ch.entries) {
		return "", false
	}
	return ch.entries[ch.active], true
}

// Clear drops every entry and resets the cursor.
func (ch *ClipboardHistory) Clear() {
	ch.mu.Lock()
	changed := len(ch.entries) > 0 || ch.active != types.NoActive
	ch.entries = ch.entries[:0]
	ch.active = types.NoActive
	ch.mu.Unlock()

	if changed {
		ch.notify()
	}
}

// Snapshot returns a copy of the entries and the cursor taken atomically.
func (ch *ClipboardHistory) Snapshot() types.Snapshot {
	ch.mu.Lock()
	defer ch.mu.Unlock()

	entries := make([]string, len(ch.entries))
	copy(entries, ch.entries)
	return types.Snapshot{
		Entries:  entries,
		Active:   ch.active,
		Capacity: ch.size,
	}
}

// Len returns the current number of entries
func (ch *ClipboardHistory) Len() int {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.entries)
}

// Capacity returns the maximum number of entries
func (ch *ClipboardHistory) Capacity() int {
	return ch.size
}
