package clipboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval is how often the monitor reads the clipboard when no
// interval is configured.
const DefaultPollInterval = 200 * time.Millisecond

// MonitorStats counts what the monitor has done since it started
type MonitorStats struct {
	Reads        int64
	ReadFailures int64
	Changes      int64
	Inserts      int64
	WriteBacks   int64
}

// Monitor polls the system clipboard and feeds changes into a history.
//
// lastSeen tracks what was last read from, or written to, the system
// clipboard. It is guarded by mu together with the read-compare step so that
// a write-back made through Activate is never observed as a new copy. The
// history insert that follows a change happens outside mu.
type Monitor struct {
	clipboard Clipboard
	history   *ClipboardHistory
	logger    *zap.Logger
	interval  time.Duration

	mu       sync.Mutex
	lastSeen string
	primed   bool
	stats    MonitorStats

	cbMu   sync.RWMutex
	onCopy []func(text string)
}

// NewMonitor creates a monitor polling clip every interval. A non-positive
// interval selects DefaultPollInterval.
func NewMonitor(clip Clipboard, history *ClipboardHistory, logger *zap.Logger, interval time.Duration) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Monitor{
		clipboard: clip,
		history:   history,
		logger:    logger,
		interval:  interval,
	}
}

// Run polls the clipboard until ctx is cancelled. It returns within one poll
// interval of cancellation. Read failures never stop the loop.
func (m *Monitor) Run(ctx context.Context) error {
	m.logger.Info("Starting clipboard monitor",
		zap.String("backend", m.clipboard.Name()),
		zap.Duration("interval", m.interval))

	m.prime()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			stats := m.Stats()
			m.logger.Info("Clipboard monitor stopped",
				zap.Int64("reads", stats.Reads),
				zap.Int64("read_failures", stats.ReadFailures),
				zap.Int64("inserts", stats.Inserts))
			return nil
		case <-ticker.C:
			m.poll()
		}
	}
}

// prime records the clipboard content present at startup so it is not
// treated as a fresh copy.
func (m *Monitor) prime() {
	m.mu.Lock()
	defer m.mu.Unlock()

	text, err := m.clipboard.ReadText()
	m.stats.Reads++
	if err != nil {
		m.stats.ReadFailures++
		m.logger.Debug("Initial clipboard read failed", zap.Error(err))
		return
	}
	m.lastSeen = text
	m.primed = true
}

// poll performs a single read-compare-insert step. The history is updated
// after mu is released so its observers may call back into the monitor.
func (m *Monitor) poll() {
	text, changed := m.readChange()
	if !changed || !m.history.Insert(text) {
		return
	}

	m.mu.Lock()
	m.stats.Inserts++
	m.mu.Unlock()
	m.logger.Debug("New clipboard content stored", zap.Int("length", len(text)))

	m.cbMu.RLock()
	callbacks := m.onCopy
	m.cbMu.RUnlock()
	for _, fn := range callbacks {
		fn(text)
	}
}

// readChange reads the clipboard and records the text as seen when it
// differs from the last value read or written
func (m *Monitor) readChange() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	text, err := m.clipboard.ReadText()
	m.stats.Reads++
	if err != nil {
		m.stats.ReadFailures++
		m.logger.Debug("Error reading clipboard", zap.Error(err))
		return "", false
	}

	if m.primed && text == m.lastSeen {
		return "", false
	}
	m.lastSeen = text
	m.primed = true
	m.stats.Changes++
	return text, true
}

// OnCopy registers fn to be called with every new copy stored in the
// history. Write-backs made through Activate are not reported.
func (m *Monitor) OnCopy(fn func(text string)) {
	m.cbMu.Lock()
	defer m.cbMu.Unlock()
	m.onCopy = append(m.onCopy, fn)
}

// Activate writes text to the system clipboard on behalf of the hotkey
// dispatcher and records it as seen, so the next poll does not store it
// again. lastSeen is left untouched when the write fails.
func (m *Monitor) Activate(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.clipboard.WriteText(text); err != nil {
		return fmt.Errorf("activate entry: %w", err)
	}
	m.lastSeen = text
	m.primed = true
	m.stats.WriteBacks++
	return nil
}

// LastSeen returns the last text read from or written to the clipboard
func (m *Monitor) LastSeen() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSeen, m.primed
}

// Stats returns a copy of the monitor counters
func (m *Monitor) Stats() MonitorStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Interval returns the poll interval in use
func (m *Monitor) Interval() time.Duration {
	return m.interval
}
