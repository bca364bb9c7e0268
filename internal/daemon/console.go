package daemon

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/berrythewa/clipcycle/internal/clipboard"
	"github.com/berrythewa/clipcycle/internal/config"
	"github.com/berrythewa/clipcycle/internal/hotkey"
	"github.com/berrythewa/clipcycle/internal/types"
	"github.com/berrythewa/clipcycle/pkg/format"
)

// ConsoleSink prints the history stack to a terminal after hotkey actions
type ConsoleSink struct {
	mu        sync.Mutex
	out       io.Writer
	formatter *format.Formatter
	snapshot  func() types.Snapshot
}

// NewConsoleSink creates a sink writing to w. Colours are used only when w
// is a terminal.
func NewConsoleSink(w io.Writer, cfg config.ConsoleConfig, snapshot func() types.Snapshot) *ConsoleSink {
	opts := format.DefaultOptions()
	opts.UseColors = IsTerminal(w)
	if cfg.PreviewLength > 0 {
		opts.MaxWidth = cfg.PreviewLength
	}
	return &ConsoleSink{
		out:       w,
		formatter: format.New(opts),
		snapshot:  snapshot,
	}
}

// IsTerminal reports whether w is a terminal
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// HandleEvent renders a dispatcher event
func (c *ConsoleSink) HandleEvent(ev hotkey.Event) {
	switch ev.Action {
	case hotkey.ActionCycle:
		if !ev.OK {
			c.println(c.formatter.FormatNothingToCycle())
			return
		}
		c.PrintStack()
	case hotkey.ActionClear:
		c.println(c.formatter.FormatCleared())
	}
}

// PrintStack prints the current history
func (c *ConsoleSink) PrintStack() {
	c.println(c.formatter.FormatStack(c.snapshot()))
}

// PrintBanner prints the startup banner
func (c *ConsoleSink) PrintBanner(b format.Banner) {
	c.println(c.formatter.FormatBanner(b))
}

// PrintWarning prints a highlighted warning line
func (c *ConsoleSink) PrintWarning(msg string) {
	c.println(format.ColorizeIf("⚠ "+msg, format.Yellow, c.formatter.Options().UseColors))
}

// PrintStats prints the poller counters of the session
func (c *ConsoleSink) PrintStats(stats clipboard.MonitorStats) {
	c.println(format.FormatStats("Session", []format.Stat{
		{Label: "Clipboard reads", Value: stats.Reads},
		{Label: "Read failures", Value: stats.ReadFailures},
		{Label: "New copies", Value: stats.Inserts},
		{Label: "Entries activated", Value: stats.WriteBacks},
	}, c.formatter.Options()))
}

// PrintExit prints the shutdown line
func (c *ConsoleSink) PrintExit() {
	c.println(c.formatter.FormatExit())
}

func (c *ConsoleSink) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}
