package format

import (
	"fmt"
	"strings"

	"github.com/berrythewa/clipcycle/internal/types"
)

// Formatter renders history snapshots and status lines for the console
type Formatter struct {
	options Options
}

// New creates a new formatter with the given options
func New(opts Options) *Formatter {
	return &Formatter{
		options: opts,
	}
}

// NewDefault creates a new formatter with default options
func NewDefault() *Formatter {
	return New(DefaultOptions())
}

// Options returns the formatter options
func (f *Formatter) Options() Options {
	return f.options
}

// FormatStack renders the history oldest to newest, one line per entry,
// with the active entry marked.
func (f *Formatter) FormatStack(snap types.Snapshot) string {
	if snap.IsEmpty() {
		return f.icon(IconClipboard) + ColorizeIf("[empty]", Gray, f.options.UseColors)
	}

	parts := make([]string, 0, snap.Len()+2)
	parts = append(parts, "")
	parts = append(parts, ColorizeIf(f.icon(IconClipboard)+"Clipboard stack (oldest → newest):", BrightBlue, f.options.UseColors))

	for i, entry := range snap.Entries {
		preview := Preview(entry, f.options.MaxWidth)
		index := fmt.Sprintf("[%d]", i)
		if snap.IsActive(i) {
			line := fmt.Sprintf("%s%s %s", ActiveMarker, index, preview)
			parts = append(parts, ColorizeIf(line, BrightGreen, f.options.UseColors))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s%s %s", InactiveMarker, DimIf(index, f.options.UseColors), preview))
	}

	// trailing blank line between stacks
	parts = append(parts, "")
	return strings.Join(parts, "\n")
}

// FormatCleared is printed after the history is cleared
func (f *Formatter) FormatCleared() string {
	return f.icon(IconClear) + ColorizeIf("History cleared.", Yellow, f.options.UseColors)
}

// FormatNothingToCycle is printed when a cycle finds an empty history
func (f *Formatter) FormatNothingToCycle() string {
	return f.icon(IconCycle) + DimIf("No items to cycle.", f.options.UseColors)
}

// Banner describes the running configuration at startup
type Banner struct {
	Slots              int
	CycleHotkey        string
	ClearHotkey        string
	HotkeysEnabled     bool
	NeedsAccessibility bool
	Backend            string
}

// FormatBanner renders the startup banner
func (f *Formatter) FormatBanner(b Banner) string {
	lines := []string{
		BoldIf(f.icon(IconStart)+"Multi-Slot Clipboard Manager", f.options.UseColors),
		fmt.Sprintf("   Slots: %d", b.Slots),
	}
	if b.Backend != "" {
		lines = append(lines, fmt.Sprintf("   Clipboard: %s", b.Backend))
	}
	if b.HotkeysEnabled {
		lines = append(lines,
			fmt.Sprintf("   Cycle hotkey: %s", ColorizeIf(b.CycleHotkey, Cyan, f.options.UseColors)),
			fmt.Sprintf("   Clear hotkey: %s", ColorizeIf(b.ClearHotkey, Cyan, f.options.UseColors)),
		)
		if b.NeedsAccessibility {
			lines = append(lines, "   macOS note: grant Accessibility permission to your terminal for hotkeys to work.")
		}
		lines = append(lines, "   Usage: copy text as usual, use the cycle hotkey to switch the active clipboard, then paste.")
	} else {
		lines = append(lines, DimIf("   Hotkeys disabled.", f.options.UseColors))
	}
	return strings.Join(lines, "\n")
}

// FormatExit is printed on shutdown
func (f *Formatter) FormatExit() string {
	return "\n" + f.icon(IconExit) + "Exiting."
}

func (f *Formatter) icon(icon string) string {
	if !f.options.UseIcons {
		return ""
	}
	return icon + " "
}

// FormatStack renders a snapshot with the given options
func FormatStack(snap types.Snapshot, opts Options) string {
	return New(opts).FormatStack(snap)
}
