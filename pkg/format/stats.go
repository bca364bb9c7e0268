package format

import (
	"fmt"
	"strings"
)

// Stat is one labelled counter
type Stat struct {
	Label string
	Value int64
}

// FormatStats formats session counters for display
func FormatStats(title string, stats []Stat, opts Options) string {
	parts := []string{ColorizeIf(title, BrightBlue, opts.UseColors)}

	for _, s := range stats {
		parts = append(parts, formatStatLine(s.Label, fmt.Sprintf("%d", s.Value), opts))
	}

	return strings.Join(parts, "\n")
}

// formatStatLine formats a statistics line with label and value
func formatStatLine(label, value string, opts Options) string {
	if opts.UseColors {
		return fmt.Sprintf("  %s%s:%s %s", BrightCyan, label, Reset, value)
	}
	return fmt.Sprintf("  %s: %s", label, value)
}
