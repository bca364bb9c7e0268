package format

// Options controls formatting behavior
type Options struct {
	UseColors bool
	UseIcons  bool
	MaxWidth  int // Max preview width in runes (0 = no limit)
}

// DefaultOptions returns the console defaults
func DefaultOptions() Options {
	return Options{
		UseColors: true,
		UseIcons:  true,
		MaxWidth:  120,
	}
}

// PlainOptions returns options for output that is not a terminal
func PlainOptions() Options {
	opts := DefaultOptions()
	opts.UseColors = false
	return opts
}

// Markers used when rendering the history stack
const (
	ActiveMarker   = "👉 "
	InactiveMarker = "   "
)

// Icons used by console messages
const (
	IconClipboard = "📋"
	IconCycle     = "🔁"
	IconClear     = "🧹"
	IconStart     = "🚀"
	IconExit      = "👋"
)
