package types

// NoActive is the active index of a history with no selected entry.
const NoActive = -1

// Snapshot is an immutable copy of the clipboard history taken under the
// history lock. Sinks render from it without holding any lock.
type Snapshot struct {
	Entries  []string `json:"entries" yaml:"entries"`
	Active   int      `json:"active" yaml:"active"`
	Capacity int      `json:"capacity" yaml:"capacity"`
}

// Len returns the number of entries in the snapshot
func (s Snapshot) Len() int {
	return len(s.Entries)
}

// IsEmpty reports whether the snapshot holds no entries
func (s Snapshot) IsEmpty() bool {
	return len(s.Entries) == 0
}

// IsActive reports whether i is the active position
func (s Snapshot) IsActive(i int) bool {
	return i >= 0 && i < len(s.Entries) && i == s.Active
}

// ActiveEntry returns the active entry, if any
func (s Snapshot) ActiveEntry() (string, bool) {
	if s.Active < 0 || s.Active >= len(s.Entries) {
		return "", false
	}
	return s.Entries[s.Active], true
}
