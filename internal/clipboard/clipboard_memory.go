package clipboard

import "sync"

// MemoryClipboard keeps clipboard text in-process only. It backs headless
// runs (containers, CI) where no display server is available.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) Name() string { return "memory" }

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

func (c *MemoryClipboard) Close() error { return nil }
