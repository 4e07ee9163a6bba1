package handler

import (
	"slices"
	"sync"

	"github.com/philipp01105/logcore/core"
)

// MemoryHandler keeps every entry it receives. It is meant for tests and
// for diagnostics endpoints that show the most recent log lines.
type MemoryHandler struct {
	Base
	mu      sync.Mutex
	entries []core.Entry
	lines   []string
	limit   int
}

// NewMemoryHandler creates a handler that retains at most limit entries;
// zero or a negative limit keeps everything.
func NewMemoryHandler(limit int) *MemoryHandler {
	return &MemoryHandler{limit: limit}
}

// Write implements Handler
func (h *MemoryHandler) Write(entry core.Entry) bool {
	line, err := h.Render(entry)
	if err != nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.entries) > h.limit {
		over := len(h.entries) - h.limit
		h.entries = slices.Delete(h.entries, 0, over)
		h.lines = slices.Delete(h.lines, 0, over)
	}
	return true
}

// Entries returns a copy of the retained entries in arrival order
func (h *MemoryHandler) Entries() []core.Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.entries)
}

// Messages returns the Message of every retained entry
func (h *MemoryHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Message
	}
	return out
}

// Lines returns the formatted form of every retained entry
func (h *MemoryHandler) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.lines)
}

// Len returns the number of retained entries
func (h *MemoryHandler) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Reset discards every retained entry
func (h *MemoryHandler) Reset() {
	h.mu.Lock()
	h.entries = nil
	h.lines = nil
	h.mu.Unlock()
}
