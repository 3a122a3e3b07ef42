// Package history keeps the in-memory list of expressions entered in the REPL.
package history

import (
	"strings"
	"sync"
)

// History is a bounded list of expressions ordered newest first.  It is safe
// for concurrent use.
type History struct {
	m        sync.Mutex
	entries  []string
	capacity int
}

// New creates an empty history holding at most capacity entries.  A capacity
// below one is treated as one.
func New(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}

	return &History{capacity: capacity}
}

// Add records an expression.  Blank expressions and repeats of the most recent
// entry are not recorded.  Add reports whether the expression was recorded.
func (h *History) Add(expr string) bool {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return false
	}

	h.m.Lock()
	defer h.m.Unlock()

	if len(h.entries) > 0 && h.entries[0] == trimmed {
		return false
	}

	h.entries = append([]string{trimmed}, h.entries...)
	if len(h.entries) > h.capacity {
		h.entries = h.entries[:h.capacity]
	}

	return true
}

// Get returns the nth most recent entry, counting from 1.
func (h *History) Get(n int) (string, bool) {
	h.m.Lock()
	defer h.m.Unlock()

	if n < 1 || n > len(h.entries) {
		return "", false
	}

	return h.entries[n-1], true
}

// Last returns the most recent entry.
func (h *History) Last() (string, bool) {
	return h.Get(1)
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.m.Lock()
	defer h.m.Unlock()

	return len(h.entries)
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []string {
	h.m.Lock()
	defer h.m.Unlock()

	return append([]string(nil), h.entries...)
}
