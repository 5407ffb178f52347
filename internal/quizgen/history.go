package quizgen

import (
	"slices"
	"sync"
)

// history remembers characters served recently, oldest first.
type history struct {
	mu    sync.Mutex
	chars []string
	limit int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// Add appends characters, moving repeats to the end and dropping the
// oldest past the limit.
func (h *history) Add(chars ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range chars {
		if i := slices.Index(h.chars, c); i >= 0 {
			h.chars = slices.Delete(h.chars, i, i+1)
		}
		h.chars = append(h.chars, c)
	}
	if h.limit > 0 && len(h.chars) > h.limit {
		h.chars = slices.Clone(h.chars[len(h.chars)-h.limit:])
	}
}

// Recent returns a copy of the remembered characters.
func (h *history) Recent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.chars)
}
