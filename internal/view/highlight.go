package view

import (
	"sync"
	"time"
)

// Highlight tracks which entry shows the "copied" confirmation.
// At most one index is highlighted; each Set replaces the previous one and
// restarts the expiry. After Close no timer touches the state.
type Highlight struct {
	mu       sync.Mutex
	duration time.Duration
	index    int
	active   bool
	gen      uint64
	timer    *time.Timer
	closed   bool
	cleared  chan struct{}
}

func NewHighlight(duration time.Duration) *Highlight {
	return &Highlight{duration: duration}
}

// Set highlights index and schedules its reset.
func (h *Highlight) Set(index int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	if h.timer != nil {
		h.timer.Stop()
	}
	h.release()

	h.gen++
	h.index = index
	h.active = true
	h.cleared = make(chan struct{})

	gen := h.gen
	h.timer = time.AfterFunc(h.duration, func() { h.expire(gen) })
}

// Current returns the highlighted index, if any.
func (h *Highlight) Current() (int, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index, h.active
}

// Cleared returns a channel closed when the current highlight ends, whether
// by expiry, a newer Set or Close. It is already closed when nothing is
// highlighted.
func (h *Highlight) Cleared() <-chan struct{} {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.active || h.cleared == nil {
		done := make(chan struct{})
		close(done)
		return done
	}
	return h.cleared
}

// Index returns the highlighted index or nil.
func (h *Highlight) Index() *int {
	idx, ok := h.Current()
	if !ok {
		return nil
	}
	return &idx
}

// Close cancels any pending reset and clears the state.
func (h *Highlight) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	h.active = false
	if h.timer != nil {
		h.timer.Stop()
		h.timer = nil
	}
	h.release()
}

func (h *Highlight) expire(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// a timer that fired while a newer Set held the lock must not clear it
	if h.closed || gen != h.gen {
		return
	}
	h.active = false
	h.timer = nil
	h.release()
}

// release closes the pending cleared channel; callers hold mu.
func (h *Highlight) release() {
	if h.cleared != nil {
		close(h.cleared)
		h.cleared = nil
	}
}
