package route

import (
	"sync"
)

// History is the address bar plus back stack the synchronizer writes to.
type History interface {
	Path() string
	Push(path string)
	Replace(path string)
	// OnPop registers fn for back/forward navigation and returns a func
	// that unregisters it.
	OnPop(fn func(path string)) (unsubscribe func())
}

// MemoryHistory is an in-process History with browser semantics: pushing
// drops any forward entries, replacing rewrites the current entry, and only
// Back, Forward and Go notify pop listeners.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	index     int
	listeners map[int]func(string)
	nextID    int
}

func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{
		entries:   []string{NormalizePath(initial)},
		listeners: map[int]func(string){},
	}
}

func (h *MemoryHistory) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], NormalizePath(path))
	h.index = len(h.entries) - 1
}

func (h *MemoryHistory) Replace(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = NormalizePath(path)
}

// Len is the number of entries in the stack.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *MemoryHistory) CanGoBack() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index > 0
}

func (h *MemoryHistory) CanGoForward() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.index < len(h.entries)-1
}

func (h *MemoryHistory) Back() bool    { return h.Go(-1) }
func (h *MemoryHistory) Forward() bool { return h.Go(1) }

// Go moves delta entries through the stack and notifies pop listeners. It
// reports false, without notifying, when the target is out of range.
func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	target := h.index + delta
	if delta == 0 || target < 0 || target >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.index = target
	path := h.entries[target]
	listeners := make([]func(string), 0, len(h.listeners))
	for id := 0; id < h.nextID; id++ {
		if fn, ok := h.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(path)
	}
	return true
}

func (h *MemoryHistory) OnPop(fn func(path string)) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}
