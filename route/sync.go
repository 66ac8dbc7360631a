package route

import (
	"io"
	"log/slog"
	"sync"
)

// Synchronizer writes routes into a History and turns back/forward
// navigation into parsed routes.
type Synchronizer struct {
	history  History
	tabs     []string
	fallback string
	logger   *slog.Logger

	mu     sync.Mutex
	synced bool
}

type Option func(*Synchronizer)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSynchronizer binds history to the given tab keys. fallback is the tab
// used for the root path and for unknown segments.
func NewSynchronizer(history History, tabs []string, fallback string, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		history:  history,
		tabs:     append([]string(nil), tabs...),
		fallback: fallback,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Href is the shareable path of a tab with no detail selected.
func (s *Synchronizer) Href(tabKey string) string {
	return Build(tabKey, s.fallback, "")
}

// PushOrReplace writes r to history. It reports false, and records nothing,
// when r's path is already the current path.
func (s *Synchronizer) PushOrReplace(r Route, replace bool) bool {
	next := r.Path(s.fallback)
	current := NormalizePath(s.history.Path())
	if next == current {
		return false
	}
	if replace {
		s.history.Replace(next)
	} else {
		s.history.Push(next)
	}
	s.logger.Debug("history updated", "from", current, "to", next, "replace", replace)
	return true
}

// Navigate satisfies the view store's navigator.
func (s *Synchronizer) Navigate(r Route, replace bool) {
	s.PushOrReplace(r, replace)
}

// SyncInitial rewrites a root path to r's path without adding a back entry.
// Only the first call has any effect.
func (s *Synchronizer) SyncInitial(r Route) bool {
	s.mu.Lock()
	if s.synced {
		s.mu.Unlock()
		return false
	}
	s.synced = true
	s.mu.Unlock()

	if NormalizePath(s.history.Path()) != "/" {
		return false
	}
	return s.PushOrReplace(r, true)
}

// Listen calls apply with the parsed route after every back/forward
// navigation until the returned func is called.
func (s *Synchronizer) Listen(apply func(Route)) (unlisten func()) {
	return s.history.OnPop(func(path string) {
		r := Parse(path, s.tabs, s.fallback)
		s.logger.Debug("history popped", "path", path, "tab", r.TabKey, "detail", r.Detail)
		apply(r)
	})
}
