package viewstate

import (
	"io"
	"log/slog"
	"sync"

	"showtime-finder-cli/dataset"
	"showtime-finder-cli/route"
)

// Navigator records routes in the address history.
type Navigator interface {
	Navigate(r route.Route, replace bool)
}

// Scroller resets the viewport after programmatic navigation.
type Scroller interface {
	ScrollTop()
}

type ScrollFunc func()

func (f ScrollFunc) ScrollTop() { f() }

// Store owns the current State. Transitions are serialized so subscribers
// only ever see complete snapshots.
type Store struct {
	ds        *dataset.Dataset
	navigator Navigator
	scroller  Scroller
	logger    *slog.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]func(State)
	nextID      int
}

type StoreOption func(*Store)

func WithNavigator(n Navigator) StoreOption {
	return func(s *Store) { s.navigator = n }
}

func WithScroller(sc Scroller) StoreOption {
	return func(s *Store) { s.scroller = sc }
}

func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewStore(ds *dataset.Dataset, initial State, opts ...StoreOption) *Store {
	s := &Store{
		ds:          ds,
		state:       initial,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		subscribers: map[int]func(State){},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Dataset() *dataset.Dataset { return s.ds }

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies intent, performs its effects and notifies subscribers.
func (s *Store) Dispatch(intent Intent) State {
	s.mu.Lock()
	next, effects := Reduce(s.ds, s.state, intent)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("intent dispatched", "intent", intent.intentName(), "tab", next.ActiveTab, "view", next.View, "movie", next.MovieID, "city", next.CityKey)
	s.finish(next, effects)
	return next
}

// Navigate applies a route. History pops pass SkipHistory and SkipScroll.
func (s *Store) Navigate(r route.Route, opts NavOptions) State {
	s.mu.Lock()
	next, effects := ApplyRoute(s.ds, s.state, r, opts)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("route applied", "tab", r.TabKey, "detail", r.Detail, "skip_history", opts.SkipHistory)
	s.finish(next, effects)
	return next
}

// Subscribe registers fn for every new snapshot until cancel is called.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) finish(next State, effects []Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case WriteHistory:
			if s.navigator != nil {
				s.navigator.Navigate(e.Route, e.Replace)
			}
		case ScrollTop:
			if s.scroller != nil {
				s.scroller.ScrollTop()
			}
		}
	}

	s.mu.Lock()
	subscribers := make([]func(State), 0, len(s.subscribers))
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subscribers[id]; ok {
			subscribers = append(subscribers, fn)
		}
	}
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn(next)
	}
}
