// Package mapwidget loads the external map script once and draws a text
// map of the cinemas around a city.
package mapwidget

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
)

const DefaultEndpoint = "https://maps.googleapis.com/maps/api/js"

var ErrNoAPIKey = errors.New("map api key is not configured")

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Fetcher downloads a script body.
type Fetcher interface {
	GetBody(ctx context.Context, endpoint string) ([]byte, error)
}

// Loader fetches the map script at most once. Concurrent Start calls share
// the same load, and every waiter is released when it finishes.
type Loader struct {
	fetcher  Fetcher
	apiKey   string
	endpoint string
	logger   *slog.Logger

	mu      sync.Mutex
	status  Status
	err     error
	done    chan struct{}
	started bool
}

type Option func(*Loader)

func WithEndpoint(endpoint string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(endpoint) != "" {
			l.endpoint = endpoint
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func NewLoader(fetcher Fetcher, apiKey string, opts ...Option) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		apiKey:   strings.TrimSpace(apiKey),
		endpoint: DefaultEndpoint,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ScriptURL is the script address with the API key attached.
func (l *Loader) ScriptURL() string {
	values := url.Values{}
	values.Set("key", l.apiKey)
	values.Set("loading", "async")
	sep := "?"
	if strings.Contains(l.endpoint, "?") {
		sep = "&"
	}
	return l.endpoint + sep + values.Encode()
}

// Start begins loading in the background unless a load already started,
// and returns a channel closed when the load has finished either way.
func (l *Loader) Start(ctx context.Context) <-chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return l.done
	}
	l.started = true

	if l.apiKey == "" {
		l.finishLocked(StatusUnavailable, ErrNoAPIKey)
		l.logger.Info("map disabled", "reason", ErrNoAPIKey)
		return l.done
	}
	if l.fetcher == nil {
		l.finishLocked(StatusUnavailable, errors.New("map fetcher is not configured"))
		return l.done
	}

	l.status = StatusLoading
	l.logger.Info("map script loading", "endpoint", l.endpoint)
	go l.load(context.WithoutCancel(ctx))
	return l.done
}

func (l *Loader) load(ctx context.Context) {
	script, err := l.fetcher.GetBody(ctx, l.ScriptURL())
	if err == nil && len(script) == 0 {
		err = errors.New("map script is empty")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err != nil {
		l.logger.Warn("map script failed", "error", err)
		l.finishLocked(StatusUnavailable, fmt.Errorf("load map script: %w", err))
		return
	}
	l.logger.Info("map script loaded", "bytes", len(script))
	l.finishLocked(StatusReady, nil)
}

func (l *Loader) finishLocked(status Status, err error) {
	l.status = status
	l.err = err
	close(l.done)
}

// Wait starts the load if needed and blocks until it finishes or ctx ends.
func (l *Loader) Wait(ctx context.Context) error {
	done := l.Start(ctx)
	select {
	case <-done:
		_, err := l.Status()
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status reports the current state and, when unavailable, why.
func (l *Loader) Status() (Status, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status, l.err
}

// DegradedMessage is the text shown in place of the map.
func DegradedMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoAPIKey):
		return "Map unavailable: set SHOWTIME_MAPS_API_KEY to enable the interactive map."
	default:
		return "Map unavailable: the map script could not be loaded."
	}
}
