package mapwidget

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"showtime-finder-cli/service"
)

type blockingFetcher struct {
	calls   int32
	release chan struct{}
	body    []byte
	err     error
}

func (f *blockingFetcher) GetBody(ctx context.Context, endpoint string) ([]byte, error) {
	atomic.AddInt32(&f.calls, 1)
	<-f.release
	return f.body, f.err
}

func TestLoader_ConcurrentStartsShareOneLoad(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{}), body: []byte("maps")}
	loader := NewLoader(fetcher, "key-123")

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- loader.Wait(context.Background())
		}()
	}

	first := loader.Start(context.Background())
	if status, _ := loader.Status(); status != StatusLoading {
		t.Fatalf("expected loading, got %s", status)
	}
	close(fetcher.release)
	<-first
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
	}
	if calls := atomic.LoadInt32(&fetcher.calls); calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", calls)
	}
	if status, _ := loader.Status(); status != StatusReady {
		t.Fatalf("expected ready, got %s", status)
	}
	if again := loader.Start(context.Background()); again != first {
		t.Fatal("expected later starts to reuse the finished load")
	}
}

func TestLoader_NoKeyIsUnavailable(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{})}
	loader := NewLoader(fetcher, "  ")

	err := loader.Wait(context.Background())
	if !errors.Is(err, ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
	if status, _ := loader.Status(); status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", status)
	}
	if atomic.LoadInt32(&fetcher.calls) != 0 {
		t.Fatal("expected no fetch without a key")
	}
	if !strings.Contains(DegradedMessage(err), "SHOWTIME_MAPS_API_KEY") {
		t.Fatalf("unexpected degraded message %q", DegradedMessage(err))
	}
}

func TestLoader_FailureResolvesToUnavailable(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{}), err: errors.New("dns failure")}
	close(fetcher.release)
	loader := NewLoader(fetcher, "key")

	err := loader.Wait(context.Background())
	if err == nil || !strings.Contains(err.Error(), "dns failure") {
		t.Fatalf("expected load error, got %v", err)
	}
	if status, _ := loader.Status(); status != StatusUnavailable {
		t.Fatalf("expected unavailable, got %s", status)
	}
	if DegradedMessage(err) == "" {
		t.Fatal("expected degraded message")
	}
}

func TestLoader_WaitHonorsContext(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{})}
	defer close(fetcher.release)
	loader := NewLoader(fetcher, "key")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := loader.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestLoader_FetchesScriptWithKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_, _ = w.Write([]byte("window.google = {};"))
	}))
	defer server.Close()

	loader := NewLoader(service.NewClient(server.Client()), "abc", WithEndpoint(server.URL+"/maps/api/js"))
	if err := loader.Wait(context.Background()); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if gotKey != "abc" {
		t.Fatalf("expected key abc, got %q", gotKey)
	}
}
