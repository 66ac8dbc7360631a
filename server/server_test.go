package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"showtime-finder-cli/dataset"
)

func get(t *testing.T, target string, out any) int {
	t.Helper()
	srv := New(dataset.Default())
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return rec.Code
}

func TestHealth(t *testing.T) {
	if code := get(t, "/healthz", nil); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}

func TestResolveRoute_DeepLinks(t *testing.T) {
	var out struct {
		Route struct {
			TabKey string `json:"tabKey"`
			Detail string `json:"detailSegment"`
		} `json:"route"`
		Path  string `json:"path"`
		State struct {
			CinemaDetailID string `json:"activeCinemaDetailId"`
		} `json:"state"`
		Projection struct {
			CinemaDetail *struct {
				ID string `json:"id"`
			} `json:"cinemaDetail"`
		} `json:"projection"`
	}
	if code := get(t, "/api/route/cinemas/cgv-vincom", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Route.TabKey != "cinemas" || out.Route.Detail != "cgv-vincom" || out.Path != "/cinemas/cgv-vincom" {
		t.Fatalf("unexpected route response %+v", out)
	}
	if out.State.CinemaDetailID != "cgv-vincom" || out.Projection.CinemaDetail == nil {
		t.Fatalf("expected cinema detail projection, got %+v", out)
	}

	if code := get(t, "/api/route/unknown/thing", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Route.TabKey != "movies" || out.Route.Detail != "" || out.Path != "/movies" {
		t.Fatalf("expected fallback to movies, got %+v", out)
	}

	if code := get(t, "/api/route", &out); code != http.StatusOK || out.Path != "/movies" {
		t.Fatalf("expected root to resolve to /movies, got %d %q", code, out.Path)
	}
}

func TestListMovies_Filters(t *testing.T) {
	var out struct {
		Items []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"items"`
		GenreOptions []struct {
			Value string `json:"value"`
		} `json:"genreOptions"`
	}
	if code := get(t, "/api/movies?category=comingSoon", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(out.Items) != 2 {
		t.Fatalf("expected 2 coming soon movies, got %+v", out.Items)
	}
	for _, item := range out.Items {
		if item.Category != "comingSoon" {
			t.Fatalf("unexpected category %q", item.Category)
		}
	}
	if len(out.GenreOptions) == 0 || out.GenreOptions[0].Value != "all" {
		t.Fatalf("expected leading all genre option, got %+v", out.GenreOptions)
	}
}

func TestMovieShowtimes(t *testing.T) {
	var out struct {
		Filters struct {
			Date string `json:"date"`
		} `json:"filters"`
		Showtimes []struct {
			ID    string `json:"id"`
			Slots []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"slots"`
		} `json:"showtimes"`
	}
	if code := get(t, "/api/movies/movie-3/showtimes?date=2025-05-20", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Filters.Date != "2025-05-20" || len(out.Showtimes) != 1 {
		t.Fatalf("unexpected showtimes %+v", out)
	}
	statuses := map[string]string{}
	for _, slot := range out.Showtimes[0].Slots {
		statuses[slot.ID] = slot.Status
	}
	if statuses["s-104"] != "Sold out" {
		t.Fatalf("expected sold out to win, got %q", statuses["s-104"])
	}

	if code := get(t, "/api/movies/dune-part-two/showtimes?cinema=galaxy-nguyen-du", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(out.Showtimes) != 0 {
		t.Fatalf("expected no galaxy slots on the first date, got %+v", out.Showtimes)
	}

	if code := get(t, "/api/movies/nope/showtimes", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if code := get(t, "/api/movies/dune-part-two/showtimes?cinema=nope", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestMovieShowtimes_CinemaKeepsQueryFilters(t *testing.T) {
	var out struct {
		Filters struct {
			Date     string `json:"date"`
			Language string `json:"language"`
		} `json:"filters"`
		Showtimes []struct {
			ID    string `json:"id"`
			Slots []struct {
				ID string `json:"id"`
			} `json:"slots"`
		} `json:"showtimes"`
	}
	target := "/api/movies/dune-part-two/showtimes?cinema=cgv-vincom&date=2025-05-21&language=english"
	if code := get(t, target, &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if out.Filters.Date != "2025-05-21" || out.Filters.Language != "english" {
		t.Fatalf("expected requested date and language, got %+v", out.Filters)
	}
	if len(out.Showtimes) != 1 || out.Showtimes[0].ID != "st-cgv-vincom" {
		t.Fatalf("expected only the vincom group, got %+v", out.Showtimes)
	}
	if slots := out.Showtimes[0].Slots; len(slots) != 1 || slots[0].ID != "s-103" {
		t.Fatalf("expected s-103, got %+v", slots)
	}
}

func TestCinemas(t *testing.T) {
	var list struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if code := get(t, "/api/cinemas?city=tphcm", &list); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 tphcm cinemas, got %+v", list.Items)
	}
	if code := get(t, "/api/cinemas?city=atlantis", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}

	var detail struct {
		Groups []struct {
			Meta struct {
				ID string `json:"id"`
			} `json:"meta"`
		} `json:"groups"`
		Facilities []string `json:"facilities"`
	}
	if code := get(t, "/api/cinemas/cgv-landmark?cinema_date=2025-05-24", &detail); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(detail.Groups) != 1 || detail.Groups[0].Meta.ID != "movie-8" {
		t.Fatalf("expected movie-8 group, got %+v", detail.Groups)
	}
	if code := get(t, "/api/cinemas/nope", nil); code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestNormalized(t *testing.T) {
	var out struct {
		Movies []struct {
			MovieID string `json:"movie_id"`
		} `json:"movies"`
	}
	if code := get(t, "/api/normalized", &out); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(out.Movies) != 8 {
		t.Fatalf("expected 8 movies, got %d", len(out.Movies))
	}
}
