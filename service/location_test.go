package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"showtime-finder-cli/model"
)

func TestDetectLocation_FallsBackToNextProvider(t *testing.T) {
	blocked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><body>blocked</body></html>`))
	}))
	defer blocked.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"latitude":10.78,"longitude":106.70,"city":"Ho Chi Minh City","region":"HCM","country":"Vietnam"}`))
	}))
	defer fallback.Close()

	client := fastClient(blocked.Client())
	client.locationProviders = []locationProvider{
		{name: "blocked", endpoint: blocked.URL, parse: parseIPAPI},
		{name: "fallback", endpoint: fallback.URL, parse: parseIPWhoIs},
	}

	loc, err := client.DetectLocation(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if loc.City != "Ho Chi Minh City" || loc.Source != "fallback" {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestDetectLocation_AllProvidersFail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":true,"reason":"RateLimited"}`))
	}))
	defer server.Close()

	client := fastClient(server.Client())
	client.locationProviders = []locationProvider{{name: "ipapi", endpoint: server.URL, parse: parseIPAPI}}

	_, err := client.DetectLocation(context.Background())
	if err == nil || !strings.Contains(err.Error(), "RateLimited") {
		t.Fatalf("expected provider reason in error, got %v", err)
	}

	client.locationProviders = nil
	if _, err := client.DetectLocation(context.Background()); err == nil {
		t.Fatal("expected error without providers")
	}
}

func TestParseIPInfo(t *testing.T) {
	loc, err := parseIPInfo([]byte(`{"loc":"21.03,105.85","city":"Hanoi","country":"VN"}`))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if loc.Latitude != 21.03 || loc.Longitude != 105.85 {
		t.Fatalf("unexpected coordinates: %+v", loc)
	}
	if _, err := parseIPInfo([]byte(`{"loc":"nowhere"}`)); err == nil {
		t.Fatal("expected invalid loc error")
	}
	if _, err := parseIPInfo([]byte(`{"bogon":true}`)); err == nil {
		t.Fatal("expected bogon error")
	}
}

func TestNearestCity(t *testing.T) {
	cities := []model.LocationOption{
		{Key: "hanoi", Center: model.LatLng{Lat: 21.0278, Lng: 105.8342}},
		{Key: "tphcm", Center: model.LatLng{Lat: 10.7769, Lng: 106.7009}},
		{Key: "danang", Center: model.LatLng{Lat: 16.0544, Lng: 108.2022}},
	}
	city, km, ok := NearestCity(UserLocation{Latitude: 16.07, Longitude: 108.22}, cities)
	if !ok || city.Key != "danang" {
		t.Fatalf("expected danang, got %+v", city)
	}
	if km > 5 {
		t.Fatalf("expected a short distance, got %.2f km", km)
	}
	if _, _, ok := NearestCity(UserLocation{}, nil); ok {
		t.Fatal("expected no city for an empty list")
	}
}

func TestHaversineKm_HanoiToSaigon(t *testing.T) {
	km := HaversineKm(21.0278, 105.8342, 10.7769, 106.7009)
	if km < 1100 || km > 1200 {
		t.Fatalf("expected roughly 1140 km, got %.1f", km)
	}
}
