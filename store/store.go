// Package store keeps the ephemeral per-session sets: favorite cinemas, the
// signed-in identifier and recently viewed movies. Nothing is written to
// disk; a new process starts empty.
package store

import (
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
)

const (
	maxRecentMovies    = 8
	signedInAlertCount = 3
	avatarSuffixDigits = 3
)

type RecentMovie struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type Session struct {
	mu              sync.RWMutex
	favoritesByCity map[string][]string
	identifier      string
	recentMovies    []RecentMovie
}

func NewSession() *Session {
	return &Session{favoritesByCity: map[string][]string{}}
}

// Favorites returns the favorite cinema ids of a city.
func (s *Session) Favorites(cityKey string) map[string]bool {
	result := map[string]bool{}
	if strings.TrimSpace(cityKey) == "" {
		return result
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, cinemaID := range s.favoritesByCity[cityKey] {
		result[cinemaID] = true
	}
	return result
}

func (s *Session) IsFavorite(cityKey, cinemaID string) bool {
	return s.Favorites(cityKey)[cinemaID]
}

func (s *Session) SetFavorite(cityKey, cinemaID string, favorite bool) error {
	cityKey, cinemaID, err := favoriteKey(cityKey, cinemaID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setFavoriteLocked(cityKey, cinemaID, favorite)
	return nil
}

// ToggleFavorite flips a cinema and reports its new state. The read and
// the write happen under one lock.
func (s *Session) ToggleFavorite(cityKey, cinemaID string) (bool, error) {
	cityKey, cinemaID, err := favoriteKey(cityKey, cinemaID)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := !slices.Contains(s.favoritesByCity[cityKey], cinemaID)
	s.setFavoriteLocked(cityKey, cinemaID, next)
	return next, nil
}

func favoriteKey(cityKey, cinemaID string) (string, string, error) {
	cityKey = strings.TrimSpace(cityKey)
	cinemaID = strings.TrimSpace(cinemaID)
	if cityKey == "" || cinemaID == "" {
		return "", "", errors.New("city key and cinema id are required")
	}
	return cityKey, cinemaID, nil
}

func (s *Session) setFavoriteLocked(cityKey, cinemaID string, favorite bool) {
	current := s.favoritesByCity[cityKey]
	index := slices.Index(current, cinemaID)

	if favorite {
		if index < 0 {
			current = append(current, cinemaID)
		}
	} else if index >= 0 {
		current = slices.Delete(current, index, index+1)
	}

	if len(current) == 0 {
		delete(s.favoritesByCity, cityKey)
	} else {
		sort.Strings(current)
		s.favoritesByCity[cityKey] = current
	}
}

// SignIn records the identifier returned by the sign-in form. Credentials
// are never seen here.
func (s *Session) SignIn(identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return errors.New("identifier is required")
	}
	s.mu.Lock()
	s.identifier = identifier
	s.mu.Unlock()
	return nil
}

func (s *Session) SignOut() {
	s.mu.Lock()
	s.identifier = ""
	s.mu.Unlock()
}

func (s *Session) SignedIn() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identifier, s.identifier != ""
}

// AvatarLabel is "+" and the last three characters of the identifier, or
// empty when signed out.
func (s *Session) AvatarLabel() string {
	identifier, ok := s.SignedIn()
	if !ok {
		return ""
	}
	runes := []rune(identifier)
	if len(runes) > avatarSuffixDigits {
		runes = runes[len(runes)-avatarSuffixDigits:]
	}
	return "+" + string(runes)
}

func (s *Session) AlertCount() int {
	if _, ok := s.SignedIn(); ok {
		return signedInAlertCount
	}
	return 0
}

// RememberMovie moves a movie to the front of the recent list.
func (s *Session) RememberMovie(movie RecentMovie) {
	if movie.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next := []RecentMovie{movie}
	for _, existing := range s.recentMovies {
		if existing.ID == movie.ID {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentMovies {
			break
		}
	}
	s.recentMovies = next
}

func (s *Session) RecentMovies() []RecentMovie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]RecentMovie(nil), s.recentMovies...)
}
