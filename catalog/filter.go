package catalog

import (
	"slices"

	"showtime-finder-cli/model"
)

type ListingFilters struct {
	Category Category `json:"category"`
	Genre    string   `json:"genre"`
	Language string   `json:"language"`
	Format   string   `json:"format"`
}

// FilterCatalog keeps the movies that match every active predicate.
func FilterCatalog(movies []Movie, filters ListingFilters) []Movie {
	var out []Movie
	for _, movie := range movies {
		if movie.Category != filters.Category {
			continue
		}
		if !matches(filters.Genre, movie.Genre) {
			continue
		}
		if filters.Language != All && !slices.Contains(movie.Languages, filters.Language) {
			continue
		}
		if filters.Format != All && !slices.Contains(movie.Formats, filters.Format) {
			continue
		}
		out = append(out, movie)
	}
	return out
}

type ShowtimeFilters struct {
	MovieID    string `json:"movieId"`
	Date       string `json:"date"`
	Language   string `json:"language"`
	Format     string `json:"format"`
	Experience string `json:"experience"`
	// CinemaID restricts the result to one showtime group when set.
	CinemaID string `json:"cinemaId,omitempty"`
}

// FilterShowtimes returns copies of the showtime groups holding only the
// matching slots. Groups left without slots are dropped.
func FilterShowtimes(groups []model.CinemaShowtime, filters ShowtimeFilters) []model.CinemaShowtime {
	var out []model.CinemaShowtime
	for _, group := range groups {
		if filters.CinemaID != "" && group.ID != filters.CinemaID {
			continue
		}
		var slots []model.ShowtimeSlot
		for _, slot := range group.Slots {
			if slot.MovieID != filters.MovieID || slot.Date != filters.Date {
				continue
			}
			if !matches(filters.Language, slot.Language) ||
				!matches(filters.Format, slot.Format) ||
				!matches(filters.Experience, slot.Experience) {
				continue
			}
			slots = append(slots, slot)
		}
		if len(slots) == 0 {
			continue
		}
		group.Slots = slots
		out = append(out, group)
	}
	return out
}

// AvailableDatesForMovie is the union of slot dates for movieID across
// every showtime group.
func AvailableDatesForMovie(groups []model.CinemaShowtime, movieID string) map[string]bool {
	dates := map[string]bool{}
	for _, group := range groups {
		for _, slot := range group.Slots {
			if slot.MovieID == movieID {
				dates[slot.Date] = true
			}
		}
	}
	return dates
}

// DateOptionsForMovie prunes the date selector to dates with inventory for
// movieID, keeping the selector's order.
func DateOptionsForMovie(options []model.DateOption, groups []model.CinemaShowtime, movieID string) []model.DateOption {
	available := AvailableDatesForMovie(groups, movieID)
	var out []model.DateOption
	for _, option := range options {
		if available[option.Value] {
			out = append(out, option)
		}
	}
	return out
}

func HasDate(options []model.DateOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

func matches(selected, value string) bool {
	return selected == All || selected == value
}
