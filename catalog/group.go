package catalog

import (
	"slices"
	"sort"
	"strings"

	"showtime-finder-cli/model"
)

// MovieMeta is the per-movie summary shown next to a cinema's showtimes.
type MovieMeta struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Poster      string  `json:"poster,omitempty"`
	Certificate string  `json:"certificate,omitempty"`
	Runtime     string  `json:"runtime,omitempty"`
	Genre       string  `json:"genre,omitempty"`
	Rating      float64 `json:"rating"`
	Votes       int     `json:"votes"`
	Tagline     string  `json:"tagline,omitempty"`
}

// MovieMetaLookup merges catalog entries with detail records; detail values
// win when present.
func MovieMetaLookup(movies []Movie, details []model.MovieDetail) map[string]MovieMeta {
	meta := make(map[string]MovieMeta, len(movies))
	for _, movie := range movies {
		meta[movie.ID] = MovieMeta{
			ID:          movie.ID,
			Title:       movie.Title,
			Poster:      movie.Image,
			Certificate: movie.Certificate,
			Runtime:     movie.Runtime,
			Genre:       movie.Genre,
			Rating:      movie.Rating,
			Votes:       movie.Votes,
		}
	}
	for _, detail := range details {
		entry := meta[detail.ID]
		entry.ID = detail.ID
		entry.Title = detail.Title
		entry.Poster = firstNonEmpty(detail.Poster, detail.Backdrop, entry.Poster)
		entry.Certificate = firstNonEmpty(detail.Certificate, entry.Certificate)
		entry.Runtime = firstNonEmpty(detail.Runtime, entry.Runtime)
		if len(detail.Genres) > 0 {
			entry.Genre = detail.Genres[0]
		}
		if detail.Rating != 0 {
			entry.Rating = detail.Rating
		}
		if detail.Votes != 0 {
			entry.Votes = detail.Votes
		}
		entry.Tagline = firstNonEmpty(detail.Tagline, entry.Tagline)
		meta[detail.ID] = entry
	}
	return meta
}

// OtherLanguage labels slots that carry no language.
const OtherLanguage = "Other"

type LanguageGroup struct {
	Language string               `json:"language"`
	Slots    []model.ShowtimeSlot `json:"slots"`
}

type MovieGroup struct {
	Meta      MovieMeta       `json:"meta"`
	Dates     []string        `json:"dates"`
	Languages []LanguageGroup `json:"languages"`
}

// GroupSlotsByMovieThenLanguage groups slots by movie, then by language in
// first-seen order. Slots for movies missing from meta are skipped. Slots
// are ordered by time and movie groups by title.
func GroupSlotsByMovieThenLanguage(slots []model.ShowtimeSlot, meta map[string]MovieMeta) []MovieGroup {
	type entry struct {
		group MovieGroup
		dates map[string]bool
		index map[string]int
	}
	var order []string
	entries := map[string]*entry{}

	for _, slot := range slots {
		movieMeta, ok := meta[slot.MovieID]
		if !ok {
			continue
		}
		e, ok := entries[slot.MovieID]
		if !ok {
			e = &entry{
				group: MovieGroup{Meta: movieMeta},
				dates: map[string]bool{},
				index: map[string]int{},
			}
			entries[slot.MovieID] = e
			order = append(order, slot.MovieID)
		}
		if !e.dates[slot.Date] {
			e.dates[slot.Date] = true
			e.group.Dates = append(e.group.Dates, slot.Date)
		}
		language := slot.Language
		if language == "" {
			language = OtherLanguage
		}
		i, ok := e.index[language]
		if !ok {
			i = len(e.group.Languages)
			e.index[language] = i
			e.group.Languages = append(e.group.Languages, LanguageGroup{Language: language})
		}
		e.group.Languages[i].Slots = append(e.group.Languages[i].Slots, slot)
	}

	out := make([]MovieGroup, 0, len(order))
	for _, movieID := range order {
		group := entries[movieID].group
		slices.Sort(group.Dates)
		for i := range group.Languages {
			sort.SliceStable(group.Languages[i].Slots, func(a, b int) bool {
				return group.Languages[i].Slots[a].Time < group.Languages[i].Slots[b].Time
			})
		}
		out = append(out, group)
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Meta.Title < out[b].Meta.Title
	})
	return out
}

// CinemaDateOptions lists the date options a cinema has slots for. A cinema
// without slots offers every date option.
func CinemaDateOptions(options []model.DateOption, group *model.CinemaShowtime) []model.DateOption {
	if group == nil {
		return nil
	}
	dates := map[string]bool{}
	for _, slot := range group.Slots {
		dates[slot.Date] = true
	}
	if len(dates) == 0 {
		return options
	}
	var out []model.DateOption
	for _, option := range options {
		if dates[option.Value] {
			out = append(out, option)
		}
	}
	return out
}

// FilterCinemaSlots narrows one cinema's slots. An empty date matches every
// date.
func FilterCinemaSlots(group *model.CinemaShowtime, date, language, format string) []model.ShowtimeSlot {
	if group == nil {
		return nil
	}
	var out []model.ShowtimeSlot
	for _, slot := range group.Slots {
		if date != "" && slot.Date != date {
			continue
		}
		if !matches(language, slot.Language) || !matches(format, slot.Format) {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// DistinctSlotValues returns the distinct non-empty values of field across
// the group's slots in first-seen order.
func DistinctSlotValues(group *model.CinemaShowtime, field func(model.ShowtimeSlot) string) []string {
	if group == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	for _, slot := range group.Slots {
		value := field(slot)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	return out
}

// CinemasForCity keeps the cinemas located in cityKey.
func CinemasForCity(cinemas []model.CinemaLocation, cityKey string) []model.CinemaLocation {
	var out []model.CinemaLocation
	for _, cinema := range cinemas {
		if cinema.CityKey == cityKey {
			out = append(out, cinema)
		}
	}
	return out
}

// FocusedCinema resolves the map focus: the focused cinema when it belongs
// to the list, otherwise the first cinema.
func FocusedCinema(cinemas []model.CinemaLocation, focusedID string) (model.CinemaLocation, bool) {
	if len(cinemas) == 0 {
		return model.CinemaLocation{}, false
	}
	for _, cinema := range cinemas {
		if focusedID != "" && cinema.ID == focusedID {
			return cinema, true
		}
	}
	return cinemas[0], true
}

// FacilityLabels joins amenities, services and experiences, trimmed and
// deduplicated within each set.
func FacilityLabels(cinema model.CinemaLocation) []string {
	var out []string
	for _, set := range [][]string{cinema.Amenities, cinema.Services, cinema.Experiences} {
		seen := map[string]bool{}
		for _, item := range set {
			item = strings.TrimSpace(item)
			if item == "" || seen[item] {
				continue
			}
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
