package viewstate

import (
	"strings"

	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/model"
)

// Projection is everything the presentation layer renders for a State.
type Projection struct {
	Movies          []catalog.Movie        `json:"movies"`
	FilteredMovies  []catalog.Movie        `json:"filteredMovies"`
	SelectedMovie   *catalog.Movie         `json:"selectedMovie,omitempty"`
	GenreOptions    []model.SelectOption   `json:"genreOptions"`
	LanguageOptions []model.SelectOption   `json:"languageOptions"`
	FormatOptions   []model.SelectOption   `json:"formatOptions"`
	MovieDates      []model.DateOption     `json:"movieDates"`
	Showtimes       []model.CinemaShowtime `json:"showtimes"`

	City          model.LocationOption   `json:"city"`
	Cinemas       []model.CinemaLocation `json:"cinemas"`
	FocusedCinema *model.CinemaLocation  `json:"focusedCinema,omitempty"`
	QuickInfo     *model.CinemaLocation  `json:"quickInfo,omitempty"`

	CinemaDetail          *model.CinemaLocation `json:"cinemaDetail,omitempty"`
	CinemaShowtimes       *model.CinemaShowtime `json:"cinemaShowtimes,omitempty"`
	CinemaDates           []model.DateOption    `json:"cinemaDates,omitempty"`
	CinemaLanguageOptions []model.SelectOption  `json:"cinemaLanguageOptions,omitempty"`
	CinemaFormatOptions   []model.SelectOption  `json:"cinemaFormatOptions,omitempty"`
	CinemaGroups          []catalog.MovieGroup  `json:"cinemaGroups,omitempty"`

	MovieDetail      model.MovieDetail `json:"movieDetail"`
	MovieDetailFound bool              `json:"movieDetailFound"`
	Placeholder      bool              `json:"placeholder"`
}

// Project derives the visible data for s. It is pure.
func Project(ds *dataset.Dataset, s State) Projection {
	movies := catalog.Categorize(ds.Movies, ds.Genre)
	p := Projection{
		Movies:          movies,
		FilteredMovies:  catalog.FilterCatalog(movies, s.Listing),
		GenreOptions:    catalog.GenreOptions(movies),
		LanguageOptions: catalog.LanguageOptions(movies),
		FormatOptions:   catalog.FormatOptions(movies),
		MovieDates:      catalog.DateOptionsForMovie(ds.DateOptions, ds.CinemaShowtimes, s.MovieID),
		Showtimes: catalog.FilterShowtimes(ds.CinemaShowtimes, catalog.ShowtimeFilters{
			MovieID:    s.MovieID,
			Date:       s.Showtime.Date,
			Language:   s.Showtime.Language,
			Format:     s.Showtime.Format,
			Experience: s.Showtime.Experience,
			CinemaID:   s.ShowtimesCinemaID,
		}),
		Placeholder: s.ActiveTab != TabMovies && s.ActiveTab != TabCinemas,
	}
	p.SelectedMovie = selectedMovie(p.FilteredMovies, movies, s.MovieID)
	p.MovieDetail, p.MovieDetailFound = ds.MovieDetail(s.MovieID)

	if city, ok := ds.Location(s.CityKey); ok {
		p.City = city
	}
	p.Cinemas = catalog.CinemasForCity(ds.CinemaLocations, s.CityKey)
	if focused, ok := catalog.FocusedCinema(p.Cinemas, s.MapFocusID); ok {
		p.FocusedCinema = &focused
	}
	p.QuickInfo = findCinema(p.Cinemas, s.QuickInfoID)
	p.CinemaDetail = findCinema(p.Cinemas, s.CinemaDetailID)

	if group := cinemaShowtimes(ds, s.CinemaDetailID, s.CityKey); group != nil {
		p.CinemaShowtimes = group
		p.CinemaDates = catalog.CinemaDateOptions(ds.DateOptions, group)
		p.CinemaLanguageOptions = slotOptions(group, slotLanguage, "All languages", catalog.TitleCase)
		p.CinemaFormatOptions = slotOptions(group, slotFormat, "All formats", strings.ToUpper)
		details := ds.MovieDetails()
		meta := catalog.MovieMetaLookup(movies, details)
		slots := catalog.FilterCinemaSlots(group, s.Cinema.Date, s.Cinema.Language, s.Cinema.Format)
		p.CinemaGroups = catalog.GroupSlotsByMovieThenLanguage(slots, meta)
	}
	return p
}

// selectedMovie prefers the filtered list, then the full catalog, then the
// first catalog entry.
func selectedMovie(filtered, all []catalog.Movie, movieID string) *catalog.Movie {
	for _, list := range [][]catalog.Movie{filtered, all} {
		for i := range list {
			if list[i].ID == movieID {
				movie := list[i]
				return &movie
			}
		}
	}
	if len(all) == 0 {
		return nil
	}
	movie := all[0]
	return &movie
}

func findCinema(cinemas []model.CinemaLocation, id string) *model.CinemaLocation {
	if id == "" {
		return nil
	}
	for i := range cinemas {
		if cinemas[i].ID == id {
			cinema := cinemas[i]
			return &cinema
		}
	}
	return nil
}

func slotOptions(group *model.CinemaShowtime, field func(model.ShowtimeSlot) string, allLabel string, label func(string) string) []model.SelectOption {
	out := []model.SelectOption{{Value: catalog.All, Label: allLabel}}
	for _, value := range catalog.DistinctSlotValues(group, field) {
		text := value
		if label != nil {
			text = label(value)
		}
		out = append(out, model.SelectOption{Value: value, Label: text})
	}
	return out
}
