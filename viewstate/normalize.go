package viewstate

import (
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/model"
)

// normalize replaces selections that no longer match their option sets with
// the first valid option. prev is used to detect a newly opened cinema.
func normalize(ds *dataset.Dataset, prev, s State) State {
	if s.MovieID == "" {
		s.MovieID = ds.DefaultMovieID()
	}
	if _, ok := ds.Location(s.CityKey); !ok {
		s.CityKey = ds.DefaultCityKey()
	}

	movies := catalog.Categorize(ds.Movies, ds.Genre)
	s.Listing.Category = catalog.Category(pick(ds.Categories, string(s.Listing.Category)))
	s.Listing.Genre = pick(catalog.GenreOptions(movies), s.Listing.Genre)
	s.Listing.Language = pick(catalog.LanguageOptions(movies), s.Listing.Language)
	s.Listing.Format = pick(catalog.FormatOptions(movies), s.Listing.Format)

	dates := catalog.DateOptionsForMovie(ds.DateOptions, ds.CinemaShowtimes, s.MovieID)
	if len(dates) > 0 && !catalog.HasDate(dates, s.Showtime.Date) {
		s.Showtime.Date = dates[0].Value
	}
	s.Showtime.Language = pick(ds.LanguageFilters, s.Showtime.Language)
	s.Showtime.Format = pick(ds.FormatFilters, s.Showtime.Format)
	s.Showtime.Experience = pick(ds.ExperienceFilters, s.Showtime.Experience)

	if s.QuickInfoID != "" && !inCity(ds, s.QuickInfoID, s.CityKey) {
		s.QuickInfoID = ""
	}

	group := cinemaShowtimes(ds, s.CinemaDetailID, s.CityKey)
	if s.CinemaDetailID != prev.CinemaDetailID {
		s.Cinema = CinemaFilters{Language: catalog.All, Format: catalog.All}
	}
	s.Cinema = normalizeCinemaFilters(ds, group, s.Cinema)
	return s
}

func normalizeCinemaFilters(ds *dataset.Dataset, group *model.CinemaShowtime, f CinemaFilters) CinemaFilters {
	if group == nil {
		return CinemaFilters{Language: catalog.All, Format: catalog.All}
	}
	dates := catalog.CinemaDateOptions(ds.DateOptions, group)
	if !catalog.HasDate(dates, f.Date) {
		f.Date = ""
		if len(dates) > 0 {
			f.Date = dates[0].Value
		}
	}
	if f.Language != catalog.All && !contains(catalog.DistinctSlotValues(group, slotLanguage), f.Language) {
		f.Language = catalog.All
	}
	if f.Format != catalog.All && !contains(catalog.DistinctSlotValues(group, slotFormat), f.Format) {
		f.Format = catalog.All
	}
	return f
}

// cinemaShowtimes resolves the showtime group behind a cinema, only when the
// cinema belongs to cityKey.
func cinemaShowtimes(ds *dataset.Dataset, cinemaID, cityKey string) *model.CinemaShowtime {
	if cinemaID == "" {
		return nil
	}
	cinema, ok := ds.Cinema(cinemaID)
	if !ok || cinema.CityKey != cityKey || cinema.ShowtimesID == "" {
		return nil
	}
	group, ok := ds.ShowtimeGroup(cinema.ShowtimesID)
	if !ok {
		return nil
	}
	return &group
}

func inCity(ds *dataset.Dataset, cinemaID, cityKey string) bool {
	cinema, ok := ds.Cinema(cinemaID)
	return ok && cinema.CityKey == cityKey
}

func pick(options []model.SelectOption, value string) string {
	if len(options) == 0 || catalog.HasOption(options, value) {
		return value
	}
	return catalog.FirstOption(options, catalog.All)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

func slotLanguage(s model.ShowtimeSlot) string { return s.Language }
func slotFormat(s model.ShowtimeSlot) string   { return s.Format }
