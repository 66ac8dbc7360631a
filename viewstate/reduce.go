package viewstate

import (
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/route"
)

// Reduce applies intent to s and returns the next state with the side
// effects to perform. It never mutates s and never performs the effects.
func Reduce(ds *dataset.Dataset, s State, intent Intent) (State, []Effect) {
	next := s
	var effects []Effect

	switch in := intent.(type) {
	case SelectMovie:
		if in.MovieID == "" {
			return s, nil
		}
		dates := catalog.DateOptionsForMovie(ds.DateOptions, ds.CinemaShowtimes, in.MovieID)
		next, effects = applyRoute(next, route.Route{TabKey: TabMovies, Detail: in.MovieID}, NavOptions{})
		next.ShowtimesCinemaID = ""
		if len(dates) > 0 {
			next.Showtime.Date = dates[0].Value
		}

	case SelectTab:
		if !ds.HasTab(in.TabKey) {
			return s, nil
		}
		next, effects = applyRoute(next, route.Route{TabKey: in.TabKey}, NavOptions{})

	case SelectCity:
		if _, ok := ds.Location(in.CityKey); !ok {
			return s, nil
		}
		next.CityKey = in.CityKey
		next.QuickInfoID = ""
		next.CinemaDetailID = ""
		next.MapFocusID = ""
		next.ShowtimesCinemaID = ""
		if s.ActiveTab == TabCinemas {
			next, effects = applyRoute(next, route.Route{TabKey: TabCinemas}, NavOptions{Replace: true, SkipScroll: true})
		}

	case OpenCinemaDetail:
		next.QuickInfoID = ""
		next, effects = applyRoute(next, route.Route{TabKey: TabCinemas, Detail: in.CinemaID}, NavOptions{})

	case CloseCinemaDetail:
		next, effects = applyRoute(next, route.Route{TabKey: TabCinemas}, NavOptions{})

	case ShowQuickInfo:
		next.QuickInfoID = in.CinemaID
		next.MapFocusID = in.CinemaID

	case CloseQuickInfo:
		next.QuickInfoID = ""

	case FocusCinema:
		next.MapFocusID = in.CinemaID

	case ViewShowtimesForCinema:
		dates := catalog.DateOptionsForMovie(ds.DateOptions, ds.CinemaShowtimes, s.MovieID)
		next.QuickInfoID = ""
		next, effects = applyRoute(next, route.Route{TabKey: TabMovies, Detail: s.MovieID}, NavOptions{})
		next.ShowtimesCinemaID = ""
		if cinema, ok := ds.Cinema(in.CinemaID); ok {
			next.ShowtimesCinemaID = cinema.ShowtimesID
		}
		if len(dates) > 0 {
			next.Showtime.Date = dates[0].Value
		}
		next.Showtime.Language = catalog.All
		next.Showtime.Format = catalog.All
		next.Showtime.Experience = catalog.All

	case OpenMovieDetails:
		next.DetailsOpen = true

	case CloseMovieDetails:
		next.DetailsOpen = false

	case ChangeFilter:
		next = changeFilter(next, in)
	}

	return normalize(ds, s, next), effects
}

// ApplyRoute moves s to r the way a link or a history pop would.
func ApplyRoute(ds *dataset.Dataset, s State, r route.Route, opts NavOptions) (State, []Effect) {
	if !ds.HasTab(r.TabKey) {
		r = route.Route{TabKey: ds.DefaultTabKey()}
	}
	next, effects := applyRoute(s, r, opts)
	return normalize(ds, s, next), effects
}

func applyRoute(s State, r route.Route, opts NavOptions) (State, []Effect) {
	s.ActiveTab = r.TabKey
	if r.TabKey != TabCinemas {
		s.QuickInfoID = ""
	}

	switch r.TabKey {
	case TabMovies:
		if r.Detail != "" {
			s.View = ViewShowtimes
			s.MovieID = r.Detail
		} else {
			s.View = ViewCatalog
			s.ShowtimesCinemaID = ""
		}
		s.CinemaDetailID = ""
		s.MapFocusID = ""
	case TabCinemas:
		s.View = ViewCatalog
		s.ShowtimesCinemaID = ""
		s.CinemaDetailID = r.Detail
		s.MapFocusID = r.Detail
	default:
		s.View = ViewCatalog
		s.ShowtimesCinemaID = ""
		s.CinemaDetailID = ""
		s.MapFocusID = ""
	}

	var effects []Effect
	if !opts.SkipHistory {
		effects = append(effects, WriteHistory{Route: r, Replace: opts.Replace})
	}
	if !opts.SkipScroll {
		effects = append(effects, ScrollTop{})
	}
	return s, effects
}

func changeFilter(s State, in ChangeFilter) State {
	switch in.Dimension {
	case DimCategory:
		s.Listing.Category = catalog.Category(in.Value)
	case DimGenre:
		s.Listing.Genre = in.Value
	case DimListingLanguage:
		s.Listing.Language = in.Value
	case DimListingFormat:
		s.Listing.Format = in.Value
	case DimDate:
		s.Showtime.Date = in.Value
	case DimShowtimeLanguage:
		s.Showtime.Language = in.Value
	case DimShowtimeFormat:
		s.Showtime.Format = in.Value
	case DimExperience:
		s.Showtime.Experience = in.Value
	case DimCinemaDate:
		s.Cinema.Date = in.Value
	case DimCinemaLanguage:
		s.Cinema.Language = in.Value
	case DimCinemaFormat:
		s.Cinema.Format = in.Value
	}
	return s
}
