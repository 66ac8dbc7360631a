// Package viewstate holds what is on screen. State is an immutable snapshot;
// every change goes through Reduce so related fields move together.
package viewstate

import (
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/route"
)

const (
	TabMovies  = "movies"
	TabCinemas = "cinemas"
)

type View string

const (
	ViewCatalog   View = "catalog"
	ViewShowtimes View = "showtimes"
)

type ShowtimeFilters struct {
	Date       string `json:"date"`
	Language   string `json:"language"`
	Format     string `json:"format"`
	Experience string `json:"experience"`
}

// CinemaFilters are local to the open cinema detail page and reset whenever
// a different cinema is opened.
type CinemaFilters struct {
	Date     string `json:"date"`
	Language string `json:"language"`
	Format   string `json:"format"`
}

type State struct {
	ActiveTab         string                 `json:"activeNavTab"`
	View              View                   `json:"currentView"`
	MovieID           string                 `json:"selectedMovieId"`
	CityKey           string                 `json:"selectedCityKey"`
	QuickInfoID       string                 `json:"activeCinemaInfoId,omitempty"`
	CinemaDetailID    string                 `json:"activeCinemaDetailId,omitempty"`
	MapFocusID        string                 `json:"mapFocusedCinemaId,omitempty"`
	ShowtimesCinemaID string                 `json:"showtimesCinemaId,omitempty"`
	Listing           catalog.ListingFilters `json:"listing"`
	Showtime          ShowtimeFilters        `json:"showtime"`
	Cinema            CinemaFilters          `json:"cinema"`
	DetailsOpen       bool                   `json:"detailsOpen"`
}

// New builds the starting state for an initial route, the way a deep link
// would open the app.
func New(ds *dataset.Dataset, initial route.Route) State {
	s := State{
		ActiveTab: initial.TabKey,
		View:      ViewCatalog,
		MovieID:   ds.DefaultMovieID(),
		CityKey:   ds.DefaultCityKey(),
		Listing: catalog.ListingFilters{
			Category: catalog.NowShowing,
			Genre:    catalog.All,
			Language: catalog.All,
			Format:   catalog.All,
		},
		Showtime: ShowtimeFilters{
			Language:   catalog.All,
			Format:     catalog.All,
			Experience: catalog.All,
		},
	}
	if !ds.HasTab(s.ActiveTab) {
		s.ActiveTab = ds.DefaultTabKey()
		initial.Detail = ""
	}
	if len(ds.DateOptions) > 0 {
		s.Showtime.Date = ds.DateOptions[0].Value
	}
	switch {
	case s.ActiveTab == TabMovies && initial.Detail != "":
		s.View = ViewShowtimes
		s.MovieID = initial.Detail
	case s.ActiveTab == TabCinemas && initial.Detail != "":
		s.CinemaDetailID = initial.Detail
		s.MapFocusID = initial.Detail
	}
	return normalize(ds, State{}, s)
}

// Open parses path and builds its state, then selects cityKey when it
// names a known city other than the default. The parsed route is returned
// alongside.
func Open(ds *dataset.Dataset, path, cityKey string) (State, route.Route) {
	r := route.Parse(path, TabKeys(ds), ds.DefaultTabKey())
	s := New(ds, r)
	if cityKey == "" || cityKey == s.CityKey {
		return s, r
	}
	if _, ok := ds.Location(cityKey); !ok {
		return s, r
	}
	s, _ = Reduce(ds, s, SelectCity{CityKey: cityKey})
	s, _ = ApplyRoute(ds, s, r, NavOptions{SkipHistory: true, SkipScroll: true})
	return s, r
}

// Route is the path this state should show: the movie id on the showtimes
// view, the open cinema on the cinemas tab, otherwise the bare tab.
func (s State) Route() route.Route {
	r := route.Route{TabKey: s.ActiveTab}
	switch {
	case s.ActiveTab == TabMovies && s.View == ViewShowtimes:
		r.Detail = s.MovieID
	case s.ActiveTab == TabCinemas:
		r.Detail = s.CinemaDetailID
	}
	return r
}

// TabKeys lists the navigation tab keys in display order.
func TabKeys(ds *dataset.Dataset) []string {
	keys := make([]string, 0, len(ds.NavigationTabs))
	for _, tab := range ds.NavigationTabs {
		keys = append(keys, tab.Key)
	}
	return keys
}
