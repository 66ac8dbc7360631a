package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/model"
	"showtime-finder-cli/route"
	"showtime-finder-cli/viewstate"
)

type routeResponse struct {
	Route      route.Route          `json:"route"`
	Path       string               `json:"path"`
	State      viewstate.State      `json:"state"`
	Projection viewstate.Projection `json:"projection"`
}

// filterParams maps query parameters to filter dimensions, in the order
// they are applied.
var filterParams = []struct {
	param string
	dim   viewstate.Dimension
}{
	{"category", viewstate.DimCategory},
	{"genre", viewstate.DimGenre},
	{"listing_language", viewstate.DimListingLanguage},
	{"listing_format", viewstate.DimListingFormat},
	{"date", viewstate.DimDate},
	{"language", viewstate.DimShowtimeLanguage},
	{"format", viewstate.DimShowtimeFormat},
	{"experience", viewstate.DimExperience},
	{"cinema_date", viewstate.DimCinemaDate},
	{"cinema_language", viewstate.DimCinemaLanguage},
	{"cinema_format", viewstate.DimCinemaFormat},
}

// stateFor opens path the way a deep link would, applies pre, then applies
// the filter query parameters as intents. city overrides the city parameter
// when set. Intents in pre may reset filters, so they run first.
func (s *Server) stateFor(c echo.Context, path, city string, pre ...viewstate.Intent) viewstate.State {
	if city == "" {
		city = strings.TrimSpace(c.QueryParam("city"))
	}
	state, _ := viewstate.Open(s.ds, path, city)
	for _, intent := range pre {
		state, _ = viewstate.Reduce(s.ds, state, intent)
	}
	for _, fp := range filterParams {
		if value := strings.TrimSpace(c.QueryParam(fp.param)); value != "" {
			state, _ = viewstate.Reduce(s.ds, state, viewstate.ChangeFilter{Dimension: fp.dim, Value: value})
		}
	}
	return state
}

func (s *Server) resolveRoute(c echo.Context) error {
	path := "/" + c.Param("*")
	state := s.stateFor(c, path, "")
	r := state.Route()
	return c.JSON(http.StatusOK, routeResponse{
		Route:      route.Parse(path, viewstate.TabKeys(s.ds), s.ds.DefaultTabKey()),
		Path:       r.Path(s.ds.DefaultTabKey()),
		State:      state,
		Projection: viewstate.Project(s.ds, state),
	})
}

func (s *Server) listMovies(c echo.Context) error {
	state := s.stateFor(c, "/movies", "")
	p := viewstate.Project(s.ds, state)
	return c.JSON(http.StatusOK, echo.Map{
		"filters":         state.Listing,
		"items":           nonNil(p.FilteredMovies),
		"genreOptions":    p.GenreOptions,
		"languageOptions": p.LanguageOptions,
		"formatOptions":   p.FormatOptions,
	})
}

func (s *Server) getMovie(c echo.Context) error {
	id := c.Param("id")
	movie, ok := s.ds.Movie(id)
	if !ok {
		return notFound(c, "movie")
	}
	detail, found := s.ds.MovieDetail(id)
	return c.JSON(http.StatusOK, echo.Map{
		"movie":       movie,
		"genre":       s.ds.Genre(id),
		"credits":     catalog.FormatAuthors(movie.Authors),
		"detail":      detail,
		"detailFound": found,
	})
}

func (s *Server) movieShowtimes(c echo.Context) error {
	id := c.Param("id")
	if _, ok := s.ds.Movie(id); !ok {
		return notFound(c, "movie")
	}
	var pre []viewstate.Intent
	if cinemaID := strings.TrimSpace(c.QueryParam("cinema")); cinemaID != "" {
		if _, ok := s.ds.Cinema(cinemaID); !ok {
			return notFound(c, "cinema")
		}
		pre = append(pre, viewstate.ViewShowtimesForCinema{CinemaID: cinemaID})
	}
	state := s.stateFor(c, route.Build(viewstate.TabMovies, s.ds.DefaultTabKey(), id), "", pre...)
	p := viewstate.Project(s.ds, state)
	return c.JSON(http.StatusOK, echo.Map{
		"movieId":   id,
		"filters":   state.Showtime,
		"dates":     nonNil(p.MovieDates),
		"showtimes": showtimesResponse(p.Showtimes),
	})
}

func (s *Server) listCinemas(c echo.Context) error {
	city := strings.TrimSpace(c.QueryParam("city"))
	if city == "" {
		city = s.ds.DefaultCityKey()
	}
	location, ok := s.ds.Location(city)
	if !ok {
		return notFound(c, "city")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"city":  location,
		"items": nonNil(catalog.CinemasForCity(s.ds.CinemaLocations, city)),
	})
}

func (s *Server) getCinema(c echo.Context) error {
	cinema, ok := s.ds.Cinema(c.Param("id"))
	if !ok {
		return notFound(c, "cinema")
	}
	state := s.stateFor(c, route.Build(viewstate.TabCinemas, s.ds.DefaultTabKey(), cinema.ID), cinema.CityKey)
	p := viewstate.Project(s.ds, state)
	return c.JSON(http.StatusOK, echo.Map{
		"cinema":     cinema,
		"facilities": catalog.FacilityLabels(cinema),
		"filters":    state.Cinema,
		"dates":      nonNil(p.CinemaDates),
		"groups":     nonNil(p.CinemaGroups),
	})
}

func (s *Server) normalized(c echo.Context) error {
	return c.JSON(http.StatusOK, s.ds.Normalize())
}

type slotResponse struct {
	model.ShowtimeSlot
	Status model.SlotStatus `json:"status"`
}

type showtimeResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Provider string         `json:"provider"`
	Address  string         `json:"address"`
	Slots    []slotResponse `json:"slots"`
}

func showtimesResponse(groups []model.CinemaShowtime) []showtimeResponse {
	out := make([]showtimeResponse, 0, len(groups))
	for _, group := range groups {
		item := showtimeResponse{ID: group.ID, Name: group.Name, Provider: group.Provider, Address: group.Address}
		for _, slot := range group.Slots {
			item.Slots = append(item.Slots, slotResponse{ShowtimeSlot: slot, Status: slot.Status()})
		}
		out = append(out, item)
	}
	return out
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
