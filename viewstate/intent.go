package viewstate

import "showtime-finder-cli/route"

// Intent is a user action the store knows how to apply.
type Intent interface {
	intentName() string
}

type SelectMovie struct{ MovieID string }
type SelectCity struct{ CityKey string }
type SelectTab struct{ TabKey string }
type OpenCinemaDetail struct{ CinemaID string }
type CloseCinemaDetail struct{}
type ShowQuickInfo struct{ CinemaID string }
type CloseQuickInfo struct{}
type FocusCinema struct{ CinemaID string }

// ViewShowtimesForCinema takes a cinema location id; the showtimes view is
// restricted to that location's showtime group.
type ViewShowtimesForCinema struct{ CinemaID string }

type OpenMovieDetails struct{}
type CloseMovieDetails struct{}

type Dimension string

const (
	DimCategory         Dimension = "category"
	DimGenre            Dimension = "genre"
	DimListingLanguage  Dimension = "listing-language"
	DimListingFormat    Dimension = "listing-format"
	DimDate             Dimension = "date"
	DimShowtimeLanguage Dimension = "showtime-language"
	DimShowtimeFormat   Dimension = "showtime-format"
	DimExperience       Dimension = "experience"
	DimCinemaDate       Dimension = "cinema-date"
	DimCinemaLanguage   Dimension = "cinema-language"
	DimCinemaFormat     Dimension = "cinema-format"
)

var Dimensions = []Dimension{
	DimCategory, DimGenre, DimListingLanguage, DimListingFormat,
	DimDate, DimShowtimeLanguage, DimShowtimeFormat, DimExperience,
	DimCinemaDate, DimCinemaLanguage, DimCinemaFormat,
}

type ChangeFilter struct {
	Dimension Dimension
	Value     string
}

func (SelectMovie) intentName() string            { return "select-movie" }
func (SelectCity) intentName() string             { return "select-city" }
func (SelectTab) intentName() string              { return "select-tab" }
func (OpenCinemaDetail) intentName() string       { return "open-cinema-detail" }
func (CloseCinemaDetail) intentName() string      { return "close-cinema-detail" }
func (ShowQuickInfo) intentName() string          { return "show-cinema-quick-info" }
func (CloseQuickInfo) intentName() string         { return "close-quick-info" }
func (FocusCinema) intentName() string            { return "focus-cinema-on-map" }
func (ViewShowtimesForCinema) intentName() string { return "view-showtimes-for-cinema" }
func (OpenMovieDetails) intentName() string       { return "open-movie-details" }
func (CloseMovieDetails) intentName() string      { return "close-movie-details" }
func (ChangeFilter) intentName() string           { return "change-filter" }

// NavOptions control the side effects of applying a route.
type NavOptions struct {
	Replace     bool
	SkipHistory bool
	SkipScroll  bool
}

// Effect is a side effect the store performs after a transition.
type Effect interface {
	effectName() string
}

type WriteHistory struct {
	Route   route.Route
	Replace bool
}

type ScrollTop struct{}

func (WriteHistory) effectName() string { return "write-history" }
func (ScrollTop) effectName() string    { return "scroll-top" }
