// Package dataset holds the static sample catalog: movies, details, cinemas,
// showtime groups and the fixed option lists the views filter by. A Dataset
// is built once and is read-only afterwards, so it can be shared freely.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"showtime-finder-cli/model"
)

//go:embed data.yaml
var defaultData []byte

var (
	ErrDuplicateID   = errors.New("duplicate id")
	ErrUnknownCity   = errors.New("unknown city key")
	ErrMissingDetail = errors.New("default detail not found")
)

type rawDataset struct {
	Locations         []model.LocationOption       `yaml:"locations"`
	NavigationTabs    []model.NavigationTab        `yaml:"navigation_tabs"`
	Categories        []model.SelectOption         `yaml:"categories"`
	DefaultGenre      string                       `yaml:"default_genre"`
	GenreOverrides    map[string]string            `yaml:"genre_overrides"`
	DateOptions       []model.DateOption           `yaml:"date_options"`
	LanguageFilters   []model.SelectOption         `yaml:"language_filters"`
	FormatFilters     []model.SelectOption         `yaml:"format_filters"`
	ExperienceFilters []model.SelectOption         `yaml:"experience_filters"`
	Movies            []model.Movie                `yaml:"movies"`
	DefaultDetail     string                       `yaml:"default_detail"`
	MovieDetails      map[string]model.MovieDetail `yaml:"movie_details"`
	HeroSlides        []model.HeroSlide            `yaml:"hero_slides"`
	Offers            []model.Offer                `yaml:"offers"`
	CinemaLocations   []model.CinemaLocation       `yaml:"cinema_locations"`
	CinemaShowtimes   []model.CinemaShowtime       `yaml:"cinema_showtimes"`
}

// Dataset is the immutable catalog. Slices keep source order because
// catalog categorization depends on it.
type Dataset struct {
	Locations         []model.LocationOption
	NavigationTabs    []model.NavigationTab
	Categories        []model.SelectOption
	DateOptions       []model.DateOption
	LanguageFilters   []model.SelectOption
	FormatFilters     []model.SelectOption
	ExperienceFilters []model.SelectOption
	Movies            []model.Movie
	HeroSlides        []model.HeroSlide
	Offers            []model.Offer
	CinemaLocations   []model.CinemaLocation
	CinemaShowtimes   []model.CinemaShowtime

	defaultGenre   string
	genreOverrides map[string]string
	defaultDetail  string
	details        map[string]model.MovieDetail
	detailOrder    []string
	moviesByID     map[string]int
	cinemasByID    map[string]int
	showtimesByID  map[string]int
}

var (
	defaultOnce sync.Once
	defaultSet  *Dataset
)

// Default returns the embedded sample dataset. It panics if the embedded
// file is invalid, which can only happen at development time.
func Default() *Dataset {
	defaultOnce.Do(func() {
		ds, err := Load(defaultData)
		if err != nil {
			panic(fmt.Sprintf("embedded dataset: %v", err))
		}
		defaultSet = ds
	})
	return defaultSet
}

// Load decodes a YAML document and validates its cross references.
func Load(data []byte) (*Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return build(raw)
}

func build(raw rawDataset) (*Dataset, error) {
	ds := &Dataset{
		Locations:         raw.Locations,
		NavigationTabs:    raw.NavigationTabs,
		Categories:        raw.Categories,
		DateOptions:       raw.DateOptions,
		LanguageFilters:   raw.LanguageFilters,
		FormatFilters:     raw.FormatFilters,
		ExperienceFilters: raw.ExperienceFilters,
		Movies:            raw.Movies,
		HeroSlides:        raw.HeroSlides,
		Offers:            raw.Offers,
		CinemaLocations:   raw.CinemaLocations,
		CinemaShowtimes:   raw.CinemaShowtimes,
		defaultGenre:      strings.TrimSpace(raw.DefaultGenre),
		genreOverrides:    raw.GenreOverrides,
		defaultDetail:     raw.DefaultDetail,
		details:           map[string]model.MovieDetail{},
		moviesByID:        map[string]int{},
		cinemasByID:       map[string]int{},
		showtimesByID:     map[string]int{},
	}
	if ds.defaultGenre == "" {
		ds.defaultGenre = "Feature"
	}
	if ds.genreOverrides == nil {
		ds.genreOverrides = map[string]string{}
	}

	for i, movie := range ds.Movies {
		if strings.TrimSpace(movie.ID) == "" {
			return nil, fmt.Errorf("movie at index %d has no id", i)
		}
		if _, ok := ds.moviesByID[movie.ID]; ok {
			return nil, fmt.Errorf("movie %q: %w", movie.ID, ErrDuplicateID)
		}
		ds.moviesByID[movie.ID] = i
	}

	for key, detail := range raw.MovieDetails {
		if detail.ID == "" {
			detail.ID = key
		}
		ds.details[key] = detail
	}
	ds.detailOrder = sortedKeys(ds.details)
	if len(ds.details) > 0 {
		if _, ok := ds.details[ds.defaultDetail]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingDetail, ds.defaultDetail)
		}
	}

	// A detail link that does not resolve falls back to the movie's own id.
	for i := range ds.Movies {
		movie := &ds.Movies[i]
		if movie.DetailID == "" {
			movie.DetailID = movie.ID
			continue
		}
		if _, ok := ds.details[movie.DetailID]; !ok {
			movie.DetailID = movie.ID
		}
	}

	cities := map[string]bool{}
	for _, location := range ds.Locations {
		cities[location.Key] = true
	}
	for i, cinema := range ds.CinemaLocations {
		if _, ok := ds.cinemasByID[cinema.ID]; ok {
			return nil, fmt.Errorf("cinema %q: %w", cinema.ID, ErrDuplicateID)
		}
		if !cities[cinema.CityKey] {
			return nil, fmt.Errorf("cinema %q: %w %q", cinema.ID, ErrUnknownCity, cinema.CityKey)
		}
		ds.cinemasByID[cinema.ID] = i
	}
	for i, group := range ds.CinemaShowtimes {
		if _, ok := ds.showtimesByID[group.ID]; ok {
			return nil, fmt.Errorf("showtime group %q: %w", group.ID, ErrDuplicateID)
		}
		ds.showtimesByID[group.ID] = i
	}
	return ds, nil
}

// DefaultTabKey is the key of the first navigation tab, or "movies" when
// no tabs are configured.
func (ds *Dataset) DefaultTabKey() string {
	if len(ds.NavigationTabs) == 0 {
		return "movies"
	}
	return ds.NavigationTabs[0].Key
}

func (ds *Dataset) DefaultCityKey() string {
	if len(ds.Locations) == 0 {
		return ""
	}
	return ds.Locations[0].Key
}

// DefaultMovieID is the first catalog movie, falling back to the default
// detail record when the catalog is empty.
func (ds *Dataset) DefaultMovieID() string {
	if len(ds.Movies) > 0 {
		return ds.Movies[0].ID
	}
	return ds.defaultDetail
}

func (ds *Dataset) Movie(id string) (model.Movie, bool) {
	i, ok := ds.moviesByID[id]
	if !ok {
		return model.Movie{}, false
	}
	return ds.Movies[i], true
}

// Genre resolves the catalog genre of a movie id.
func (ds *Dataset) Genre(movieID string) string {
	if genre, ok := ds.genreOverrides[movieID]; ok && genre != "" {
		return genre
	}
	return ds.defaultGenre
}

// MovieDetail returns the detail record for a movie id. When none exists it
// returns the default detail record with found set to false.
func (ds *Dataset) MovieDetail(movieID string) (detail model.MovieDetail, found bool) {
	if detail, ok := ds.details[movieID]; ok {
		return detail, true
	}
	if movie, ok := ds.Movie(movieID); ok {
		if detail, ok := ds.details[movie.DetailID]; ok {
			return detail, true
		}
	}
	return ds.details[ds.defaultDetail], false
}

// MovieDetails returns every detail record ordered by key.
func (ds *Dataset) MovieDetails() []model.MovieDetail {
	out := make([]model.MovieDetail, 0, len(ds.detailOrder))
	for _, key := range ds.detailOrder {
		out = append(out, ds.details[key])
	}
	return out
}

func (ds *Dataset) Cinema(id string) (model.CinemaLocation, bool) {
	i, ok := ds.cinemasByID[id]
	if !ok {
		return model.CinemaLocation{}, false
	}
	return ds.CinemaLocations[i], true
}

func (ds *Dataset) ShowtimeGroup(id string) (model.CinemaShowtime, bool) {
	i, ok := ds.showtimesByID[id]
	if !ok {
		return model.CinemaShowtime{}, false
	}
	return ds.CinemaShowtimes[i], true
}

func (ds *Dataset) Location(key string) (model.LocationOption, bool) {
	for _, location := range ds.Locations {
		if location.Key == key {
			return location, true
		}
	}
	return model.LocationOption{}, false
}

func (ds *Dataset) HasTab(key string) bool {
	for _, tab := range ds.NavigationTabs {
		if tab.Key == key {
			return true
		}
	}
	return false
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
