package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/model"
)

type movieItem struct {
	movie catalog.Movie
}

func (m movieItem) Title() string {
	if m.movie.Certificate != "" {
		return fmt.Sprintf("%s (%s)", m.movie.Title, m.movie.Certificate)
	}
	return m.movie.Title
}

func (m movieItem) Description() string {
	parts := []string{m.movie.Genre}
	if m.movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%.1f/10 (%d votes)", m.movie.Rating, m.movie.Votes))
	}
	if m.movie.Runtime != "" {
		parts = append(parts, m.movie.Runtime)
	}
	if m.movie.Trending {
		parts = append(parts, "Trending")
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Title, m.movie.Subtitle, m.movie.Genre}, " "))
}

// slotItem is one showtime slot on the movie showtimes view.
type slotItem struct {
	groupID    string
	cinemaName string
	slot       model.ShowtimeSlot
}

func (s slotItem) Title() string {
	return fmt.Sprintf("%s • %s • %s", s.slot.Time, s.cinemaName, s.slot.Experience)
}

func (s slotItem) Description() string {
	parts := []string{strings.ToUpper(s.slot.Format)}
	if s.slot.Language != "" {
		parts = append(parts, catalog.TitleCase(s.slot.Language))
	}
	parts = append(parts, s.slot.Price)
	if status := s.slot.Status(); status != model.SlotAvailable {
		parts = append(parts, string(status))
	}
	return strings.Join(parts, " • ")
}

func (s slotItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{s.cinemaName, s.slot.Time, s.slot.Experience, s.slot.Format, s.slot.Language}, " "))
}

type cinemaItem struct {
	cinema   model.CinemaLocation
	favorite bool
	focused  bool
}

func (c cinemaItem) Title() string {
	title := c.cinema.Name
	if c.favorite {
		title = "★ " + title
	}
	if c.focused {
		title += " •"
	}
	return title
}

func (c cinemaItem) Description() string {
	parts := []string{c.cinema.Address}
	if c.cinema.DistanceFromCenterKm > 0 {
		parts = append(parts, fmt.Sprintf("%.1f km from center", c.cinema.DistanceFromCenterKm))
	}
	return strings.Join(parts, " • ")
}

func (c cinemaItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{c.cinema.Name, c.cinema.Address, c.cinema.VenueDetails}, " "))
}

// groupItem is one movie and language pair on the cinema detail view.
type groupItem struct {
	meta     catalog.MovieMeta
	language catalog.LanguageGroup
}

func (g groupItem) Title() string {
	title := g.meta.Title
	if g.meta.Certificate != "" {
		title = fmt.Sprintf("%s (%s)", title, g.meta.Certificate)
	}
	return fmt.Sprintf("%s • %s", title, catalog.TitleCase(g.language.Language))
}

func (g groupItem) Description() string {
	times := make([]string, 0, len(g.language.Slots))
	for _, slot := range g.language.Slots {
		label := fmt.Sprintf("%s %s", slot.Time, strings.ToUpper(slot.Format))
		if slot.IsSoldOut {
			label += " (sold out)"
		}
		times = append(times, label)
	}
	return strings.Join(times, " · ")
}

func (g groupItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{g.meta.Title, g.meta.Genre, g.language.Language}, " "))
}

// optionItem backs the city, dimension and value pickers.
type optionItem struct {
	value   string
	label   string
	detail  string
	current bool
}

func (o optionItem) Title() string {
	if o.current {
		return "[x] " + o.label
	}
	return "[ ] " + o.label
}

func (o optionItem) Description() string {
	return o.detail
}

func (o optionItem) FilterValue() string {
	return strings.ToLower(o.label + " " + o.value)
}

func buildMovieItems(movies []catalog.Movie) []list.Item {
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

func buildSlotItems(groups []model.CinemaShowtime) []list.Item {
	var items []list.Item
	for _, group := range groups {
		for _, slot := range group.Slots {
			items = append(items, slotItem{groupID: group.ID, cinemaName: group.Name, slot: slot})
		}
	}
	return items
}

func buildCinemaItems(cinemas []model.CinemaLocation, favorites map[string]bool, focusedID string) []list.Item {
	items := make([]list.Item, 0, len(cinemas))
	for _, cinema := range cinemas {
		items = append(items, cinemaItem{
			cinema:   cinema,
			favorite: favorites[cinema.ID],
			focused:  cinema.ID == focusedID,
		})
	}
	return items
}

func buildGroupItems(groups []catalog.MovieGroup) []list.Item {
	var items []list.Item
	for _, group := range groups {
		for _, language := range group.Languages {
			items = append(items, groupItem{meta: group.Meta, language: language})
		}
	}
	return items
}

func buildSelectItems(options []model.SelectOption, current string) []list.Item {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, optionItem{value: option.Value, label: option.Label, current: option.Value == current})
	}
	return items
}

func buildDateItems(options []model.DateOption, current string) []list.Item {
	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, optionItem{
			value:   option.Value,
			label:   fmt.Sprintf("%s %s", option.Label, option.Meta),
			detail:  option.Value,
			current: option.Value == current,
		})
	}
	return items
}

func buildCityItems(locations []model.LocationOption, current string) []list.Item {
	items := make([]list.Item, 0, len(locations))
	for _, location := range locations {
		items = append(items, optionItem{
			value:   location.Key,
			label:   location.Label,
			detail:  fmt.Sprintf("%.4f, %.4f", location.Center.Lat, location.Center.Lng),
			current: location.Key == current,
		})
	}
	return items
}
