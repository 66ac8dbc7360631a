package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the app bindings. Plain runes go to the list filter, so
// every action sits on a control or navigation key.
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding

	Select key.Binding
	Back   key.Binding

	HistoryBack    key.Binding
	HistoryForward key.Binding

	PickCity     key.Binding
	PickFilter   key.Binding
	QuickInfo    key.Binding
	Showtimes    key.Binding // Showtimes of the current movie at the selected cinema.
	Details      key.Binding
	Favorite     key.Binding
	DetectCity   key.Binding
	ResetFilters key.Binding
	SignOut      key.Binding

	Quit key.Binding
}

var DefaultKeyMap = KeyMap{
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev tab"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	HistoryBack: key.NewBinding(
		key.WithKeys("alt+left", "ctrl+b"),
		key.WithHelp("ctrl+b", "history back"),
	),
	HistoryForward: key.NewBinding(
		key.WithKeys("alt+right", "ctrl+n"),
		key.WithHelp("ctrl+n", "history forward"),
	),
	PickCity: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "city"),
	),
	PickFilter: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "filters"),
	),
	QuickInfo: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "quick info"),
	),
	Showtimes: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("ctrl+w", "showtimes here"),
	),
	Details: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "movie details"),
	),
	Favorite: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "favorite"),
	),
	DetectCity: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "detect city"),
	),
	ResetFilters: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset filters"),
	),
	SignOut: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "sign out"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return hint(strings.Join(parts, " • "))
}
