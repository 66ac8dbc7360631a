package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/mapwidget"
	"showtime-finder-cli/service"
	"showtime-finder-cli/store"
	"showtime-finder-cli/viewstate"
)

type testItem struct {
	value string
}

func (t testItem) Title() string       { return t.value }
func (t testItem) Description() string { return "" }
func (t testItem) FilterValue() string { return strings.ToLower(t.value) }

func newTestModel(t *testing.T, path string) appModel {
	t.Helper()
	m := New(Options{Dataset: dataset.Default(), Path: path}).(appModel)
	return send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func send(m appModel, msg tea.Msg) appModel {
	next, _ := m.Update(msg)
	return next.(appModel)
}

func newFilterModel(items []list.Item) *appModel {
	model := New(Options{}).(appModel)
	model.movieList = newList("Movies")
	model.movieList.SetItems(items)
	return &model
}

func TestHandleFilterInput_AppendsRunes(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Dune"},
		testItem{value: "Mai"},
	})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}) {
		t.Fatal("expected filter input to be handled")
	}
	if got := m.movieList.FilterValue(); got != "du" {
		t.Fatalf("expected filter value to be %q, got %q", "du", got)
	}
}

func TestHandleFilterInput_Backspace(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Dune"},
		testItem{value: "Mai"},
	})

	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})

	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeyBackspace}) {
		t.Fatal("expected backspace to be handled")
	}
	if got := m.movieList.FilterValue(); got != "d" {
		t.Fatalf("expected filter value to be %q, got %q", "d", got)
	}
}

func TestHandleFilterInput_Space(t *testing.T) {
	m := newFilterModel([]list.Item{
		testItem{value: "Dune Part Two"},
	})

	for _, r := range "dune" {
		_ = m.handleFilterInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if !m.handleFilterInput(tea.KeyMsg{Type: tea.KeySpace}) {
		t.Fatal("expected space to be handled")
	}
	if got := m.movieList.FilterValue(); got != "dune " {
		t.Fatalf("expected filter value to be %q, got %q", "dune ", got)
	}
}

func TestNew_RootPathIsReplacedByDefaultTab(t *testing.T) {
	m := newTestModel(t, "")

	if got := m.history.Path(); got != "/movies" {
		t.Fatalf("expected /movies, got %q", got)
	}
	if m.history.Len() != 1 {
		t.Fatalf("expected replace without a new entry, got %d entries", m.history.Len())
	}
	if m.state.ActiveTab != viewstate.TabMovies || m.state.View != viewstate.ViewCatalog {
		t.Fatalf("unexpected initial state %+v", m.state)
	}
}

func TestNew_DeepLinkOpensCinemaDetail(t *testing.T) {
	m := newTestModel(t, "/cinemas/cgv-vincom")

	if m.history.Path() != "/cinemas/cgv-vincom" {
		t.Fatalf("expected deep link to stay in history, got %q", m.history.Path())
	}
	if m.proj.CinemaDetail == nil || m.proj.CinemaDetail.ID != "cgv-vincom" {
		t.Fatalf("expected cinema detail, got %+v", m.proj.CinemaDetail)
	}
	if !strings.Contains(m.View(), "CGV Vincom") {
		t.Fatal("expected cinema name in view")
	}
}

func TestSelectMovie_PushesAndHistoryBackRestores(t *testing.T) {
	m := newTestModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.View != viewstate.ViewShowtimes || m.state.MovieID != "dune-part-two" {
		t.Fatalf("expected showtimes for dune-part-two, got %+v", m.state)
	}
	if m.history.Path() != "/movies/dune-part-two" || m.history.Len() != 2 {
		t.Fatalf("expected pushed entry, got %q (%d)", m.history.Path(), m.history.Len())
	}
	if recent := m.session.RecentMovies(); len(recent) != 1 || recent[0].ID != "dune-part-two" {
		t.Fatalf("expected recent movie, got %+v", recent)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if m.state.View != viewstate.ViewCatalog || m.history.Path() != "/movies" {
		t.Fatalf("expected catalog after back, got %+v at %q", m.state, m.history.Path())
	}
	if m.history.Len() != 2 {
		t.Fatalf("history back must not add entries, got %d", m.history.Len())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	if m.state.View != viewstate.ViewShowtimes {
		t.Fatalf("expected showtimes after forward, got %+v", m.state)
	}
}

func TestEsc_LeavesShowtimesForCatalog(t *testing.T) {
	m := newTestModel(t, "/movies/movie-3")

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state.View != viewstate.ViewCatalog || m.history.Path() != "/movies" {
		t.Fatalf("expected catalog, got %+v at %q", m.state, m.history.Path())
	}
}

func TestDetailsOverlay_FallsBackForMissingDetail(t *testing.T) {
	m := newTestModel(t, "/movies/movie-2")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if !m.state.DetailsOpen {
		t.Fatal("expected details to open")
	}
	if m.proj.MovieDetailFound {
		t.Fatal("expected movie-2 to use the fallback detail")
	}
	if !strings.Contains(m.View(), "not available") {
		t.Fatal("expected fallback notice in view")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state.DetailsOpen {
		t.Fatal("expected esc to close details")
	}
}

func TestTabs_PlaceholderShowsComingSoon(t *testing.T) {
	m := newTestModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state.ActiveTab != viewstate.TabCinemas {
		t.Fatalf("expected cinemas tab, got %q", m.state.ActiveTab)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state.ActiveTab != "events" {
		t.Fatalf("expected events tab, got %q", m.state.ActiveTab)
	}
	if view := m.View(); !strings.Contains(view, "Coming soon.") || !strings.Contains(view, "Link: /events") {
		t.Fatal("expected placeholder view with the tab link")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state.ActiveTab != viewstate.TabCinemas || m.history.Path() != "/cinemas" {
		t.Fatalf("expected cinemas again, got %q at %q", m.state.ActiveTab, m.history.Path())
	}
}

func TestCinemas_QuickInfoAndFocus(t *testing.T) {
	m := newTestModel(t, "/cinemas")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	if m.state.QuickInfoID != "cgv-vincom" || m.state.MapFocusID != "cgv-vincom" {
		t.Fatalf("expected quick info for the first cinema, got %+v", m.state)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state.QuickInfoID != "" {
		t.Fatal("expected esc to close quick info")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.state.MapFocusID != "lotte-tay-ho" {
		t.Fatalf("expected focus to follow the list, got %q", m.state.MapFocusID)
	}
	if m.history.Path() != "/cinemas" {
		t.Fatalf("focus must not navigate, got %q", m.history.Path())
	}
}

func TestCinemas_ShowtimesHereRestrictsToCinema(t *testing.T) {
	m := newTestModel(t, "/cinemas/cgv-vincom")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.state.ActiveTab != viewstate.TabMovies || m.state.ShowtimesCinemaID != "st-cgv-vincom" {
		t.Fatalf("expected restricted showtimes, got %+v", m.state)
	}
	for _, group := range m.proj.Showtimes {
		if group.ID != "st-cgv-vincom" {
			t.Fatalf("unexpected cinema %q", group.ID)
		}
	}
}

func TestCityPicker_SelectsCity(t *testing.T) {
	m := newTestModel(t, "/cinemas")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.overlay != overlayCity {
		t.Fatal("expected city picker")
	}
	for i, item := range m.pickerList.Items() {
		if item.(optionItem).value == "tphcm" {
			m.pickerList.Select(i)
		}
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay != overlayNone || m.state.CityKey != "tphcm" {
		t.Fatalf("expected tphcm selected, got %q", m.state.CityKey)
	}
	if m.history.Len() != 1 {
		t.Fatalf("city change on cinemas must replace, got %d entries", m.history.Len())
	}
	for _, cinema := range m.proj.Cinemas {
		if cinema.CityKey != "tphcm" {
			t.Fatalf("unexpected cinema %q", cinema.ID)
		}
	}
}

func TestFilterPicker_ChangesCategory(t *testing.T) {
	m := newTestModel(t, "")

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlF})
	if m.overlay != overlayDimension {
		t.Fatal("expected dimension picker")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay != overlayOption || m.pickDim != viewstate.DimCategory {
		t.Fatalf("expected category options, got %v", m.pickDim)
	}
	for i, item := range m.pickerList.Items() {
		if item.(optionItem).value == "comingSoon" {
			m.pickerList.Select(i)
		}
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state.Listing.Category != "comingSoon" || len(m.proj.FilteredMovies) != 2 {
		t.Fatalf("expected two coming soon movies, got %+v", m.proj.FilteredMovies)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.state.Listing.Category != "nowShowing" {
		t.Fatalf("expected reset to the first category, got %q", m.state.Listing.Category)
	}
}

func TestFavorite_TogglesInSession(t *testing.T) {
	session := store.NewSession()
	m := New(Options{Dataset: dataset.Default(), Path: "/cinemas/bhd-garden", Session: session}).(appModel)

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	if !session.IsFavorite("hanoi", "bhd-garden") {
		t.Fatal("expected favorite to be stored")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlA})
	if session.IsFavorite("hanoi", "bhd-garden") {
		t.Fatal("expected favorite to be removed")
	}
}

func TestSignOut_ClearsAvatar(t *testing.T) {
	session := store.NewSession()
	if err := session.SignIn("0912345678"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	m := New(Options{Dataset: dataset.Default(), Path: "/movies", Session: session}).(appModel)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !strings.Contains(m.View(), "[+678] 3 alerts") {
		t.Fatal("expected avatar and alerts while signed in")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlX})
	if _, ok := session.SignedIn(); ok {
		t.Fatal("expected session to be signed out")
	}
	if strings.Contains(m.View(), "[+678]") || m.keys.SignOut.Enabled() {
		t.Fatal("expected avatar and sign out binding to be gone")
	}
}

func TestMapMsg_DegradedMessage(t *testing.T) {
	m := newTestModel(t, "/cinemas")

	if !strings.Contains(m.View(), "Loading map") {
		t.Fatal("expected loading indicator before the map resolves")
	}
	m = send(m, mapMsg{status: mapwidget.StatusUnavailable, err: mapwidget.ErrNoAPIKey})
	if !strings.Contains(m.View(), "Map unavailable") {
		t.Fatal("expected degraded map message")
	}

	m = send(m, mapMsg{status: mapwidget.StatusReady})
	if !strings.Contains(m.View(), "> 1 CGV Vincom") {
		t.Fatal("expected plotted map with the focused cinema")
	}
}

func TestLocationMsg_SelectsNearestCity(t *testing.T) {
	m := newTestModel(t, "")

	m = send(m, locationMsg{location: service.UserLocation{Latitude: 16.05, Longitude: 108.2}})
	if m.state.CityKey != "danang" {
		t.Fatalf("expected danang, got %q", m.state.CityKey)
	}

	m = send(m, locationMsg{err: errors.New("offline")})
	if m.state.CityKey != "danang" || m.notice == "" {
		t.Fatalf("expected city kept with a notice, got %q %q", m.state.CityKey, m.notice)
	}
}
