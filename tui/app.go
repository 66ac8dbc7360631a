package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/mapwidget"
	"showtime-finder-cli/model"
	"showtime-finder-cli/route"
	"showtime-finder-cli/service"
	"showtime-finder-cli/store"
	"showtime-finder-cli/viewstate"
)

const detectTimeout = 10 * time.Second

type overlay int

const (
	overlayNone overlay = iota
	overlayCity
	overlayDimension
	overlayOption
)

// Locator resolves the approximate position of the user.
type Locator interface {
	DetectLocation(ctx context.Context) (service.UserLocation, error)
}

type Options struct {
	Dataset *dataset.Dataset

	// Path is the route opened at startup. Empty opens the default tab.
	Path string

	// CityKey overrides the default city when it names a known city.
	CityKey string

	Maps       *mapwidget.Loader
	Session    *store.Session
	Locator    Locator
	DetectCity bool
	Logger     *slog.Logger
}

type appModel struct {
	ds       *dataset.Dataset
	views    *viewstate.Store
	history  *route.MemoryHistory
	router   *route.Synchronizer
	unlisten func()
	session  *store.Session
	maps     *mapwidget.Loader
	locator  Locator
	detect   bool
	logger   *slog.Logger
	keys     KeyMap

	state  viewstate.State
	proj   viewstate.Projection
	scroll *scrollFlag

	width  int
	height int

	movieList  list.Model
	slotList   list.Model
	cinemaList list.Model
	groupList  list.Model
	pickerList list.Model

	overlay overlay
	pickDim viewstate.Dimension

	mapStatus mapwidget.Status
	mapErr    error
	spinner   spinner.Model

	notice string
}

// scrollFlag is set by the store when navigation asks for the top of the
// view. It is shared by every copy of the model.
type scrollFlag struct {
	pending bool
}

type mapMsg struct {
	status mapwidget.Status
	err    error
}

type locationMsg struct {
	location service.UserLocation
	err      error
}

func New(opts Options) tea.Model {
	ds := opts.Dataset
	if ds == nil {
		ds = dataset.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	session := opts.Session
	if session == nil {
		session = store.NewSession()
	}

	initial, _ := viewstate.Open(ds, opts.Path, opts.CityKey)
	history := route.NewMemoryHistory(route.NormalizePath(opts.Path))
	router := route.NewSynchronizer(history, viewstate.TabKeys(ds), ds.DefaultTabKey(), route.WithLogger(logger))
	scroll := &scrollFlag{}
	views := viewstate.NewStore(ds, initial,
		viewstate.WithNavigator(router),
		viewstate.WithScroller(viewstate.ScrollFunc(func() { scroll.pending = true })),
		viewstate.WithLogger(logger),
	)
	unlisten := router.Listen(func(r route.Route) {
		views.Navigate(r, viewstate.NavOptions{SkipHistory: true, SkipScroll: true})
	})
	router.SyncInitial(initial.Route())

	m := appModel{
		ds:       ds,
		views:    views,
		history:  history,
		router:   router,
		unlisten: unlisten,
		session:  session,
		maps:     opts.Maps,
		locator:  opts.Locator,
		detect:   opts.DetectCity,
		logger:   logger,
		keys:     DefaultKeyMap,
		scroll:   scroll,
	}
	m.keys.DetectCity.SetEnabled(opts.Locator != nil)
	_, signedIn := session.SignedIn()
	m.keys.SignOut.SetEnabled(signedIn)

	m.movieList = newList("Movies")
	m.slotList = newList("Showtimes")
	m.cinemaList = newList("Cinemas")
	m.groupList = newList("Showtimes")
	m.pickerList = newList("Select")

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.loadMapCmd()}
	if m.detect && m.locator != nil {
		cmds = append(cmds, m.detectLocationCmd())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		// fallthrough to component update

	case spinner.TickMsg:
		if m.mapStatus != mapwidget.StatusIdle && m.mapStatus != mapwidget.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case mapMsg:
		m.mapStatus = msg.status
		m.mapErr = msg.err
		if msg.err != nil {
			m.logger.Warn("map unavailable", "error", msg.err)
		}
		return m, nil

	case locationMsg:
		if msg.err != nil {
			m.logger.Warn("location detection failed", "error", msg.err)
			m.notice = "Could not detect your location."
			return m, nil
		}
		city, km, ok := service.NearestCity(msg.location, m.ds.Locations)
		if !ok {
			m.notice = "No supported city near you."
			return m, nil
		}
		m.views.Dispatch(viewstate.SelectCity{CityKey: city.Key})
		m.notice = fmt.Sprintf("Nearest city: %s (%.0f km)", city.Label, km)
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	if listPtr := m.activeList(); listPtr != nil {
		*listPtr, cmd = listPtr.Update(msg)
	}
	m.syncMapFocus()
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.unlisten != nil {
			m.unlisten()
		}
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Back):
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		m.goBack()
		return m, nil, true
	}

	if m.overlay != overlayNone {
		if key.Matches(msg, m.keys.Select) {
			m.choosePicker()
			return m, nil, true
		}
		return m, nil, false
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.cycleTab(1)
		return m, nil, true
	case key.Matches(msg, m.keys.PrevTab):
		m.cycleTab(-1)
		return m, nil, true
	case key.Matches(msg, m.keys.HistoryBack):
		if !m.history.Back() {
			m.notice = "Nothing to go back to."
		}
		m.refresh()
		return m, nil, true
	case key.Matches(msg, m.keys.HistoryForward):
		if !m.history.Forward() {
			m.notice = "Nothing to go forward to."
		}
		m.refresh()
		return m, nil, true
	case key.Matches(msg, m.keys.PickCity):
		m.openPicker(overlayCity, "Select City", buildCityItems(m.ds.Locations, m.state.CityKey))
		return m, nil, true
	case key.Matches(msg, m.keys.PickFilter):
		dims := m.filterDimensions()
		if len(dims) == 0 {
			m.notice = "No filters on this view."
			return m, nil, true
		}
		m.openPicker(overlayDimension, "Filters", m.dimensionItems(dims))
		return m, nil, true
	case key.Matches(msg, m.keys.ResetFilters):
		m.resetFilters()
		return m, nil, true
	case key.Matches(msg, m.keys.SignOut):
		if _, ok := m.session.SignedIn(); !ok {
			return m, nil, true
		}
		m.session.SignOut()
		m.keys.SignOut.SetEnabled(false)
		m.notice = "Signed out."
		m.logger.Info("signed out")
		return m, nil, true
	case key.Matches(msg, m.keys.DetectCity):
		if m.locator == nil {
			return m, nil, true
		}
		m.notice = "Detecting your location..."
		return m, m.detectLocationCmd(), true
	case key.Matches(msg, m.keys.Details):
		if m.state.ActiveTab != viewstate.TabMovies || m.state.View != viewstate.ViewShowtimes {
			return m, nil, true
		}
		if m.state.DetailsOpen {
			m.dispatch(viewstate.CloseMovieDetails{})
		} else {
			m.dispatch(viewstate.OpenMovieDetails{})
		}
		return m, nil, true
	case key.Matches(msg, m.keys.QuickInfo):
		cinema, ok := m.selectedCinema()
		if !ok || m.proj.CinemaDetail != nil {
			return m, nil, true
		}
		if m.state.QuickInfoID == cinema.ID {
			m.dispatch(viewstate.CloseQuickInfo{})
		} else {
			m.dispatch(viewstate.ShowQuickInfo{CinemaID: cinema.ID})
		}
		return m, nil, true
	case key.Matches(msg, m.keys.Showtimes):
		cinema, ok := m.targetCinema()
		if !ok {
			return m, nil, true
		}
		m.dispatch(viewstate.ViewShowtimesForCinema{CinemaID: cinema.ID})
		return m, nil, true
	case key.Matches(msg, m.keys.Favorite):
		cinema, ok := m.targetCinema()
		if !ok {
			return m, nil, true
		}
		favorite, err := m.session.ToggleFavorite(m.state.CityKey, cinema.ID)
		if err != nil {
			m.notice = err.Error()
			return m, nil, true
		}
		if favorite {
			m.notice = fmt.Sprintf("Added %s to favorites.", cinema.Name)
		} else {
			m.notice = fmt.Sprintf("Removed %s from favorites.", cinema.Name)
		}
		m.refresh()
		return m, nil, true
	case key.Matches(msg, m.keys.Select):
		m.selectActive()
		return m, nil, true
	}
	return m, nil, false
}

func (m *appModel) selectActive() {
	switch {
	case m.proj.Placeholder:
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewCatalog:
		item, ok := m.movieList.SelectedItem().(movieItem)
		if !ok {
			return
		}
		m.openMovie(item.movie.ID, item.movie.Title)
	case m.state.ActiveTab == viewstate.TabMovies:
		item, ok := m.slotList.SelectedItem().(slotItem)
		if !ok {
			return
		}
		cinema, ok := m.cinemaForGroup(item.groupID)
		if !ok {
			m.notice = fmt.Sprintf("%s is not listed in %s.", item.cinemaName, m.proj.City.Label)
			return
		}
		m.dispatch(viewstate.OpenCinemaDetail{CinemaID: cinema.ID})
	case m.state.ActiveTab == viewstate.TabCinemas && m.proj.CinemaDetail == nil:
		item, ok := m.cinemaList.SelectedItem().(cinemaItem)
		if !ok {
			return
		}
		m.dispatch(viewstate.OpenCinemaDetail{CinemaID: item.cinema.ID})
	case m.state.ActiveTab == viewstate.TabCinemas:
		item, ok := m.groupList.SelectedItem().(groupItem)
		if !ok {
			return
		}
		m.openMovie(item.meta.ID, item.meta.Title)
	}
}

func (m *appModel) openMovie(id, title string) {
	m.session.RememberMovie(store.RecentMovie{ID: id, Title: title})
	m.dispatch(viewstate.SelectMovie{MovieID: id})
}

func (m *appModel) goBack() {
	switch {
	case m.overlay == overlayOption:
		m.openPicker(overlayDimension, "Filters", m.dimensionItems(m.filterDimensions()))
	case m.overlay != overlayNone:
		m.overlay = overlayNone
	case m.state.DetailsOpen:
		m.dispatch(viewstate.CloseMovieDetails{})
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewShowtimes:
		m.dispatch(viewstate.SelectTab{TabKey: viewstate.TabMovies})
	case m.state.ActiveTab == viewstate.TabCinemas && m.state.CinemaDetailID != "":
		m.dispatch(viewstate.CloseCinemaDetail{})
	case m.state.QuickInfoID != "":
		m.dispatch(viewstate.CloseQuickInfo{})
	}
}

func (m *appModel) cycleTab(step int) {
	tabs := viewstate.TabKeys(m.ds)
	if len(tabs) == 0 {
		return
	}
	current := 0
	for i, tab := range tabs {
		if tab == m.state.ActiveTab {
			current = i
			break
		}
	}
	next := (current + step + len(tabs)) % len(tabs)
	m.dispatch(viewstate.SelectTab{TabKey: tabs[next]})
}

func (m *appModel) dispatch(intent viewstate.Intent) {
	m.notice = ""
	m.views.Dispatch(intent)
	m.refresh()
}

// refresh reloads the snapshot and rebuilds every list from its projection.
func (m *appModel) refresh() {
	m.state = m.views.Snapshot()
	m.proj = viewstate.Project(m.ds, m.state)

	m.movieList.Title = fmt.Sprintf("%s • %d movies", optionLabel(m.ds.Categories, string(m.state.Listing.Category)), len(m.proj.FilteredMovies))
	m.movieList.SetItems(buildMovieItems(m.proj.FilteredMovies))

	if m.proj.SelectedMovie != nil {
		m.slotList.Title = "Showtimes • " + m.proj.SelectedMovie.Title
	}
	m.slotList.SetItems(buildSlotItems(m.proj.Showtimes))

	focusedID := ""
	if m.proj.FocusedCinema != nil {
		focusedID = m.proj.FocusedCinema.ID
	}
	m.cinemaList.Title = "Cinemas in " + m.proj.City.Label
	m.cinemaList.SetItems(buildCinemaItems(m.proj.Cinemas, m.session.Favorites(m.state.CityKey), focusedID))

	m.groupList.SetItems(buildGroupItems(m.proj.CinemaGroups))

	if m.scroll.pending {
		m.scroll.pending = false
		m.movieList.ResetSelected()
		m.slotList.ResetSelected()
		m.cinemaList.ResetSelected()
		m.groupList.ResetSelected()
	}
	for i, item := range m.cinemaList.Items() {
		if ci, ok := item.(cinemaItem); ok && ci.cinema.ID == focusedID {
			m.cinemaList.Select(i)
			break
		}
	}
}

// syncMapFocus moves the map focus to the highlighted cinema row.
func (m *appModel) syncMapFocus() {
	if m.overlay != overlayNone || m.state.ActiveTab != viewstate.TabCinemas || m.proj.CinemaDetail != nil {
		return
	}
	item, ok := m.cinemaList.SelectedItem().(cinemaItem)
	if !ok || (m.proj.FocusedCinema != nil && m.proj.FocusedCinema.ID == item.cinema.ID) {
		return
	}
	m.views.Dispatch(viewstate.FocusCinema{CinemaID: item.cinema.ID})
	m.refresh()
}

func (m *appModel) openPicker(kind overlay, title string, items []list.Item) {
	m.overlay = kind
	m.pickerList.Title = title
	m.pickerList.ResetFilter()
	m.pickerList.SetItems(items)
	m.pickerList.ResetSelected()
	for i, item := range items {
		if oi, ok := item.(optionItem); ok && oi.current {
			m.pickerList.Select(i)
			break
		}
	}
}

func (m *appModel) choosePicker() {
	item, ok := m.pickerList.SelectedItem().(optionItem)
	if !ok {
		return
	}
	switch m.overlay {
	case overlayCity:
		m.overlay = overlayNone
		m.dispatch(viewstate.SelectCity{CityKey: item.value})
	case overlayDimension:
		m.pickDim = viewstate.Dimension(item.value)
		m.openPicker(overlayOption, dimensionLabel(m.pickDim), m.optionItems(m.pickDim))
	case overlayOption:
		m.overlay = overlayNone
		m.dispatch(viewstate.ChangeFilter{Dimension: m.pickDim, Value: item.value})
	}
}

// filterDimensions lists the filters that apply to the current view.
func (m appModel) filterDimensions() []viewstate.Dimension {
	switch {
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewShowtimes:
		return []viewstate.Dimension{viewstate.DimDate, viewstate.DimShowtimeLanguage, viewstate.DimShowtimeFormat, viewstate.DimExperience}
	case m.state.ActiveTab == viewstate.TabMovies:
		return []viewstate.Dimension{viewstate.DimCategory, viewstate.DimGenre, viewstate.DimListingLanguage, viewstate.DimListingFormat}
	case m.state.ActiveTab == viewstate.TabCinemas && m.proj.CinemaShowtimes != nil:
		return []viewstate.Dimension{viewstate.DimCinemaDate, viewstate.DimCinemaLanguage, viewstate.DimCinemaFormat}
	default:
		return nil
	}
}

func (m appModel) dimensionItems(dims []viewstate.Dimension) []list.Item {
	items := make([]list.Item, 0, len(dims))
	for _, dim := range dims {
		items = append(items, optionItem{
			value:  string(dim),
			label:  dimensionLabel(dim),
			detail: "Current: " + m.currentLabel(dim),
		})
	}
	return items
}

func (m appModel) optionItems(dim viewstate.Dimension) []list.Item {
	s, p := m.state, m.proj
	switch dim {
	case viewstate.DimCategory:
		return buildSelectItems(m.ds.Categories, string(s.Listing.Category))
	case viewstate.DimGenre:
		return buildSelectItems(p.GenreOptions, s.Listing.Genre)
	case viewstate.DimListingLanguage:
		return buildSelectItems(p.LanguageOptions, s.Listing.Language)
	case viewstate.DimListingFormat:
		return buildSelectItems(p.FormatOptions, s.Listing.Format)
	case viewstate.DimDate:
		return buildDateItems(p.MovieDates, s.Showtime.Date)
	case viewstate.DimShowtimeLanguage:
		return buildSelectItems(m.ds.LanguageFilters, s.Showtime.Language)
	case viewstate.DimShowtimeFormat:
		return buildSelectItems(m.ds.FormatFilters, s.Showtime.Format)
	case viewstate.DimExperience:
		return buildSelectItems(m.ds.ExperienceFilters, s.Showtime.Experience)
	case viewstate.DimCinemaDate:
		return buildDateItems(p.CinemaDates, s.Cinema.Date)
	case viewstate.DimCinemaLanguage:
		return buildSelectItems(p.CinemaLanguageOptions, s.Cinema.Language)
	case viewstate.DimCinemaFormat:
		return buildSelectItems(p.CinemaFormatOptions, s.Cinema.Format)
	default:
		return nil
	}
}

func (m appModel) currentLabel(dim viewstate.Dimension) string {
	for _, item := range m.optionItems(dim) {
		if oi, ok := item.(optionItem); ok && oi.current {
			return oi.label
		}
	}
	return "-"
}

// resetFilters sets every filter of the current view to its first option.
func (m *appModel) resetFilters() {
	dims := m.filterDimensions()
	if len(dims) == 0 {
		return
	}
	for _, dim := range dims {
		items := m.optionItems(dim)
		if len(items) == 0 {
			continue
		}
		if first, ok := items[0].(optionItem); ok {
			m.views.Dispatch(viewstate.ChangeFilter{Dimension: dim, Value: first.value})
		}
	}
	m.notice = "Filters reset."
	m.refresh()
}

// selectedCinema is the highlighted row on the cinema list.
func (m appModel) selectedCinema() (model.CinemaLocation, bool) {
	if m.state.ActiveTab != viewstate.TabCinemas {
		return model.CinemaLocation{}, false
	}
	item, ok := m.cinemaList.SelectedItem().(cinemaItem)
	if !ok {
		return model.CinemaLocation{}, false
	}
	return item.cinema, true
}

// targetCinema prefers the open detail, then the quick info popup, then
// the highlighted row.
func (m appModel) targetCinema() (model.CinemaLocation, bool) {
	if m.state.ActiveTab != viewstate.TabCinemas {
		return model.CinemaLocation{}, false
	}
	if m.proj.CinemaDetail != nil {
		return *m.proj.CinemaDetail, true
	}
	if m.proj.QuickInfo != nil {
		return *m.proj.QuickInfo, true
	}
	return m.selectedCinema()
}

// cinemaForGroup finds the cinema of the current city that lists groupID.
func (m appModel) cinemaForGroup(groupID string) (model.CinemaLocation, bool) {
	for _, cinema := range m.proj.Cinemas {
		if cinema.ShowtimesID == groupID {
			return cinema, true
		}
	}
	return model.CinemaLocation{}, false
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 || msg.Alt {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	if m.overlay != overlayNone {
		return &m.pickerList
	}
	switch {
	case m.proj.Placeholder:
		return nil
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewCatalog:
		return &m.movieList
	case m.state.ActiveTab == viewstate.TabMovies:
		if m.state.DetailsOpen {
			return nil
		}
		return &m.slotList
	case m.state.ActiveTab == viewstate.TabCinemas && m.proj.CinemaDetail == nil:
		return &m.cinemaList
	case m.state.ActiveTab == viewstate.TabCinemas:
		return &m.groupList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 10
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.slotList.SetSize(m.width, h)
	m.groupList.SetSize(m.width, h-4)
	m.pickerList.SetSize(m.width, h)
	m.cinemaList.SetSize(m.listPaneWidth(), h)
}

func (m appModel) listPaneWidth() int {
	if m.width < 80 {
		return m.width
	}
	return m.width * 11 / 20
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func (m appModel) loadMapCmd() tea.Cmd {
	loader := m.maps
	if loader == nil {
		return func() tea.Msg {
			return mapMsg{status: mapwidget.StatusUnavailable, err: mapwidget.ErrNoAPIKey}
		}
	}
	return func() tea.Msg {
		<-loader.Start(context.Background())
		status, err := loader.Status()
		return mapMsg{status: status, err: err}
	}
}

func (m appModel) detectLocationCmd() tea.Cmd {
	locator := m.locator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), detectTimeout)
		defer cancel()
		location, err := locator.DetectLocation(ctx)
		return locationMsg{location: location, err: err}
	}
}

func dimensionLabel(dim viewstate.Dimension) string {
	switch dim {
	case viewstate.DimCategory:
		return "Category"
	case viewstate.DimGenre:
		return "Genre"
	case viewstate.DimListingLanguage, viewstate.DimShowtimeLanguage, viewstate.DimCinemaLanguage:
		return "Language"
	case viewstate.DimListingFormat, viewstate.DimShowtimeFormat, viewstate.DimCinemaFormat:
		return "Format"
	case viewstate.DimDate, viewstate.DimCinemaDate:
		return "Date"
	case viewstate.DimExperience:
		return "Experience"
	default:
		return string(dim)
	}
}

func optionLabel(options []model.SelectOption, value string) string {
	for _, option := range options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}
