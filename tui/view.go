package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/mapwidget"
	"showtime-finder-cli/viewstate"
)

const (
	minMapWidth  = 24
	minMapHeight = 8
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("63")).
			Padding(0, 1)
	tabStyle   = lipgloss.NewStyle().Padding(0, 1)
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func (m appModel) View() string {
	return m.headerView() + "\n\n" + m.bodyView()
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Showtime Finder")
	if avatar := m.session.AvatarLabel(); avatar != "" {
		title += "  " + hint(fmt.Sprintf("[%s] %d alerts", avatar, m.session.AlertCount()))
	}

	tabs := make([]string, 0, len(m.ds.NavigationTabs))
	for _, tab := range m.ds.NavigationTabs {
		if tab.Key == m.state.ActiveTab {
			tabs = append(tabs, activeTabStyle.Render(tab.Label))
		} else {
			tabs = append(tabs, tabStyle.Render(tab.Label))
		}
	}

	back, forward := "‹", "›"
	if !m.history.CanGoBack() {
		back = hint(back)
	}
	if !m.history.CanGoForward() {
		forward = hint(forward)
	}
	address := fmt.Sprintf("%s %s %s", back, forward, m.history.Path())

	sub := []string{"City: " + m.proj.City.Label}
	if m.state.ActiveTab == viewstate.TabMovies {
		if recent := m.session.RecentMovies(); len(recent) > 0 {
			titles := make([]string, 0, len(recent))
			for _, movie := range recent {
				titles = append(titles, movie.Title)
			}
			sub = append(sub, "Recent: "+strings.Join(titles, ", "))
		}
	}
	meta := hint(strings.Join(sub, " • "))
	if m.notice != "" {
		meta += "\n" + warnStyle.Render(m.notice)
	}

	filterLine := ""
	if filter := m.filterText(); filter != "" {
		filterLine = "\n" + hint("Filter: "+filter)
	}

	return title + "\n" + strings.Join(tabs, " ") + "\n" + address + "\n" + meta + filterLine + "\n" + m.hintsView()
}

// filterText returns the filter typed into the focused list.
func (m appModel) filterText() string {
	if listPtr := m.activeList(); listPtr != nil {
		return listPtr.FilterValue()
	}
	return ""
}

func (m appModel) hintsView() string {
	k := m.keys
	switch {
	case m.overlay != overlayNone:
		return helpLine(k.Select, k.Back, k.Quit)
	case m.proj.Placeholder:
		return helpLine(k.NextTab, k.HistoryBack, k.HistoryForward, k.PickCity, k.SignOut, k.Quit)
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewShowtimes:
		return helpLine(k.Select, k.Back, k.PickFilter, k.ResetFilters, k.Details, k.HistoryBack, k.Quit)
	case m.state.ActiveTab == viewstate.TabMovies:
		return helpLine(k.Select, k.NextTab, k.PickFilter, k.ResetFilters, k.PickCity, k.HistoryBack, k.HistoryForward, k.SignOut, k.Quit)
	case m.proj.CinemaDetail != nil:
		return helpLine(k.Select, k.Back, k.PickFilter, k.Showtimes, k.Favorite, k.HistoryBack, k.Quit)
	default:
		return helpLine(k.Select, k.QuickInfo, k.Showtimes, k.Favorite, k.PickCity, k.DetectCity, k.NextTab, k.Quit)
	}
}

func (m appModel) bodyView() string {
	if m.overlay != overlayNone {
		return m.pickerList.View()
	}
	switch {
	case m.proj.Placeholder:
		return m.placeholderView()
	case m.state.ActiveTab == viewstate.TabMovies && m.state.View == viewstate.ViewShowtimes:
		if m.state.DetailsOpen {
			return m.movieDetailsView()
		}
		return m.showtimesView()
	case m.state.ActiveTab == viewstate.TabMovies:
		return m.filtersSummary() + "\n\n" + m.movieList.View()
	case m.proj.CinemaDetail != nil:
		return m.cinemaDetailView()
	default:
		return m.cinemasView()
	}
}

func (m appModel) placeholderView() string {
	label := m.state.ActiveTab
	for _, tab := range m.ds.NavigationTabs {
		if tab.Key == m.state.ActiveTab {
			label = tab.Label
		}
	}
	return panelStyle.Render(titleStyle.Render(label) + "\n\nComing soon.\n" + hint("Link: "+m.router.Href(m.state.ActiveTab)))
}

func (m appModel) filtersSummary() string {
	dims := m.filterDimensions()
	parts := make([]string, 0, len(dims))
	for _, dim := range dims {
		parts = append(parts, fmt.Sprintf("%s: %s", dimensionLabel(dim), m.currentLabel(dim)))
	}
	return hint(strings.Join(parts, " • "))
}

func (m appModel) showtimesView() string {
	var b strings.Builder
	if movie := m.proj.SelectedMovie; movie != nil {
		b.WriteString(titleStyle.Render(movie.Title))
		if movie.Subtitle != "" {
			b.WriteString(" " + hint(movie.Subtitle))
		}
		b.WriteString("\n")
		if credits := catalog.FormatAuthors(movie.Authors); credits != "" {
			b.WriteString(hint(credits) + "\n")
		}
	}
	b.WriteString(m.filtersSummary())
	if m.state.ShowtimesCinemaID != "" {
		if group, ok := m.ds.ShowtimeGroup(m.state.ShowtimesCinemaID); ok {
			b.WriteString("\n" + hint("Only at "+group.Name))
		}
	}
	b.WriteString("\n\n")
	if len(m.proj.Showtimes) == 0 {
		b.WriteString("No showtimes match these filters.")
		return b.String()
	}
	b.WriteString(m.slotList.View())
	return b.String()
}

func (m appModel) movieDetailsView() string {
	d := m.proj.MovieDetail
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	if d.Certificate != "" {
		b.WriteString(" (" + d.Certificate + ")")
	}
	b.WriteString("\n")
	if !m.proj.MovieDetailFound {
		b.WriteString(warnStyle.Render("Full details for this title are not available. Showing a featured movie.") + "\n")
	}
	if d.Tagline != "" {
		b.WriteString(hint(d.Tagline) + "\n")
	}
	facts := []string{}
	if len(d.Genres) > 0 {
		facts = append(facts, strings.Join(d.Genres, ", "))
	}
	if d.Runtime != "" {
		facts = append(facts, d.Runtime)
	}
	if d.ReleaseDate != "" {
		facts = append(facts, d.ReleaseDate)
	}
	if d.Rating > 0 {
		facts = append(facts, fmt.Sprintf("%.1f/10", d.Rating))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " • ") + "\n")
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	if d.Synopsis != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Width(width).Render(d.Synopsis) + "\n")
	}
	if d.Creators.Director != "" {
		b.WriteString("\nDirector: " + d.Creators.Director)
	}
	if len(d.Creators.Writers) > 0 {
		b.WriteString("\nWriters: " + strings.Join(d.Creators.Writers, ", "))
	}
	if len(d.Cast) > 0 {
		cast := make([]string, 0, len(d.Cast))
		for _, member := range d.Cast {
			cast = append(cast, fmt.Sprintf("%s as %s", member.Name, member.Role))
		}
		b.WriteString("\nCast: " + strings.Join(cast, ", "))
	}
	if len(d.Highlights) > 0 {
		b.WriteString("\n\nHighlights:")
		for _, highlight := range d.Highlights {
			b.WriteString("\n  - " + highlight)
		}
	}
	if len(d.Metrics) > 0 {
		metrics := make([]string, 0, len(d.Metrics))
		for _, metric := range d.Metrics {
			metrics = append(metrics, metric.Label+" "+metric.Value)
		}
		b.WriteString("\n\n" + hint(strings.Join(metrics, " • ")))
	}
	for _, review := range d.Reviews {
		b.WriteString(fmt.Sprintf("\n\n%s %.1f", titleStyle.Render(review.Source), review.Rating))
		if review.MaxRating > 0 {
			b.WriteString(fmt.Sprintf("/%.0f", review.MaxRating))
		}
		b.WriteString("\n" + lipgloss.NewStyle().Width(width).Render(review.Snippet))
	}
	b.WriteString("\n\n" + hint("esc or ctrl+g to close"))
	return b.String()
}

func (m appModel) cinemasView() string {
	listView := m.cinemaList.View()
	if m.width < 80 {
		return listView + "\n\n" + m.mapView(m.width-4) + m.quickInfoView()
	}
	side := m.mapView(m.width-m.listPaneWidth()-6) + m.quickInfoView()
	return lipgloss.JoinHorizontal(lipgloss.Top, listView, "  ", side)
}

func (m appModel) mapView(width int) string {
	switch m.mapStatus {
	case mapwidget.StatusIdle, mapwidget.StatusLoading:
		return fmt.Sprintf("%s Loading map", m.spinner.View())
	case mapwidget.StatusUnavailable:
		return warnStyle.Render(mapwidget.DegradedMessage(m.mapErr))
	}
	if width < minMapWidth {
		width = minMapWidth
	}
	height := m.height / 3
	if height < minMapHeight {
		height = minMapHeight
	}
	focusedID := ""
	if m.proj.FocusedCinema != nil {
		focusedID = m.proj.FocusedCinema.ID
	}
	return panelStyle.Render(mapwidget.Plot(m.proj.City.Center, m.proj.Cinemas, focusedID, width, height))
}

func (m appModel) quickInfoView() string {
	cinema := m.proj.QuickInfo
	if cinema == nil {
		return ""
	}
	lines := []string{titleStyle.Render(cinema.Name), cinema.Address}
	if cinema.VenueDetails != "" {
		lines = append(lines, hint(cinema.VenueDetails))
	}
	lines = append(lines, fmt.Sprintf("%.1f km from center", cinema.DistanceFromCenterKm))
	if facilities := catalog.FacilityLabels(*cinema); len(facilities) > 0 {
		lines = append(lines, strings.Join(facilities, " • "))
	}
	if m.session.IsFavorite(m.state.CityKey, cinema.ID) {
		lines = append(lines, "★ Favorite")
	}
	lines = append(lines, "", helpLine(m.keys.Select, m.keys.Showtimes, m.keys.Back))
	return "\n" + panelStyle.Render(strings.Join(lines, "\n"))
}

func (m appModel) cinemaDetailView() string {
	cinema := *m.proj.CinemaDetail
	var b strings.Builder
	b.WriteString(titleStyle.Render(cinema.Name))
	if m.session.IsFavorite(m.state.CityKey, cinema.ID) {
		b.WriteString(" ★")
	}
	b.WriteString("\n" + cinema.Address)
	if cinema.VenueDetails != "" {
		b.WriteString("\n" + hint(cinema.VenueDetails))
	}
	if facilities := catalog.FacilityLabels(cinema); len(facilities) > 0 {
		b.WriteString("\n" + strings.Join(facilities, " • "))
	}
	group := m.proj.CinemaShowtimes
	if group == nil {
		b.WriteString("\n\nNo showtimes listed for this cinema.")
		return b.String()
	}
	if group.PriceFrom != "" {
		b.WriteString("\n" + hint("From "+group.PriceFrom))
	}
	if group.CancellationPolicy != "" {
		b.WriteString("\n" + hint(group.CancellationPolicy))
	}
	b.WriteString("\n" + m.filtersSummary() + "\n\n")
	if len(m.proj.CinemaGroups) == 0 {
		b.WriteString("No showtimes match these filters.")
		return b.String()
	}
	b.WriteString(m.groupList.View())
	return b.String()
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
