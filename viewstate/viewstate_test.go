package viewstate

import (
	"testing"

	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/route"
)

type recorder struct {
	routes   []route.Route
	replaces []bool
	scrolls  int
}

func (r *recorder) Navigate(rt route.Route, replace bool) {
	r.routes = append(r.routes, rt)
	r.replaces = append(r.replaces, replace)
}

func (r *recorder) ScrollTop() { r.scrolls++ }

func newTestStore(t *testing.T, path string) (*Store, *recorder) {
	t.Helper()
	ds := dataset.Default()
	rec := &recorder{}
	initial := New(ds, route.Parse(path, TabKeys(ds), ds.DefaultTabKey()))
	return NewStore(ds, initial, WithNavigator(rec), WithScroller(rec)), rec
}

func TestNew_DeepLinks(t *testing.T) {
	ds := dataset.Default()

	s := New(ds, route.Route{TabKey: "movies", Detail: "movie-3"})
	if s.View != ViewShowtimes || s.MovieID != "movie-3" {
		t.Fatalf("expected showtimes for movie-3, got %+v", s)
	}

	s = New(ds, route.Route{TabKey: "cinemas", Detail: "cgv-vincom"})
	if s.CinemaDetailID != "cgv-vincom" || s.MapFocusID != "cgv-vincom" {
		t.Fatalf("expected cinema detail, got %+v", s)
	}
	if s.Cinema.Date != "2025-05-20" || s.Cinema.Language != catalog.All {
		t.Fatalf("expected cinema filters reset to first date, got %+v", s.Cinema)
	}

	s = New(ds, route.Route{TabKey: "nowhere", Detail: "x"})
	if s.ActiveTab != "movies" || s.View != ViewCatalog {
		t.Fatalf("expected fallback tab, got %+v", s)
	}
}

func TestOpen_SelectsKnownCity(t *testing.T) {
	ds := dataset.Default()

	s, r := Open(ds, "/movies/movie-3", "tphcm")
	if r.TabKey != "movies" || r.Detail != "movie-3" {
		t.Fatalf("expected parsed movie route, got %+v", r)
	}
	if s.CityKey != "tphcm" || s.View != ViewShowtimes || s.MovieID != "movie-3" {
		t.Fatalf("expected showtimes for movie-3 in tphcm, got %+v", s)
	}

	s, _ = Open(ds, "/movies", "atlantis")
	if s.CityKey != ds.DefaultCityKey() {
		t.Fatalf("expected unknown city to keep %q, got %q", ds.DefaultCityKey(), s.CityKey)
	}
}

func TestState_Route(t *testing.T) {
	ds := dataset.Default()
	cases := []struct {
		path string
		want string
	}{
		{"/movies", "/movies"},
		{"/movies/movie-3", "/movies/movie-3"},
		{"/cinemas", "/cinemas"},
		{"/cinemas/cgv-vincom", "/cinemas/cgv-vincom"},
		{"/events/anything", "/events"},
	}
	for _, tc := range cases {
		s := New(ds, route.Parse(tc.path, TabKeys(ds), ds.DefaultTabKey()))
		if got := s.Route().Path(ds.DefaultTabKey()); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.path, tc.want, got)
		}
	}
}

func TestSelectCity_OnCinemasTabReplacesWithoutScroll(t *testing.T) {
	store, rec := newTestStore(t, "/cinemas/cgv-vincom")
	store.Dispatch(ShowQuickInfo{CinemaID: "lotte-tay-ho"})

	s := store.Dispatch(SelectCity{CityKey: "tphcm"})
	if s.CityKey != "tphcm" || s.CinemaDetailID != "" || s.MapFocusID != "" || s.QuickInfoID != "" || s.ShowtimesCinemaID != "" {
		t.Fatalf("expected cinema sub-state cleared, got %+v", s)
	}
	if len(rec.routes) != 1 || !rec.replaces[0] || rec.routes[0] != (route.Route{TabKey: "cinemas"}) {
		t.Fatalf("expected one replace to /cinemas, got %+v %v", rec.routes, rec.replaces)
	}
	if rec.scrolls != 0 {
		t.Fatalf("expected no scroll, got %d", rec.scrolls)
	}
}

func TestSelectCity_OnOtherTabLeavesHistory(t *testing.T) {
	store, rec := newTestStore(t, "/movies/movie-3")
	s := store.Dispatch(SelectCity{CityKey: "danang"})
	if s.CityKey != "danang" || s.View != ViewShowtimes {
		t.Fatalf("unexpected state %+v", s)
	}
	if len(rec.routes) != 0 || rec.scrolls != 0 {
		t.Fatalf("expected no history or scroll, got %+v scrolls=%d", rec.routes, rec.scrolls)
	}

	before := store.Snapshot()
	if after := store.Dispatch(SelectCity{CityKey: "atlantis"}); after != before {
		t.Fatalf("expected unknown city to be ignored, got %+v", after)
	}
}

func TestSelectMovie_ResetsStaleDate(t *testing.T) {
	store, rec := newTestStore(t, "/movies")
	store.Dispatch(ChangeFilter{Dimension: DimDate, Value: "2025-05-20"})

	s := store.Dispatch(SelectMovie{MovieID: "movie-5"})
	if s.Showtime.Date != "2025-05-24" {
		t.Fatalf("expected first available date 2025-05-24, got %q", s.Showtime.Date)
	}
	if s.View != ViewShowtimes || s.MovieID != "movie-5" || s.ShowtimesCinemaID != "" {
		t.Fatalf("unexpected state %+v", s)
	}
	if len(rec.routes) != 1 || rec.replaces[0] || rec.routes[0].Detail != "movie-5" {
		t.Fatalf("expected a pushed movie route, got %+v", rec.routes)
	}
	if rec.scrolls != 1 {
		t.Fatalf("expected one scroll, got %d", rec.scrolls)
	}
}

func TestChangeFilter_StaleDateCorrected(t *testing.T) {
	store, _ := newTestStore(t, "/movies/movie-7")
	s := store.Dispatch(ChangeFilter{Dimension: DimDate, Value: "2025-05-20"})
	if s.Showtime.Date != "2025-05-23" {
		t.Fatalf("expected date corrected to 2025-05-23, got %q", s.Showtime.Date)
	}
	s = store.Dispatch(ChangeFilter{Dimension: DimGenre, Value: "Western"})
	if s.Listing.Genre != catalog.All {
		t.Fatalf("expected unknown genre to fall back to all, got %q", s.Listing.Genre)
	}
	s = store.Dispatch(ChangeFilter{Dimension: DimGenre, Value: "Drama"})
	if s.Listing.Genre != "Drama" {
		t.Fatalf("expected Drama, got %q", s.Listing.Genre)
	}
}

func TestViewShowtimesForCinema(t *testing.T) {
	store, rec := newTestStore(t, "/cinemas")
	store.Dispatch(ChangeFilter{Dimension: DimExperience, Value: "IMAX"})
	store.Dispatch(ChangeFilter{Dimension: DimDate, Value: "2025-05-21"})
	store.Dispatch(ShowQuickInfo{CinemaID: "cgv-vincom"})
	rec.routes = nil

	s := store.Dispatch(ViewShowtimesForCinema{CinemaID: "cgv-vincom"})
	if s.ActiveTab != "movies" || s.View != ViewShowtimes || s.MovieID != "dune-part-two" {
		t.Fatalf("expected showtimes view for the current movie, got %+v", s)
	}
	if s.ShowtimesCinemaID != "st-cgv-vincom" {
		t.Fatalf("expected showtime group restriction, got %q", s.ShowtimesCinemaID)
	}
	if s.QuickInfoID != "" {
		t.Fatal("expected quick info closed")
	}
	if s.Showtime.Date != "2025-05-20" || s.Showtime.Experience != catalog.All || s.Showtime.Language != catalog.All || s.Showtime.Format != catalog.All {
		t.Fatalf("expected showtime filters reset, got %+v", s.Showtime)
	}
	if len(rec.routes) != 1 || rec.routes[0] != (route.Route{TabKey: "movies", Detail: "dune-part-two"}) {
		t.Fatalf("unexpected history writes %+v", rec.routes)
	}

	p := Project(store.Dataset(), s)
	if len(p.Showtimes) != 1 || p.Showtimes[0].ID != "st-cgv-vincom" {
		t.Fatalf("expected only st-cgv-vincom showtimes, got %+v", p.Showtimes)
	}

	s = store.Dispatch(SelectTab{TabKey: "movies"})
	if s.View != ViewCatalog || s.ShowtimesCinemaID != "" {
		t.Fatalf("expected catalog with restriction cleared, got %+v", s)
	}
}

func TestNavigate_HistoryReplaySkipsEffects(t *testing.T) {
	store, rec := newTestStore(t, "/movies")
	s := store.Navigate(route.Route{TabKey: "cinemas", Detail: "lotte-tay-ho"}, NavOptions{SkipHistory: true, SkipScroll: true})
	if s.CinemaDetailID != "lotte-tay-ho" {
		t.Fatalf("expected cinema detail, got %+v", s)
	}
	if len(rec.routes) != 0 || rec.scrolls != 0 {
		t.Fatalf("expected no effects, got %+v scrolls=%d", rec.routes, rec.scrolls)
	}
}

func TestSelectTab_PlaceholderClearsDetailState(t *testing.T) {
	store, _ := newTestStore(t, "/cinemas/cgv-vincom")
	s := store.Dispatch(SelectTab{TabKey: "events"})
	if s.CinemaDetailID != "" || s.MapFocusID != "" || s.View != ViewCatalog {
		t.Fatalf("expected detail state cleared, got %+v", s)
	}
	if !Project(store.Dataset(), s).Placeholder {
		t.Fatal("expected placeholder projection")
	}
	before := store.Snapshot()
	if after := store.Dispatch(SelectTab{TabKey: "unknown"}); after != before {
		t.Fatal("expected unknown tab to be ignored")
	}
}

func TestCinemaDetail_ClosesAndResetsFilters(t *testing.T) {
	store, rec := newTestStore(t, "/cinemas")
	store.Dispatch(ShowQuickInfo{CinemaID: "cgv-vincom"})
	s := store.Dispatch(OpenCinemaDetail{CinemaID: "cgv-vincom"})
	if s.QuickInfoID != "" || s.CinemaDetailID != "cgv-vincom" {
		t.Fatalf("unexpected state %+v", s)
	}
	s = store.Dispatch(ChangeFilter{Dimension: DimCinemaLanguage, Value: "english"})
	if s.Cinema.Language != "english" {
		t.Fatalf("expected english, got %q", s.Cinema.Language)
	}
	s = store.Dispatch(ChangeFilter{Dimension: DimCinemaFormat, Value: "4dx"})
	if s.Cinema.Format != catalog.All {
		t.Fatalf("expected unknown format to fall back, got %q", s.Cinema.Format)
	}

	s = store.Dispatch(OpenCinemaDetail{CinemaID: "lotte-tay-ho"})
	if s.Cinema.Language != catalog.All || s.Cinema.Date != "2025-05-20" {
		t.Fatalf("expected filters reset for a new cinema, got %+v", s.Cinema)
	}

	s = store.Dispatch(CloseCinemaDetail{})
	if s.CinemaDetailID != "" || s.ActiveTab != "cinemas" {
		t.Fatalf("expected locations list, got %+v", s)
	}
	last := rec.routes[len(rec.routes)-1]
	if last != (route.Route{TabKey: "cinemas"}) {
		t.Fatalf("expected /cinemas route, got %+v", last)
	}
}

func TestProject_CinemaDetailGroupsSkipUnknownMovies(t *testing.T) {
	ds := dataset.Default()
	s := New(ds, route.Route{TabKey: "cinemas", Detail: "cgv-vincom"})
	p := Project(ds, s)
	if p.CinemaDetail == nil || p.CinemaShowtimes == nil {
		t.Fatal("expected cinema detail projection")
	}
	for _, group := range p.CinemaGroups {
		if group.Meta.ID == "ghost-movie" {
			t.Fatal("expected slots for unknown movies to be skipped")
		}
	}
	if len(p.CinemaGroups) != 2 {
		t.Fatalf("expected dune and movie-3 groups on the first date, got %d", len(p.CinemaGroups))
	}
}

func TestProject_MapFocusFallsBackToFirstCinema(t *testing.T) {
	ds := dataset.Default()
	s := New(ds, route.Route{TabKey: "cinemas"})
	s, _ = Reduce(ds, s, SelectCity{CityKey: "tphcm"})
	p := Project(ds, s)
	if p.FocusedCinema == nil || p.FocusedCinema.ID != "galaxy-nguyen-du" {
		t.Fatalf("expected focus on the first tphcm cinema, got %+v", p.FocusedCinema)
	}
	s, _ = Reduce(ds, s, FocusCinema{CinemaID: "cgv-landmark"})
	if p := Project(ds, s); p.FocusedCinema.ID != "cgv-landmark" {
		t.Fatalf("expected focus on cgv-landmark, got %q", p.FocusedCinema.ID)
	}
}

func TestProject_MissingDetailFallsBack(t *testing.T) {
	ds := dataset.Default()
	s, _ := Reduce(ds, New(ds, route.Route{TabKey: "movies"}), SelectMovie{MovieID: "movie-6"})
	p := Project(ds, s)
	if p.MovieDetailFound || p.MovieDetail.ID != "dune-part-two" {
		t.Fatalf("expected default detail fallback, got found=%v id=%q", p.MovieDetailFound, p.MovieDetail.ID)
	}
	if p.SelectedMovie == nil || p.SelectedMovie.ID != "movie-6" {
		t.Fatalf("expected movie-6 selected, got %+v", p.SelectedMovie)
	}
}

func TestStore_WithSynchronizer(t *testing.T) {
	ds := dataset.Default()
	history := route.NewMemoryHistory("/")
	sync := route.NewSynchronizer(history, TabKeys(ds), ds.DefaultTabKey())
	store := NewStore(ds, New(ds, route.Parse(history.Path(), TabKeys(ds), ds.DefaultTabKey())), WithNavigator(sync))
	sync.SyncInitial(store.Snapshot().Route())
	if history.Path() != "/movies" || history.Len() != 1 {
		t.Fatalf("expected initial replace to /movies, got %q (%d)", history.Path(), history.Len())
	}

	unlisten := sync.Listen(func(r route.Route) {
		store.Navigate(r, NavOptions{SkipHistory: true, SkipScroll: true})
	})
	defer unlisten()

	var seen []State
	cancel := store.Subscribe(func(s State) { seen = append(seen, s) })

	store.Dispatch(SelectMovie{MovieID: "movie-3"})
	store.Dispatch(SelectTab{TabKey: "cinemas"})
	store.Dispatch(OpenCinemaDetail{CinemaID: "cgv-vincom"})
	if history.Path() != "/cinemas/cgv-vincom" || history.Len() != 4 {
		t.Fatalf("unexpected history %q (%d)", history.Path(), history.Len())
	}

	history.Back()
	history.Back()
	s := store.Snapshot()
	if s.ActiveTab != "movies" || s.View != ViewShowtimes || s.MovieID != "movie-3" {
		t.Fatalf("expected movie-3 showtimes after two backs, got %+v", s)
	}
	if history.Len() != 4 {
		t.Fatalf("expected replays to leave history alone, got %d", history.Len())
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 snapshots, got %d", len(seen))
	}

	cancel()
	store.Dispatch(SelectTab{TabKey: "events"})
	if len(seen) != 5 {
		t.Fatal("expected no snapshots after cancel")
	}
}
