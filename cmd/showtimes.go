package cmd

import (
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/model"
	"showtime-finder-cli/route"
	"showtime-finder-cli/viewstate"
)

type showtimesOptions struct {
	movie      string
	date       string
	language   string
	format     string
	experience string
	cinema     string
	noPrompt   bool
}

var showtimesFlags showtimesOptions

var showtimesCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "Find showtimes for a movie",
	Long:  `Find the showtimes of a movie on a date, optionally at a single cinema. Missing movie and date are prompted for.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		ds := dataset.Default()

		movieID := showtimesFlags.movie
		if movieID == "" {
			if showtimesFlags.noPrompt {
				movieID = ds.DefaultMovieID()
			} else if movieID, err = promptSelectMovie(ds); err != nil {
				return err
			}
		}
		if _, ok := ds.Movie(movieID); !ok {
			return fmt.Errorf("unknown movie %q", movieID)
		}

		date := showtimesFlags.date
		if date == "" && !showtimesFlags.noPrompt {
			if date, err = promptSelectDate(ds, movieID); err != nil {
				return err
			}
		}

		for _, check := range []struct {
			name    string
			value   string
			options []model.SelectOption
		}{
			{"language", showtimesFlags.language, ds.LanguageFilters},
			{"format", showtimesFlags.format, ds.FormatFilters},
			{"experience", showtimesFlags.experience, ds.ExperienceFilters},
		} {
			values := optionValues(check.options)
			if check.value != "" && !slices.Contains(values, check.value) {
				return fmt.Errorf("unknown %s %q (want one of %s)", check.name, check.value, strings.Join(values, ", "))
			}
		}

		state, _ := viewstate.Open(ds, route.Build(viewstate.TabMovies, ds.DefaultTabKey(), movieID), cfg.DefaultCity)
		if cinemaID := showtimesFlags.cinema; cinemaID != "" {
			if _, ok := ds.Cinema(cinemaID); !ok {
				return fmt.Errorf("unknown cinema %q", cinemaID)
			}
			state, _ = viewstate.Reduce(ds, state, viewstate.ViewShowtimesForCinema{CinemaID: cinemaID})
		}
		for _, f := range []struct {
			dim   viewstate.Dimension
			value string
		}{
			{viewstate.DimDate, date},
			{viewstate.DimShowtimeLanguage, showtimesFlags.language},
			{viewstate.DimShowtimeFormat, showtimesFlags.format},
			{viewstate.DimExperience, showtimesFlags.experience},
		} {
			if f.value != "" {
				state, _ = viewstate.Reduce(ds, state, viewstate.ChangeFilter{Dimension: f.dim, Value: f.value})
			}
		}
		return renderShowtimes(cmd.OutOrStdout(), ds, state)
	},
}

func init() {
	showtimesCmd.Flags().StringVar(&showtimesFlags.movie, "movie", "", "movie id")
	showtimesCmd.Flags().StringVar(&showtimesFlags.date, "date", "", "date as YYYY-MM-DD")
	showtimesCmd.Flags().StringVar(&showtimesFlags.language, "language", "", "slot language, e.g. english")
	showtimesCmd.Flags().StringVar(&showtimesFlags.format, "format", "", "slot format, e.g. imax")
	showtimesCmd.Flags().StringVar(&showtimesFlags.experience, "experience", "", "experience, e.g. Gold Class")
	showtimesCmd.Flags().StringVar(&showtimesFlags.cinema, "cinema", "", "only this cinema id")
	showtimesCmd.Flags().BoolVar(&showtimesFlags.noPrompt, "no-prompt", false, "use defaults instead of prompting")
}

func renderShowtimes(w io.Writer, ds *dataset.Dataset, state viewstate.State) error {
	p := viewstate.Project(ds, state)
	title := state.MovieID
	if p.SelectedMovie != nil {
		title = p.SelectedMovie.Title
	}
	if _, err := fmt.Fprintf(w, "%s • %s\n", title, state.Showtime.Date); err != nil {
		return err
	}
	if len(p.Showtimes) == 0 {
		_, err := fmt.Fprintln(w, "No showtimes match these filters.")
		return err
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"Cinema", "Time", "Experience", "Format", "Language", "Price", "Status"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true, WidthMax: 24},
		{Number: 3, AutoMerge: true},
	})
	for _, group := range p.Showtimes {
		var items []table.Row
		for _, slot := range group.Slots {
			items = append(items, table.Row{
				group.Name,
				slot.Time,
				slot.Experience,
				strings.ToUpper(slot.Format),
				catalog.TitleCase(slot.Language),
				slot.Price,
				string(slot.Status()),
			})
		}
		t.AppendRows(items, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	t.Render()
	return nil
}

func promptSelectMovie(ds *dataset.Dataset) (string, error) {
	movieIDByTitle := make(map[string]string)
	for _, movie := range ds.Movies {
		movieIDByTitle[movie.Title] = movie.ID
	}
	titles := maps.Keys(movieIDByTitle)
	sort.Strings(titles)

	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(titles[index]), strings.ToLower(input))
	}

	selectMovie := promptui.Select{
		Label:    "Select Movie",
		Items:    titles,
		Size:     10,
		Searcher: searcher,
	}
	_, title, err := selectMovie.Run()
	if err != nil {
		return "", fmt.Errorf("select movie: %w", err)
	}
	return movieIDByTitle[title], nil
}

// promptSelectDate offers the dates with showtimes for the movie. It returns
// an empty date, leaving the default, when there are none.
func promptSelectDate(ds *dataset.Dataset, movieID string) (string, error) {
	dates := catalog.DateOptionsForMovie(ds.DateOptions, ds.CinemaShowtimes, movieID)
	if len(dates) == 0 {
		return "", nil
	}
	labels := make([]string, 0, len(dates))
	for _, date := range dates {
		labels = append(labels, fmt.Sprintf("%s %s (%s)", date.Label, date.Meta, date.Value))
	}

	selectDate := promptui.Select{
		Label: "Select Date",
		Items: labels,
		Size:  10,
	}
	index, _, err := selectDate.Run()
	if err != nil {
		return "", fmt.Errorf("select date: %w", err)
	}
	return dates[index].Value, nil
}
