package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"showtime-finder-cli/catalog"
	"showtime-finder-cli/dataset"
	"showtime-finder-cli/model"
)

var rowConfigAutoMerge = table.RowConfig{AutoMerge: true}

var catalogFlags struct {
	category string
	genre    string
	language string
	format   string
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List movies by category",
	Long:  `List the movie catalog grouped by category, narrowed by genre, language and format.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderCatalog(cmd.OutOrStdout(), dataset.Default(), catalogFlags.category, catalog.ListingFilters{
			Genre:    orAll(catalogFlags.genre),
			Language: orAll(catalogFlags.language),
			Format:   orAll(catalogFlags.format),
		})
	},
}

func init() {
	catalogCmd.Flags().StringVar(&catalogFlags.category, "category", "", "nowShowing, comingSoon or exclusive (default all)")
	catalogCmd.Flags().StringVar(&catalogFlags.genre, "genre", "", "genre name")
	catalogCmd.Flags().StringVar(&catalogFlags.language, "language", "", "language code, e.g. english")
	catalogCmd.Flags().StringVar(&catalogFlags.format, "format", "", "format code, e.g. imax")
}

func renderCatalog(w io.Writer, ds *dataset.Dataset, category string, filters catalog.ListingFilters) error {
	categories := ds.Categories
	if category != "" {
		categories = nil
		for _, option := range ds.Categories {
			if option.Value == category {
				categories = append(categories, option)
			}
		}
		if len(categories) == 0 {
			return fmt.Errorf("unknown category %q", category)
		}
	}

	movies := catalog.Categorize(ds.Movies, ds.Genre)
	t := newTable(w)
	t.AppendHeader(table.Row{"Category", "Movie", "Genre", "Languages", "Formats", "Rating"}, rowConfigAutoMerge)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, WidthMax: 30},
	})

	found := 0
	for _, option := range categories {
		filters.Category = catalog.Category(option.Value)
		var items []table.Row
		for _, movie := range catalog.FilterCatalog(movies, filters) {
			items = append(items, table.Row{
				option.Label,
				movie.Title,
				movie.Genre,
				labelList(movie.Languages, catalog.TitleCase),
				labelList(movie.Formats, strings.ToUpper),
				fmt.Sprintf("%.1f", movie.Rating),
			})
		}
		if len(items) == 0 {
			continue
		}
		found += len(items)
		t.AppendRows(items, rowConfigAutoMerge)
		t.AppendSeparator()
	}
	if found == 0 {
		_, err := fmt.Fprintln(w, "No movies match these filters.")
		return err
	}
	t.Render()
	return nil
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.Style().Options.SeparateRows = true
	return t
}

func labelList(values []string, label func(string) string) string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		out = append(out, label(value))
	}
	return strings.Join(out, ", ")
}

func orAll(value string) string {
	if strings.TrimSpace(value) == "" {
		return catalog.All
	}
	return value
}

func optionValues(options []model.SelectOption) []string {
	values := make([]string, 0, len(options))
	for _, option := range options {
		values = append(values, option.Value)
	}
	return values
}
