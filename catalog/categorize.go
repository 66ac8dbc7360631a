// Package catalog derives the visible subsets of the static dataset from the
// current filter selections. Every function here is pure: inputs are never
// mutated and identical inputs give identical outputs.
package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"showtime-finder-cli/model"
)

// All is the synthetic option value meaning "no constraint".
const All = "all"

type Category string

const (
	NowShowing Category = "nowShowing"
	ComingSoon Category = "comingSoon"
	Exclusive  Category = "exclusive"
)

// Movie is a catalog entry: the source movie plus its resolved genre and
// positional category.
type Movie struct {
	model.Movie
	Genre    string   `json:"genre"`
	Category Category `json:"category"`
}

// CategoryAt assigns categories by list position: the first four movies are
// now showing, the next two coming soon, the rest exclusive. Reordering the
// source list changes the result.
func CategoryAt(index int) Category {
	switch {
	case index < 4:
		return NowShowing
	case index < 6:
		return ComingSoon
	default:
		return Exclusive
	}
}

// Categorize builds catalog entries in source order. genreOf may be nil, in
// which case every movie gets the "Feature" genre.
func Categorize(movies []model.Movie, genreOf func(movieID string) string) []Movie {
	out := make([]Movie, 0, len(movies))
	for i, movie := range movies {
		genre := "Feature"
		if genreOf != nil {
			if g := genreOf(movie.ID); g != "" {
				genre = g
			}
		}
		out = append(out, Movie{Movie: movie, Genre: genre, Category: CategoryAt(i)})
	}
	return out
}

// TitleCase upper-cases the first letter of every word.
func TitleCase(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	prevWord := false
	for _, r := range input {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !prevWord {
			r = unicode.ToUpper(r)
		}
		prevWord = isWord
		b.WriteRune(r)
	}
	return b.String()
}

// FormatAuthors renders a credit line such as "Denis and 1 more".
func FormatAuthors(authors []string) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	first := authors[0]
	if fields := strings.Fields(first); len(fields) > 0 {
		first = fields[0]
	}
	if len(authors) == 1 {
		return first
	}
	return first + " and " + strconv.Itoa(len(authors)-1) + " more"
}
