package catalog

import (
	"strings"

	"showtime-finder-cli/model"
)

// BuildOptionSet collects the distinct values produced by extract across
// movies, in first-seen order, behind a leading "all" option. label renders
// the display text for a value; nil keeps the value as is.
func BuildOptionSet(movies []Movie, allLabel string, extract func(Movie) []string, label func(string) string) []model.SelectOption {
	out := []model.SelectOption{{Value: All, Label: allLabel}}
	seen := map[string]bool{All: true}
	for _, movie := range movies {
		for _, value := range extract(movie) {
			if seen[value] {
				continue
			}
			seen[value] = true
			text := value
			if label != nil {
				text = label(value)
			}
			out = append(out, model.SelectOption{Value: value, Label: text})
		}
	}
	return out
}

func GenreOptions(movies []Movie) []model.SelectOption {
	return BuildOptionSet(movies, "All genres", func(m Movie) []string { return []string{m.Genre} }, nil)
}

func LanguageOptions(movies []Movie) []model.SelectOption {
	return BuildOptionSet(movies, "All languages", func(m Movie) []string { return m.Languages }, TitleCase)
}

func FormatOptions(movies []Movie) []model.SelectOption {
	return BuildOptionSet(movies, "All formats", func(m Movie) []string { return m.Formats }, strings.ToUpper)
}

// HasOption reports whether value is one of the options.
func HasOption(options []model.SelectOption, value string) bool {
	for _, option := range options {
		if option.Value == value {
			return true
		}
	}
	return false
}

// FirstOption returns the first option's value, or fallback for an empty set.
func FirstOption(options []model.SelectOption, fallback string) string {
	if len(options) == 0 {
		return fallback
	}
	return options[0].Value
}

// OptionLabel returns the label for value, or value itself when unknown.
func OptionLabel(options []model.SelectOption, value string) string {
	for _, option := range options {
		if option.Value == value {
			return option.Label
		}
	}
	return value
}
