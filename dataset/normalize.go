package dataset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"showtime-finder-cli/model"
)

var (
	slugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
	slugEdgePattern = regexp.MustCompile(`(^-|-$)`)
	dmyPattern      = regexp.MustCompile(`(\d{2})[./-](\d{2})[./-](\d{4})`)
	pricePattern    = regexp.MustCompile(`([A-Za-z]{3})\s*([\d.,]+)`)
)

// Normalize projects the dataset into relational records. Each record kind
// is deduplicated by its composite key; source order is preserved.
func (ds *Dataset) Normalize() model.NormalizedData {
	var out model.NormalizedData
	details := ds.MovieDetails()

	for _, movie := range ds.Movies {
		release := movie.ReleaseDate
		if iso := extractISODate(movie.ReleaseDate); iso != "" {
			release = iso
		}
		out.Movies = append(out.Movies, model.MovieRecord{
			MovieID:      movie.ID,
			Title:        movie.Title,
			Subtitle:     movie.Subtitle,
			RatingValue:  movie.Rating,
			TotalVotes:   movie.Votes,
			Certificate:  movie.Certificate,
			Duration:     movie.Runtime,
			Release:      release,
			TrendingFlag: movie.Trending,
		})
	}

	authors := newDeduper()
	languages := newDeduper()
	formats := newDeduper()
	tags := newDeduper()
	register := func(movie model.Movie) {
		for _, author := range movie.Authors {
			if authors.first(movie.ID, author) {
				out.MovieAuthors = append(out.MovieAuthors, model.MovieAuthorRecord{MovieID: movie.ID, AuthorName: author})
			}
		}
		for _, language := range movie.Languages {
			if languages.first(movie.ID, language) {
				out.MovieLanguages = append(out.MovieLanguages, model.MovieLanguageRecord{MovieID: movie.ID, LanguageCode: language})
			}
		}
		for _, format := range movie.Formats {
			if formats.first(movie.ID, format) {
				out.MovieFormats = append(out.MovieFormats, model.MovieFormatRecord{MovieID: movie.ID, FormatCode: format})
			}
		}
		for _, tag := range movie.Tags {
			if tags.first(movie.ID, tag) {
				out.MovieTags = append(out.MovieTags, model.MovieTagRecord{MovieID: movie.ID, Tag: tag})
			}
		}
	}
	for _, movie := range ds.Movies {
		register(movie)
	}
	for _, detail := range details {
		register(detail.Movie)
	}

	genres := newDeduper()
	highlights := newDeduper()
	metrics := newDeduper()
	creators := newDeduper()
	cast := newDeduper()
	pictures := newDeduper()
	trailers := newDeduper()
	reviews := newDeduper()
	for _, detail := range details {
		id := detail.ID
		for _, genre := range detail.Genres {
			if genres.first(id, genre) {
				out.MovieGenres = append(out.MovieGenres, model.MovieGenreRecord{MovieID: id, GenreName: genre})
			}
		}
		for _, highlight := range detail.Highlights {
			if highlights.first(id, highlight) {
				out.MovieHighlights = append(out.MovieHighlights, model.MovieHighlightRecord{MovieID: id, HighlightText: highlight})
			}
		}
		for _, metric := range detail.Metrics {
			if metrics.first(id, metric.Label) {
				out.MovieMetrics = append(out.MovieMetrics, model.MovieMetricRecord{MovieID: id, MetricType: slug(metric.Label), Value: metric.Value})
			}
		}
		addCreator := func(role, name string) {
			if name != "" && creators.first(id, role, name) {
				out.MovieCreators = append(out.MovieCreators, model.MovieCreatorRecord{MovieID: id, RoleCode: role, PersonName: name})
			}
		}
		addCreator("director", detail.Creators.Director)
		for _, writer := range detail.Creators.Writers {
			addCreator("writer", writer)
		}
		addCreator("music", detail.Creators.Music)

		for _, member := range detail.Cast {
			if cast.first(id, member.ID) {
				out.MovieCast = append(out.MovieCast, model.MovieCastRecord{
					MovieID:   id,
					CastID:    member.ID,
					ActorName: member.Name,
					RoleName:  member.Role,
					AvatarURL: member.Avatar,
				})
			}
		}

		if detail.Poster != "" && pictures.first(id, "poster") {
			out.MoviePictures = append(out.MoviePictures, model.MoviePictureRecord{PictureID: id + "-poster", MovieID: id, ImageURL: detail.Poster, Label: "poster"})
		}
		if detail.Backdrop != "" && pictures.first(id, "backdrop") {
			out.MoviePictures = append(out.MoviePictures, model.MoviePictureRecord{PictureID: id + "-backdrop", MovieID: id, ImageURL: detail.Backdrop, Label: "backdrop"})
		}
		for _, poster := range detail.Posters {
			if pictures.first(id, poster.ID) {
				out.MoviePictures = append(out.MoviePictures, model.MoviePictureRecord{PictureID: poster.ID, MovieID: id, ImageURL: poster.Image, Label: poster.Title})
			}
		}

		for _, video := range detail.Videos {
			if video.EmbedURL == "" {
				continue
			}
			if trailers.first(id, video.ID) {
				out.MovieTrailers = append(out.MovieTrailers, model.MovieTrailerRecord{
					TrailerID:       video.ID,
					MovieID:         id,
					EmbedURL:        video.EmbedURL,
					Title:           video.Title,
					ThumbnailURL:    video.Thumbnail,
					DurationSeconds: parseDurationSeconds(video.Duration),
				})
			}
		}

		for _, review := range detail.Reviews {
			if reviews.first(id, review.ID) {
				out.MovieReviews = append(out.MovieReviews, model.MovieReviewRecord{
					ReviewID:    review.ID,
					MovieID:     id,
					SourceName:  review.Source,
					RatingValue: review.Rating,
					RatingMax:   review.MaxRating,
					AuthorName:  review.Author,
					LogoURL:     review.Logo,
					SnippetText: review.Snippet,
					URLLink:     review.URL,
				})
			}
		}
	}

	for i, slide := range ds.HeroSlides {
		out.Collections = append(out.Collections, model.CollectionRecord{
			CollectionID: fmt.Sprintf("collection-%d", i+1),
			Title:        slide.Title,
			Description:  slide.Description,
			ImageURL:     slide.Image,
			CTALabel:     "Explore",
		})
	}
	for i, offer := range ds.Offers {
		target := "collection-1"
		if len(out.Collections) > 0 {
			target = out.Collections[i%len(out.Collections)].CollectionID
		}
		out.Offers = append(out.Offers, model.OfferRecord{
			OfferID:     offer.ID,
			TargetType:  "collection",
			TargetID:    target,
			Title:       offer.Title,
			Description: offer.Description,
			BadgeLabel:  offer.Badge,
			TermsText:   strings.Join(offer.Terms, "\n"),
			IsActive:    true,
		})
	}

	for _, cinema := range ds.CinemaLocations {
		out.Cinemas = append(out.Cinemas, model.CinemaRecord{
			CinemaID:    cinema.ID,
			Name:        cinema.Name,
			Description: cinema.VenueDetails,
			AddressLine: cinema.Address,
			Latitude:    cinema.Latitude,
			Longitude:   cinema.Longitude,
			IsActive:    true,
			ImageURL:    cinema.ImageURL,
			CityName:    cinema.CityKey,
		})
		for _, feature := range []struct {
			kind   string
			labels []string
		}{
			{"amenity", cinema.Amenities},
			{"service", cinema.Services},
			{"experience", cinema.Experiences},
		} {
			for _, label := range feature.labels {
				out.CinemaFeatures = append(out.CinemaFeatures, model.CinemaFeatureRecord{CinemaID: cinema.ID, FeatureType: feature.kind, Label: label})
			}
		}
	}

	showtimes := newDeduper()
	for _, group := range ds.CinemaShowtimes {
		screenID := group.ID + "-screen-1"
		screen := model.CinemaScreenRecord{
			ScreenID: screenID,
			CinemaID: group.ID,
			Name:     group.Name + " Screen 1",
			IsActive: true,
		}
		if len(group.Experiences) > 0 {
			screen.ScreenType = group.Experiences[0]
		}
		out.CinemaScreens = append(out.CinemaScreens, screen)

		for _, slot := range group.Slots {
			showtimeID := group.ID + "-" + slot.MovieID
			if showtimes.first(showtimeID) {
				out.Showtimes = append(out.Showtimes, model.ShowtimeRecord{
					ShowtimeID:         showtimeID,
					MovieID:            slot.MovieID,
					ScreenID:           screenID,
					Name:               group.Name,
					ProviderName:       group.Provider,
					CancellationPolicy: group.CancellationPolicy,
				})
			}
			amount, currency := parsePrice(slot.Price)
			out.ShowtimeSlots = append(out.ShowtimeSlots, model.ShowtimeSlotRecord{
				SlotID:         slot.ID,
				ShowtimeID:     showtimeID,
				ScreenID:       screenID,
				SlotDate:       slot.Date,
				SlotTime:       slot.Time,
				ExperienceText: slot.Experience,
				PriceAmount:    amount,
				PriceCurrency:  currency,
				IsFillingFast:  slot.IsFillingFast,
				IsSoldOut:      slot.IsSoldOut,
				IsPrime:        slot.IsPrime,
			})
		}
	}
	return out
}

type deduper map[string]struct{}

func newDeduper() deduper {
	return deduper{}
}

// first reports whether the composite key is seen for the first time.
func (d deduper) first(parts ...string) bool {
	key := strings.Join(parts, ":")
	if _, ok := d[key]; ok {
		return false
	}
	d[key] = struct{}{}
	return true
}

func slug(value string) string {
	out := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "-")
	return slugEdgePattern.ReplaceAllString(out, "")
}

// extractISODate turns dd.mm.yyyy (or / and - separators) into yyyy-mm-dd.
// Input without that pattern is returned unchanged; empty input yields "".
func extractISODate(input string) string {
	if input == "" {
		return ""
	}
	match := dmyPattern.FindStringSubmatch(input)
	if match == nil {
		return input
	}
	return match[3] + "-" + match[2] + "-" + match[1]
}

// parsePrice reads labels such as "VND 120,000".
func parsePrice(price string) (*float64, string) {
	match := pricePattern.FindStringSubmatch(price)
	if match == nil {
		return nil, ""
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[2], ",", ""), 64)
	if err != nil {
		return nil, ""
	}
	return &amount, strings.ToUpper(match[1])
}

// parseDurationSeconds accepts "ss", "mm:ss" and "hh:mm:ss".
func parseDurationSeconds(duration string) *int {
	if duration == "" {
		return nil
	}
	parts := strings.Split(duration, ":")
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil
		}
		values = append(values, n)
	}
	var seconds int
	switch len(values) {
	case 1:
		seconds = values[0]
	case 2:
		seconds = values[0]*60 + values[1]
	case 3:
		seconds = values[0]*3600 + values[1]*60 + values[2]
	default:
		return nil
	}
	return &seconds
}
