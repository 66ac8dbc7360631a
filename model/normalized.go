package model

// The *Record types mirror a relational schema with snake_case column names
// so the sample data can move to a database without another mapping layer.

type MovieRecord struct {
	MovieID      string  `json:"movie_id"`
	Title        string  `json:"title"`
	Subtitle     string  `json:"subtitle,omitempty"`
	RatingValue  float64 `json:"rating_value,omitempty"`
	TotalVotes   int     `json:"total_votes,omitempty"`
	Certificate  string  `json:"certificate,omitempty"`
	Duration     string  `json:"duration,omitempty"`
	Release      string  `json:"release,omitempty"`
	TrendingFlag bool    `json:"trending_flag"`
}

type MoviePictureRecord struct {
	PictureID string `json:"picture_id"`
	MovieID   string `json:"movie_id"`
	ImageURL  string `json:"image_url"`
	Label     string `json:"label,omitempty"`
}

type MovieTrailerRecord struct {
	TrailerID       string `json:"trailer_id"`
	MovieID         string `json:"movie_id"`
	EmbedURL        string `json:"embed_url"`
	Title           string `json:"title,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
	DurationSeconds *int   `json:"duration_seconds,omitempty"`
}

type MovieReviewRecord struct {
	ReviewID    string  `json:"review_id"`
	MovieID     string  `json:"movie_id"`
	SourceName  string  `json:"source_name"`
	RatingValue float64 `json:"rating_value,omitempty"`
	RatingMax   float64 `json:"rating_max,omitempty"`
	AuthorName  string  `json:"author_name,omitempty"`
	LogoURL     string  `json:"logo_url,omitempty"`
	SnippetText string  `json:"snippet_text"`
	URLLink     string  `json:"url_link,omitempty"`
}

type MovieAuthorRecord struct {
	MovieID    string `json:"movie_id"`
	AuthorName string `json:"author_name"`
}

type MovieLanguageRecord struct {
	MovieID      string `json:"movie_id"`
	LanguageCode string `json:"language_code"`
}

type MovieFormatRecord struct {
	MovieID    string `json:"movie_id"`
	FormatCode string `json:"format_code"`
}

type MovieTagRecord struct {
	MovieID string `json:"movie_id"`
	Tag     string `json:"tag"`
}

type MovieGenreRecord struct {
	MovieID   string `json:"movie_id"`
	GenreName string `json:"genre_name"`
}

type MovieHighlightRecord struct {
	MovieID       string `json:"movie_id"`
	HighlightText string `json:"highlight_text"`
}

type MovieMetricRecord struct {
	MovieID    string `json:"movie_id"`
	MetricType string `json:"metric_type"`
	Value      string `json:"value"`
}

type MovieCreatorRecord struct {
	MovieID    string `json:"movie_id"`
	RoleCode   string `json:"role_code"`
	PersonName string `json:"person_name"`
}

type MovieCastRecord struct {
	MovieID   string `json:"movie_id"`
	CastID    string `json:"cast_id"`
	ActorName string `json:"actor_name"`
	RoleName  string `json:"role_name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CollectionRecord struct {
	CollectionID string `json:"collection_id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	CTALabel     string `json:"cta_label,omitempty"`
}

type OfferRecord struct {
	OfferID     string `json:"offer_id"`
	TargetType  string `json:"target_type"`
	TargetID    string `json:"target_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	BadgeLabel  string `json:"badge_label,omitempty"`
	TermsText   string `json:"terms_text,omitempty"`
	IsActive    bool   `json:"is_active"`
}

type CinemaRecord struct {
	CinemaID    string  `json:"cinema_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	AddressLine string  `json:"address_line,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsActive    bool    `json:"is_active"`
	ImageURL    string  `json:"image_url,omitempty"`
	CityName    string  `json:"city_name,omitempty"`
}

type CinemaFeatureRecord struct {
	CinemaID    string `json:"cinema_id"`
	FeatureType string `json:"feature_type"`
	Label       string `json:"label"`
}

type CinemaScreenRecord struct {
	ScreenID   string `json:"screen_id"`
	CinemaID   string `json:"cinema_id"`
	Name       string `json:"name"`
	ScreenType string `json:"screen_type,omitempty"`
	IsActive   bool   `json:"is_active"`
}

type ShowtimeRecord struct {
	ShowtimeID         string `json:"showtime_id"`
	MovieID            string `json:"movie_id"`
	ScreenID           string `json:"screen_id"`
	Name               string `json:"name"`
	ProviderName       string `json:"provider_name"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`
}

type ShowtimeSlotRecord struct {
	SlotID         string   `json:"slot_id"`
	ShowtimeID     string   `json:"showtime_id"`
	ScreenID       string   `json:"screen_id"`
	SlotDate       string   `json:"slot_date"`
	SlotTime       string   `json:"slot_time"`
	ExperienceText string   `json:"experience_text,omitempty"`
	PriceAmount    *float64 `json:"price_amount,omitempty"`
	PriceCurrency  string   `json:"price_currency,omitempty"`
	IsFillingFast  bool     `json:"is_filling_fast"`
	IsSoldOut      bool     `json:"is_sold_out"`
	IsPrime        bool     `json:"is_prime"`
}

type NormalizedData struct {
	Movies          []MovieRecord          `json:"movies"`
	MoviePictures   []MoviePictureRecord   `json:"moviePictures"`
	MovieTrailers   []MovieTrailerRecord   `json:"movieTrailers"`
	MovieReviews    []MovieReviewRecord    `json:"movieReviews"`
	MovieAuthors    []MovieAuthorRecord    `json:"movieAuthors"`
	MovieLanguages  []MovieLanguageRecord  `json:"movieLanguages"`
	MovieFormats    []MovieFormatRecord    `json:"movieFormats"`
	MovieTags       []MovieTagRecord       `json:"movieTags"`
	MovieGenres     []MovieGenreRecord     `json:"movieGenres"`
	MovieHighlights []MovieHighlightRecord `json:"movieHighlights"`
	MovieMetrics    []MovieMetricRecord    `json:"movieMetrics"`
	MovieCreators   []MovieCreatorRecord   `json:"movieCreators"`
	MovieCast       []MovieCastRecord      `json:"movieCast"`
	Collections     []CollectionRecord     `json:"collections"`
	Offers          []OfferRecord          `json:"offers"`
	Cinemas         []CinemaRecord         `json:"cinemas"`
	CinemaFeatures  []CinemaFeatureRecord  `json:"cinemaFeatures"`
	CinemaScreens   []CinemaScreenRecord   `json:"cinemaScreens"`
	Showtimes       []ShowtimeRecord       `json:"showtimes"`
	ShowtimeSlots   []ShowtimeSlotRecord   `json:"showtimeSlots"`
}
