package model

type Movie struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Subtitle    string   `json:"subtitle,omitempty" yaml:"subtitle"`
	Image       string   `json:"image,omitempty" yaml:"image"`
	Rating      float64  `json:"rating,omitempty" yaml:"rating"`
	Votes       int      `json:"votes,omitempty" yaml:"votes"`
	Certificate string   `json:"certificate,omitempty" yaml:"certificate"`
	Authors     []string `json:"authors,omitempty" yaml:"authors"`
	Languages   []string `json:"languages" yaml:"languages"`
	Formats     []string `json:"formats" yaml:"formats"`
	Runtime     string   `json:"runtime,omitempty" yaml:"runtime"`
	ReleaseDate string   `json:"releaseDate,omitempty" yaml:"release_date"`
	Tags        []string `json:"tags,omitempty" yaml:"tags"`
	Trending    bool     `json:"trending,omitempty" yaml:"trending"`
	DetailID    string   `json:"detailId,omitempty" yaml:"detail_id"`
}

type CastMember struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Role   string `json:"role" yaml:"role"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar"`
}

type MovieReview struct {
	ID        string  `json:"id" yaml:"id"`
	Source    string  `json:"source" yaml:"source"`
	Rating    float64 `json:"rating" yaml:"rating"`
	MaxRating float64 `json:"maxRating,omitempty" yaml:"max_rating"`
	Author    string  `json:"author,omitempty" yaml:"author"`
	Logo      string  `json:"logo,omitempty" yaml:"logo"`
	Snippet   string  `json:"snippet" yaml:"snippet"`
	URL       string  `json:"url,omitempty" yaml:"url"`
}

type MovieVideo struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	Duration  string `json:"duration" yaml:"duration"`
	Type      string `json:"type,omitempty" yaml:"type"`
	EmbedURL  string `json:"embedUrl,omitempty" yaml:"embed_url"`
}

type MoviePoster struct {
	ID    string `json:"id" yaml:"id"`
	Image string `json:"image" yaml:"image"`
	Title string `json:"title,omitempty" yaml:"title"`
}

type MovieMetric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type MovieCreators struct {
	Director string   `json:"director" yaml:"director"`
	Writers  []string `json:"writers" yaml:"writers"`
	Music    string   `json:"music,omitempty" yaml:"music"`
}

// MovieDetail is the narrative record behind a catalog Movie. It repeats the
// Movie fields so a detail can stand alone in the details overlay.
type MovieDetail struct {
	Movie       `yaml:",inline"`
	Tagline     string        `json:"tagline" yaml:"tagline"`
	Genres      []string      `json:"genres" yaml:"genres"`
	Poster      string        `json:"poster" yaml:"poster"`
	Backdrop    string        `json:"backdrop" yaml:"backdrop"`
	Synopsis    string        `json:"synopsis" yaml:"synopsis"`
	Experiences []string      `json:"experiences" yaml:"experiences"`
	Highlights  []string      `json:"highlights" yaml:"highlights"`
	Metrics     []MovieMetric `json:"metrics" yaml:"metrics"`
	Creators    MovieCreators `json:"creators" yaml:"creators"`
	Cast        []CastMember  `json:"cast" yaml:"cast"`
	Reviews     []MovieReview `json:"reviews" yaml:"reviews"`
	Videos      []MovieVideo  `json:"videos" yaml:"videos"`
	Posters     []MoviePoster `json:"posters" yaml:"posters"`
}

type HeroSlide struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Stats       []string `json:"stats" yaml:"stats"`
	Image       string   `json:"image" yaml:"image"`
}

type Offer struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Badge       string   `json:"badge,omitempty" yaml:"badge"`
	Terms       []string `json:"terms" yaml:"terms"`
}
