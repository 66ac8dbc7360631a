package model

// ShowtimeSlot is one bookable screening. The three status flags are
// independent in the data; Status resolves them by display priority.
type ShowtimeSlot struct {
	ID            string `json:"id" yaml:"id"`
	MovieID       string `json:"movieId" yaml:"movie_id"`
	Date          string `json:"date" yaml:"date"`
	Time          string `json:"time" yaml:"time"`
	Experience    string `json:"experience" yaml:"experience"`
	Format        string `json:"format" yaml:"format"`
	Language      string `json:"language" yaml:"language"`
	Price         string `json:"price" yaml:"price"`
	IsFillingFast bool   `json:"isFillingFast,omitempty" yaml:"is_filling_fast"`
	IsSoldOut     bool   `json:"isSoldOut,omitempty" yaml:"is_sold_out"`
	IsPrime       bool   `json:"isPrime,omitempty" yaml:"is_prime"`
}

type SlotStatus string

const (
	SlotSoldOut     SlotStatus = "Sold out"
	SlotFillingFast SlotStatus = "Filling fast"
	SlotPrime       SlotStatus = "Prime"
	SlotAvailable   SlotStatus = "Available"
)

func (s ShowtimeSlot) Status() SlotStatus {
	switch {
	case s.IsSoldOut:
		return SlotSoldOut
	case s.IsFillingFast:
		return SlotFillingFast
	case s.IsPrime:
		return SlotPrime
	default:
		return SlotAvailable
	}
}

type CinemaShowtime struct {
	ID                 string         `json:"id" yaml:"id"`
	Name               string         `json:"name" yaml:"name"`
	Provider           string         `json:"provider" yaml:"provider"`
	Address            string         `json:"address" yaml:"address"`
	Distance           string         `json:"distance" yaml:"distance"`
	CancellationPolicy string         `json:"cancellationPolicy,omitempty" yaml:"cancellation_policy"`
	PriceFrom          string         `json:"priceFrom" yaml:"price_from"`
	Amenities          []string       `json:"amenities" yaml:"amenities"`
	Services           []string       `json:"services" yaml:"services"`
	Experiences        []string       `json:"experiences" yaml:"experiences"`
	Slots              []ShowtimeSlot `json:"slots" yaml:"slots"`
}

type CinemaLocation struct {
	ID                   string   `json:"id" yaml:"id"`
	CityKey              string   `json:"cityKey" yaml:"city_key"`
	Name                 string   `json:"name" yaml:"name"`
	ImageURL             string   `json:"imageUrl" yaml:"image_url"`
	DistanceFromCenterKm float64  `json:"distanceFromCenterKm" yaml:"distance_from_center_km"`
	VenueDetails         string   `json:"venueDetails" yaml:"venue_details"`
	Address              string   `json:"address" yaml:"address"`
	Latitude             float64  `json:"latitude" yaml:"latitude"`
	Longitude            float64  `json:"longitude" yaml:"longitude"`
	ShowtimesID          string   `json:"showtimesId,omitempty" yaml:"showtimes_id"`
	Amenities            []string `json:"amenities,omitempty" yaml:"amenities"`
	Services             []string `json:"services,omitempty" yaml:"services"`
	Experiences          []string `json:"experiences,omitempty" yaml:"experiences"`
}
