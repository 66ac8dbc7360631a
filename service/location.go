package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"showtime-finder-cli/model"
)

const earthRadiusKm = 6371.0

// UserLocation is the detected current location.
type UserLocation struct {
	Latitude  float64
	Longitude float64
	City      string
	Region    string
	Country   string
	Source    string
}

type locationProvider struct {
	name     string
	endpoint string
	parse    func([]byte) (UserLocation, error)
}

var defaultLocationProviders = []locationProvider{
	{name: "ipapi", endpoint: "https://ipapi.co/json/", parse: parseIPAPI},
	{name: "ipwhois", endpoint: "https://ipwho.is/", parse: parseIPWhoIs},
	{name: "ipinfo", endpoint: "https://ipinfo.io/json", parse: parseIPInfo},
}

// DetectLocation asks each IP geolocation provider in turn and returns the
// first usable answer.
func (c *Client) DetectLocation(ctx context.Context) (UserLocation, error) {
	if len(c.locationProviders) == 0 {
		return UserLocation{}, errors.New("no location providers configured")
	}

	var providerErrors []string
	for _, provider := range c.locationProviders {
		location, err := c.locate(ctx, provider)
		if err == nil {
			return location, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return UserLocation{}, err
		}
		providerErrors = append(providerErrors, fmt.Sprintf("%s: %s", provider.name, err.Error()))
	}
	return UserLocation{}, fmt.Errorf("all location providers failed (%s)", strings.Join(providerErrors, " | "))
}

func (c *Client) locate(ctx context.Context, provider locationProvider) (UserLocation, error) {
	body, err := c.get(ctx, provider.endpoint, "application/json")
	if err != nil {
		return UserLocation{}, err
	}
	location, err := provider.parse(body)
	if err != nil {
		return UserLocation{}, err
	}
	if location.Latitude == 0 && location.Longitude == 0 {
		return UserLocation{}, errors.New("provider returned empty coordinates")
	}
	if strings.TrimSpace(location.Source) == "" {
		location.Source = provider.name
	}
	return location, nil
}

// NearestCity picks the supported city whose map center is closest to loc
// and returns the great-circle distance to it in kilometres.
func NearestCity(loc UserLocation, cities []model.LocationOption) (model.LocationOption, float64, bool) {
	best := -1
	bestKm := math.Inf(1)
	for i, city := range cities {
		km := HaversineKm(loc.Latitude, loc.Longitude, city.Center.Lat, city.Center.Lng)
		if km < bestKm {
			best, bestKm = i, km
		}
	}
	if best < 0 {
		return model.LocationOption{}, 0, false
	}
	return cities[best], bestKm, true
}

func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(a)))
}

func parseIPAPI(body []byte) (UserLocation, error) {
	var payload struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		City      string  `json:"city"`
		Region    string  `json:"region"`
		Country   string  `json:"country_name"`
		Error     bool    `json:"error"`
		Reason    string  `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserLocation{}, fmt.Errorf("decode location response: %w", err)
	}
	if payload.Error {
		if payload.Reason == "" {
			payload.Reason = "unknown error"
		}
		return UserLocation{}, errors.New(payload.Reason)
	}
	return UserLocation{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		City:      payload.City,
		Region:    payload.Region,
		Country:   payload.Country,
	}, nil
}

func parseIPWhoIs(body []byte) (UserLocation, error) {
	var payload struct {
		Success   bool    `json:"success"`
		Message   string  `json:"message"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		City      string  `json:"city"`
		Region    string  `json:"region"`
		Country   string  `json:"country"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserLocation{}, fmt.Errorf("decode location response: %w", err)
	}
	if !payload.Success {
		if strings.TrimSpace(payload.Message) == "" {
			payload.Message = "provider returned unsuccessful response"
		}
		return UserLocation{}, errors.New(payload.Message)
	}
	return UserLocation{
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		City:      payload.City,
		Region:    payload.Region,
		Country:   payload.Country,
	}, nil
}

// parseIPInfo reads the "lat,lng" loc field.
func parseIPInfo(body []byte) (UserLocation, error) {
	var payload struct {
		Loc     string `json:"loc"`
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
		Bogon   bool   `json:"bogon"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return UserLocation{}, fmt.Errorf("decode location response: %w", err)
	}
	if payload.Bogon {
		return UserLocation{}, errors.New("bogon IP")
	}
	if payload.Error.Message != "" {
		return UserLocation{}, errors.New(payload.Error.Message)
	}
	lat, lng, ok := strings.Cut(strings.TrimSpace(payload.Loc), ",")
	if !ok {
		return UserLocation{}, errors.New("provider did not return valid loc")
	}
	latitude, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return UserLocation{}, fmt.Errorf("parse latitude: %w", err)
	}
	longitude, err := strconv.ParseFloat(strings.TrimSpace(lng), 64)
	if err != nil {
		return UserLocation{}, fmt.Errorf("parse longitude: %w", err)
	}
	return UserLocation{
		Latitude:  latitude,
		Longitude: longitude,
		City:      payload.City,
		Region:    payload.Region,
		Country:   payload.Country,
	}, nil
}
