package external

import (
	"context"
	"net/url"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

// StaticGeolocator always reports the configured position
type StaticGeolocator struct {
	coordinates ports.Coordinates
}

// NewStaticGeolocator parses a "lat,lon" pair
func NewStaticGeolocator(coordinates string) (*StaticGeolocator, error) {
	lat, lon, ok := validation.ParseCoordinates(coordinates)
	if !ok {
		return nil, errors.NewValidationError("coordinates must be \"lat,lon\" with valid ranges")
	}
	return &StaticGeolocator{coordinates: ports.Coordinates{Latitude: lat, Longitude: lon}}, nil
}

func (g *StaticGeolocator) Locate(_ context.Context, _ string) (*ports.Coordinates, error) {
	c := g.coordinates
	return &c, nil
}

type ipLookupResponse struct {
	IP  string  `json:"ip"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IPGeolocator resolves the caller's position from its public IP address
// through the WeatherAPI ip.json endpoint.
type IPGeolocator struct {
	provider *WeatherAPIProviderAdapter
}

func NewIPGeolocator(provider *WeatherAPIProviderAdapter) (*IPGeolocator, error) {
	if provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	return &IPGeolocator{provider: provider}, nil
}

func (g *IPGeolocator) Locate(ctx context.Context, apiKey string) (*ports.Coordinates, error) {
	query := url.Values{}
	query.Set("q", "auto:ip")

	var resp ipLookupResponse
	if err := g.provider.get(ctx, "ip.json", apiKey, query, &resp); err != nil {
		return nil, errors.NewGeolocationError("IP lookup failed", err)
	}
	if !validation.IsValidLatitude(resp.Lat) || !validation.IsValidLongitude(resp.Lon) {
		return nil, errors.NewGeolocationError("IP lookup returned an invalid position", nil)
	}

	g.provider.logger.Debug("Resolved position from IP", ports.F("lat", resp.Lat), ports.F("lon", resp.Lon))
	return &ports.Coordinates{Latitude: resp.Lat, Longitude: resp.Lon}, nil
}
