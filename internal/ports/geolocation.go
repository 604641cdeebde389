package ports

import "context"

// Coordinates represents a geographic position
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Geolocator resolves the current device position
type Geolocator interface {
	Locate(ctx context.Context, apiKey string) (*Coordinates, error)
}
