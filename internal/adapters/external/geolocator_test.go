package external

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherdash.app/pkg/errors"
)

func TestStaticGeolocator(t *testing.T) {
	geolocator, err := NewStaticGeolocator("50.45, 30.52")
	require.NoError(t, err)

	coords, err := geolocator.Locate(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, 50.45, coords.Latitude)
	assert.Equal(t, 30.52, coords.Longitude)

	_, err = NewStaticGeolocator("north")
	assert.True(t, errors.IsValidationError(err))
}

func TestIPGeolocator_Locate(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ip.json", r.URL.Path)
		assert.Equal(t, "auto:ip", r.URL.Query().Get("q"))
		assert.Equal(t, "k", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"ip": "203.0.113.7", "lat": 48.85, "lon": 2.35, "city": "Paris"}`))
	})
	geolocator, err := NewIPGeolocator(provider)
	require.NoError(t, err)

	coords, err := geolocator.Locate(context.Background(), "k")

	require.NoError(t, err)
	assert.Equal(t, 48.85, coords.Latitude)
	assert.Equal(t, 2.35, coords.Longitude)
}

func TestIPGeolocator_Failures(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"lat": 123.0, "lon": 2.35}`))
	})
	geolocator, err := NewIPGeolocator(provider)
	require.NoError(t, err)

	_, err = geolocator.Locate(context.Background(), "k")
	assert.True(t, errors.IsGeolocationError(err))

	_, err = geolocator.Locate(context.Background(), "")
	assert.True(t, errors.IsGeolocationError(err))

	_, err = NewIPGeolocator(nil)
	assert.True(t, errors.IsValidationError(err))
}
