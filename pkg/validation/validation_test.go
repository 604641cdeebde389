package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  London ")
	assert.True(t, ok)
	assert.Equal(t, "London", v)

	_, ok = TrimAndValidate(" \t ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty(""))
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		lat     float64
		lon     float64
		success bool
	}{
		{"Plain", "51.5,-0.12", 51.5, -0.12, true},
		{"Spaces", " 40.7128 , -74.006 ", 40.7128, -74.006, true},
		{"Integers", "10,20", 10, 20, true},
		{"LatitudeOutOfRange", "91,0", 0, 0, false},
		{"LongitudeOutOfRange", "0,181", 0, 0, false},
		{"CityName", "London", 0, 0, false},
		{"ThreeParts", "1,2,3", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, ok := ParseCoordinates(tt.input)
			assert.Equal(t, tt.success, ok)
			if tt.success {
				assert.InDelta(t, tt.lat, lat, 1e-9)
				assert.InDelta(t, tt.lon, lon, 1e-9)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "51.5,-0.12", FormatCoordinates(51.5, -0.12))
	assert.Equal(t, "10,20", FormatCoordinates(10, 20))
}
