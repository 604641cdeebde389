package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeatherRequest_IsValid(t *testing.T) {
	tests := []struct {
		name    string
		request WeatherRequest
		wantErr bool
	}{
		{name: "ValidQuery", request: WeatherRequest{Query: "London"}},
		{name: "Coordinates", request: WeatherRequest{Query: "51.5,-0.12"}},
		{name: "EmptyQuery", request: WeatherRequest{Query: ""}, wantErr: true},
		{name: "WhitespaceQuery", request: WeatherRequest{Query: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.IsValid()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWeatherRequest_Normalize(t *testing.T) {
	request := WeatherRequest{Query: "  Paris ", APIKey: " key "}
	request.Normalize()

	assert.Equal(t, "Paris", request.Query)
	assert.Equal(t, "key", request.APIKey)
	assert.True(t, request.HasAPIKey())
	assert.False(t, (&WeatherRequest{APIKey: "  "}).HasAPIKey())
}

func TestDatesAround(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		expected FetchDates
	}{
		{
			name:     "MidMonth",
			now:      time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			expected: FetchDates{Yesterday: "2024-06-14", Today: "2024-06-15", Tomorrow: "2024-06-16"},
		},
		{
			name:     "YearBoundary",
			now:      time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC),
			expected: FetchDates{Yesterday: "2024-12-30", Today: "2024-12-31", Tomorrow: "2025-01-01"},
		},
		{
			name:     "LeapDay",
			now:      time.Date(2024, 3, 1, 0, 10, 0, 0, time.UTC),
			expected: FetchDates{Yesterday: "2024-02-29", Today: "2024-03-01", Tomorrow: "2024-03-02"},
		},
		{
			name:     "LocalCalendarDay",
			now:      time.Date(2024, 6, 15, 0, 30, 0, 0, time.FixedZone("UTC+3", 3*60*60)),
			expected: FetchDates{Yesterday: "2024-06-14", Today: "2024-06-15", Tomorrow: "2024-06-16"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DatesAround(tt.now))
		})
	}
}

func TestDay_NextAndParse(t *testing.T) {
	assert.Equal(t, DayToday, DayYesterday.Next())
	assert.Equal(t, DayTomorrow, DayToday.Next())
	assert.Equal(t, DayYesterday, DayTomorrow.Next())

	assert.Equal(t, DayYesterday, ParseDay("Yesterday"))
	assert.Equal(t, DayTomorrow, ParseDay("tomorrow"))
	assert.Equal(t, DayToday, ParseDay("whenever"))
	assert.Equal(t, "tomorrow", DayTomorrow.String())
}

func TestCompositeView_Select(t *testing.T) {
	view := &CompositeView{
		Yesterday: DayForecast{Date: "2024-06-14"},
		Today:     DayForecast{Date: "2024-06-15"},
		Tomorrow:  DayForecast{Date: "2024-06-16"},
	}

	assert.Equal(t, "2024-06-14", view.Select(DayYesterday).Date)
	assert.Equal(t, "2024-06-15", view.Select(DayToday).Date)
	assert.Equal(t, "2024-06-16", view.Select(DayTomorrow).Date)
}
