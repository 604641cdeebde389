package weather

import (
	"fmt"
	"strings"
	"time"
)

// Condition describes the sky as reported by the provider
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon,omitempty"`
	Code int    `json:"code,omitempty"`
}

// Location is the place a composite view was fetched for
type Location struct {
	Name      string  `json:"name"`
	Region    string  `json:"region,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	LocalTime string  `json:"localtime,omitempty"`
}

// AirQuality holds pollutant readings of the current conditions
type AirQuality struct {
	CO         float64 `json:"co"`
	NO2        float64 `json:"no2"`
	O3         float64 `json:"o3"`
	SO2        float64 `json:"so2"`
	PM25       float64 `json:"pm2_5"`
	PM10       float64 `json:"pm10"`
	USEPAIndex int     `json:"us_epa_index"`
}

type CurrentConditions struct {
	LastUpdated string      `json:"last_updated,omitempty"`
	TempC       float64     `json:"temp_c"`
	FeelsLikeC  float64     `json:"feelslike_c"`
	IsDay       bool        `json:"is_day"`
	Condition   Condition   `json:"condition"`
	WindKph     float64     `json:"wind_kph"`
	WindDir     string      `json:"wind_dir,omitempty"`
	PressureMb  float64     `json:"pressure_mb"`
	PrecipMm    float64     `json:"precip_mm"`
	Humidity    int         `json:"humidity"`
	Cloud       int         `json:"cloud"`
	VisKm       float64     `json:"vis_km"`
	UV          float64     `json:"uv"`
	AirQuality  *AirQuality `json:"air_quality,omitempty"`
}

type HourlyForecast struct {
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	Condition    Condition `json:"condition"`
	PrecipMm     float64   `json:"precip_mm"`
	Humidity     int       `json:"humidity"`
	WindKph      float64   `json:"wind_kph"`
	UV           float64   `json:"uv"`
	PressureMb   float64   `json:"pressure_mb"`
	VisKm        float64   `json:"vis_km"`
	ChanceOfRain int       `json:"chance_of_rain"`
}

type DayForecast struct {
	Date          string           `json:"date"`
	MaxTempC      float64          `json:"maxtemp_c"`
	MinTempC      float64          `json:"mintemp_c"`
	AvgTempC      float64          `json:"avgtemp_c"`
	MaxWindKph    float64          `json:"maxwind_kph"`
	TotalPrecipMm float64          `json:"totalprecip_mm"`
	AvgHumidity   float64          `json:"avghumidity"`
	ChanceOfRain  int              `json:"daily_chance_of_rain"`
	UV            float64          `json:"uv"`
	Condition     Condition        `json:"condition"`
	Hours         []HourlyForecast `json:"hour"`
}

// CompositeView is the result of one successful fetch. It is replaced
// wholesale by the next one and never persisted.
type CompositeView struct {
	Location  Location          `json:"location"`
	Current   CurrentConditions `json:"current"`
	Yesterday DayForecast       `json:"yesterday"`
	Today     DayForecast       `json:"today"`
	Tomorrow  DayForecast       `json:"tomorrow"`
	FetchedAt time.Time         `json:"fetched_at"`
}

// Day selects one of the three days of a composite view
type Day int

const (
	DayToday Day = iota
	DayYesterday
	DayTomorrow
)

func (d Day) String() string {
	switch d {
	case DayYesterday:
		return "yesterday"
	case DayTomorrow:
		return "tomorrow"
	default:
		return "today"
	}
}

// Next cycles yesterday -> today -> tomorrow -> yesterday
func (d Day) Next() Day {
	switch d {
	case DayYesterday:
		return DayToday
	case DayToday:
		return DayTomorrow
	default:
		return DayYesterday
	}
}

// ParseDay parses a day name; unknown names select today
func ParseDay(s string) Day {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yesterday":
		return DayYesterday
	case "tomorrow":
		return DayTomorrow
	default:
		return DayToday
	}
}

// Select returns the forecast of the given day
func (v *CompositeView) Select(d Day) DayForecast {
	switch d {
	case DayYesterday:
		return v.Yesterday
	case DayTomorrow:
		return v.Tomorrow
	default:
		return v.Today
	}
}

// WeatherRequest represents a request for a composite view
type WeatherRequest struct {
	Query  string
	APIKey string
}

// IsValid validates weather request
func (wr *WeatherRequest) IsValid() error {
	if strings.TrimSpace(wr.Query) == "" {
		return fmt.Errorf("location query cannot be empty")
	}
	return nil
}

// HasAPIKey reports whether a usable API key is present
func (wr *WeatherRequest) HasAPIKey() bool {
	return strings.TrimSpace(wr.APIKey) != ""
}

// Normalize trims the query and key for consistent processing
func (wr *WeatherRequest) Normalize() {
	wr.Query = strings.TrimSpace(wr.Query)
	wr.APIKey = strings.TrimSpace(wr.APIKey)
}

// FetchDates holds the three calendar days a fetch targets, as YYYY-MM-DD
type FetchDates struct {
	Yesterday string
	Today     string
	Tomorrow  string
}

const dateLayout = "2006-01-02"

// DatesAround computes yesterday, today and tomorrow in now's location
func DatesAround(now time.Time) FetchDates {
	return FetchDates{
		Yesterday: now.AddDate(0, 0, -1).Format(dateLayout),
		Today:     now.Format(dateLayout),
		Tomorrow:  now.AddDate(0, 0, 1).Format(dateLayout),
	}
}

// String returns a short description of the current conditions
func (v *CompositeView) String() string {
	return fmt.Sprintf("%s: %.1f°C, %s", v.Location.Name, v.Current.TempC, v.Current.Condition.Text)
}
