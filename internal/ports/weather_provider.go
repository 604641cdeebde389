package ports

import (
	"context"
	"encoding/json"
	"time"
)

// ConditionData describes a weather condition as reported by the provider
type ConditionData struct {
	Text string
	Icon string
	Code int
}

// LocationData represents the resolved location of a weather response
type LocationData struct {
	Name      string
	Region    string
	Country   string
	Latitude  float64
	Longitude float64
	LocalTime string
}

// AirQualityData represents air quality readings attached to current conditions
type AirQualityData struct {
	CO         float64
	NO2        float64
	O3         float64
	SO2        float64
	PM25       float64
	PM10       float64
	USEPAIndex int
}

// CurrentData represents current conditions
type CurrentData struct {
	LastUpdated string
	TempC       float64
	FeelsLikeC  float64
	IsDay       bool
	Condition   ConditionData
	WindKph     float64
	WindDir     string
	PressureMb  float64
	PrecipMm    float64
	Humidity    int
	Cloud       int
	VisKm       float64
	UV          float64
	AirQuality  *AirQualityData
}

// DaySummaryData represents the aggregate of a forecast day
type DaySummaryData struct {
	MaxTempC      float64
	MinTempC      float64
	AvgTempC      float64
	MaxWindKph    float64
	TotalPrecipMm float64
	AvgHumidity   float64
	ChanceOfRain  int
	UV            float64
	Condition     ConditionData
}

// HourData represents one hourly entry of a forecast day
type HourData struct {
	Time         string
	TempC        float64
	Condition    ConditionData
	WindKph      float64
	PressureMb   float64
	PrecipMm     float64
	Humidity     int
	VisKm        float64
	UV           float64
	ChanceOfRain int
}

// ForecastDayData represents a single forecast (or history) day
type ForecastDayData struct {
	Date  string
	Day   DaySummaryData
	Hours []HourData
}

// ForecastData is the common shape of forecast and history responses
type ForecastData struct {
	Location LocationData
	Current  CurrentData
	Days     []ForecastDayData
}

// ForecastParams represents parameters of a forecast request
type ForecastParams struct {
	APIKey     string
	Query      string
	Days       int
	AirQuality bool
}

// HistoryParams represents parameters of a history request
type HistoryParams struct {
	APIKey string
	Query  string
	Date   string
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	Forecast(ctx context.Context, params ForecastParams) (*ForecastData, error)
	History(ctx context.Context, params HistoryParams) (*ForecastData, error)
	GetProviderName() string
}

// WeatherSnapshot is an opaque weather payload cached by location
type WeatherSnapshot struct {
	Location  string
	Data      json.RawMessage
	Timestamp time.Time
}

// WeatherSnapshotCache defines the contract for the keyed weather blob store
type WeatherSnapshotCache interface {
	Get(ctx context.Context, location string) (*WeatherSnapshot, error)
	Set(ctx context.Context, snapshot *WeatherSnapshot, ttl time.Duration) error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits        int64
	Misses      int64
	TotalOps    int64
	HitRatio    float64
	LastUpdated time.Time
}
