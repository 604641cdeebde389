// Package external provides adapters for external services: the weather
// provider, geolocation and caches.
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	weatherAPIProviderName = "weatherapi"

	// WeatherAPI.com error codes
	weatherAPICodeNoLocation = 1006

	maxErrorBodyBytes = 4096
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WeatherAPIProviderAdapter implements WeatherProvider port for WeatherAPI.com.
// The API key travels with each request; the adapter holds none.
type WeatherAPIProviderAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// WeatherAPIProviderParams holds parameters for creating WeatherAPI provider
type WeatherAPIProviderParams struct {
	BaseURL string
	Timeout time.Duration
	Logger  ports.Logger
	// Client overrides the default HTTP client
	Client HTTPClient
}

type weatherAPICondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type weatherAPIAirQuality struct {
	CO         float64 `json:"co"`
	NO2        float64 `json:"no2"`
	O3         float64 `json:"o3"`
	SO2        float64 `json:"so2"`
	PM25       float64 `json:"pm2_5"`
	PM10       float64 `json:"pm10"`
	USEPAIndex int     `json:"us-epa-index"`
}

// WeatherAPIResponse represents forecast.json and history.json responses
type WeatherAPIResponse struct {
	Location struct {
		Name      string  `json:"name"`
		Region    string  `json:"region"`
		Country   string  `json:"country"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		LocalTime string  `json:"localtime"`
	} `json:"location"`
	Current struct {
		LastUpdated string                `json:"last_updated"`
		TempC       float64               `json:"temp_c"`
		FeelsLikeC  float64               `json:"feelslike_c"`
		IsDay       int                   `json:"is_day"`
		Condition   weatherAPICondition   `json:"condition"`
		WindKph     float64               `json:"wind_kph"`
		WindDir     string                `json:"wind_dir"`
		PressureMb  float64               `json:"pressure_mb"`
		PrecipMm    float64               `json:"precip_mm"`
		Humidity    int                   `json:"humidity"`
		Cloud       int                   `json:"cloud"`
		VisKm       float64               `json:"vis_km"`
		UV          float64               `json:"uv"`
		AirQuality  *weatherAPIAirQuality `json:"air_quality"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC      float64             `json:"maxtemp_c"`
				MinTempC      float64             `json:"mintemp_c"`
				AvgTempC      float64             `json:"avgtemp_c"`
				MaxWindKph    float64             `json:"maxwind_kph"`
				TotalPrecipMm float64             `json:"totalprecip_mm"`
				AvgHumidity   float64             `json:"avghumidity"`
				ChanceOfRain  int                 `json:"daily_chance_of_rain"`
				UV            float64             `json:"uv"`
				Condition     weatherAPICondition `json:"condition"`
			} `json:"day"`
			Hour []struct {
				Time         string              `json:"time"`
				TempC        float64             `json:"temp_c"`
				Condition    weatherAPICondition `json:"condition"`
				WindKph      float64             `json:"wind_kph"`
				PressureMb   float64             `json:"pressure_mb"`
				PrecipMm     float64             `json:"precip_mm"`
				Humidity     int                 `json:"humidity"`
				VisKm        float64             `json:"vis_km"`
				UV           float64             `json:"uv"`
				ChanceOfRain int                 `json:"chance_of_rain"`
			} `json:"hour"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

type weatherAPIErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewWeatherAPIProviderAdapter creates a new WeatherAPI provider adapter
func NewWeatherAPIProviderAdapter(params WeatherAPIProviderParams) (*WeatherAPIProviderAdapter, error) {
	if params.BaseURL == "" {
		return nil, errors.NewValidationError("weather API base URL is required")
	}
	if params.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}

	return &WeatherAPIProviderAdapter{
		baseURL: strings.TrimRight(params.BaseURL, "/"),
		client:  client,
		logger:  params.Logger,
	}, nil
}

// Forecast calls forecast.json for params.Days days
func (p *WeatherAPIProviderAdapter) Forecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastData, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}
	if params.Days < 1 {
		return nil, errors.NewValidationError("forecast days must be at least 1")
	}

	aqi := "no"
	if params.AirQuality {
		aqi = "yes"
	}
	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("days", strconv.Itoa(params.Days))
	query.Set("aqi", aqi)
	query.Set("alerts", "no")

	var apiResp WeatherAPIResponse
	if err := p.get(ctx, "forecast.json", params.APIKey, query, &apiResp); err != nil {
		return nil, err
	}
	return convertWeatherAPIResponse(&apiResp), nil
}

// History calls history.json for a single date
func (p *WeatherAPIProviderAdapter) History(ctx context.Context, params ports.HistoryParams) (*ports.ForecastData, error) {
	if strings.TrimSpace(params.Query) == "" {
		return nil, errors.NewValidationError("query cannot be empty")
	}
	if params.Date == "" {
		return nil, errors.NewValidationError("history date cannot be empty")
	}

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("dt", params.Date)

	var apiResp WeatherAPIResponse
	if err := p.get(ctx, "history.json", params.APIKey, query, &apiResp); err != nil {
		return nil, err
	}
	return convertWeatherAPIResponse(&apiResp), nil
}

// GetProviderName returns the name of this weather provider
func (p *WeatherAPIProviderAdapter) GetProviderName() string {
	return weatherAPIProviderName
}

// get performs a keyed GET against endpoint and decodes the JSON body into out
func (p *WeatherAPIProviderAdapter) get(ctx context.Context, endpoint, apiKey string, query url.Values, out interface{}) error {
	if apiKey == "" {
		return errors.NewConfigurationError("weather API key is not configured", nil)
	}
	query.Set("key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/"+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build WeatherAPI request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.NewExternalAPIError("failed to call WeatherAPI", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close WeatherAPI response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return p.statusError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode WeatherAPI response", err)
	}
	return nil
}

// statusError maps a non-200 response to a typed error. A rejected key is a
// configuration problem; an unknown location is not found.
func (p *WeatherAPIProviderAdapter) statusError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	var apiErr weatherAPIErrorResponse
	message := fmt.Sprintf("WeatherAPI %s returned status %d", endpoint, resp.StatusCode)
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		message = fmt.Sprintf("%s: %s", message, apiErr.Error.Message)
	}

	switch {
	case apiErr.Error.Code == weatherAPICodeNoLocation:
		return errors.NewNotFoundError(message)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewConfigurationError(message, nil)
	case resp.StatusCode == http.StatusNotFound:
		return errors.NewNotFoundError(message)
	default:
		return errors.NewExternalAPIError(message, nil)
	}
}

func convertCondition(c weatherAPICondition) ports.ConditionData {
	return ports.ConditionData{Text: c.Text, Icon: c.Icon, Code: c.Code}
}

func convertWeatherAPIResponse(r *WeatherAPIResponse) *ports.ForecastData {
	data := &ports.ForecastData{
		Location: ports.LocationData{
			Name:      r.Location.Name,
			Region:    r.Location.Region,
			Country:   r.Location.Country,
			Latitude:  r.Location.Lat,
			Longitude: r.Location.Lon,
			LocalTime: r.Location.LocalTime,
		},
		Current: ports.CurrentData{
			LastUpdated: r.Current.LastUpdated,
			TempC:       r.Current.TempC,
			FeelsLikeC:  r.Current.FeelsLikeC,
			IsDay:       r.Current.IsDay == 1,
			Condition:   convertCondition(r.Current.Condition),
			WindKph:     r.Current.WindKph,
			WindDir:     r.Current.WindDir,
			PressureMb:  r.Current.PressureMb,
			PrecipMm:    r.Current.PrecipMm,
			Humidity:    r.Current.Humidity,
			Cloud:       r.Current.Cloud,
			VisKm:       r.Current.VisKm,
			UV:          r.Current.UV,
		},
	}

	if aq := r.Current.AirQuality; aq != nil {
		data.Current.AirQuality = &ports.AirQualityData{
			CO:         aq.CO,
			NO2:        aq.NO2,
			O3:         aq.O3,
			SO2:        aq.SO2,
			PM25:       aq.PM25,
			PM10:       aq.PM10,
			USEPAIndex: aq.USEPAIndex,
		}
	}

	for _, fd := range r.Forecast.ForecastDay {
		day := ports.ForecastDayData{
			Date: fd.Date,
			Day: ports.DaySummaryData{
				MaxTempC:      fd.Day.MaxTempC,
				MinTempC:      fd.Day.MinTempC,
				AvgTempC:      fd.Day.AvgTempC,
				MaxWindKph:    fd.Day.MaxWindKph,
				TotalPrecipMm: fd.Day.TotalPrecipMm,
				AvgHumidity:   fd.Day.AvgHumidity,
				ChanceOfRain:  fd.Day.ChanceOfRain,
				UV:            fd.Day.UV,
				Condition:     convertCondition(fd.Day.Condition),
			},
			Hours: make([]ports.HourData, 0, len(fd.Hour)),
		}
		for _, h := range fd.Hour {
			day.Hours = append(day.Hours, ports.HourData{
				Time:         h.Time,
				TempC:        h.TempC,
				Condition:    convertCondition(h.Condition),
				WindKph:      h.WindKph,
				PressureMb:   h.PressureMb,
				PrecipMm:     h.PrecipMm,
				Humidity:     h.Humidity,
				VisKm:        h.VisKm,
				UV:           h.UV,
				ChanceOfRain: h.ChanceOfRain,
			})
		}
		data.Days = append(data.Days, day)
	}

	return data
}
