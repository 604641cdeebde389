package weather

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const (
	todayForecastDays    = 1
	tomorrowForecastDays = 2
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	logger          ports.Logger
	metrics         ports.MetricsCollector
	clock           func() time.Time
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Logger          ports.Logger
	Metrics         ports.MetricsCollector
	// Clock defaults to time.Now
	Clock func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		logger:          deps.Logger,
		metrics:         deps.Metrics,
		clock:           clock,
	}, nil
}

// FetchComposite issues the today, yesterday and tomorrow requests
// concurrently and assembles them into one view. Any failure discards the
// whole result. No request is made without an API key.
func (uc *UseCase) FetchComposite(ctx context.Context, request WeatherRequest) (*CompositeView, error) {
	request.Normalize()

	if !request.HasAPIKey() {
		uc.metrics.RecordWeatherFetch(ctx, ports.FetchOutcomeConfigError, 0)
		uc.logger.Warn("Weather fetch skipped, no API key", ports.F("query", request.Query))
		return nil, errors.NewConfigurationError("weather API key is not configured", nil)
	}
	if err := request.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	now := uc.clock()
	dates := DatesAround(now)
	started := time.Now()

	uc.logger.Debug("Fetching composite weather",
		ports.F("query", request.Query),
		ports.F("yesterday", dates.Yesterday),
		ports.F("today", dates.Today),
		ports.F("tomorrow", dates.Tomorrow))

	view, err := uc.fetchAll(ctx, request, dates)
	if err != nil {
		uc.metrics.RecordWeatherFetch(ctx, ports.FetchOutcomeFetchError, time.Since(started))
		uc.logger.Error("Failed to fetch composite weather",
			ports.F("query", request.Query),
			ports.F("error", err))
		return nil, fmt.Errorf("fetch weather for %s: %w", request.Query, err)
	}

	view.FetchedAt = now
	uc.metrics.RecordWeatherFetch(ctx, ports.FetchOutcomeSuccess, time.Since(started))
	uc.logger.Info("Composite weather fetched",
		ports.F("query", request.Query),
		ports.F("location", view.Location.Name),
		ports.F("duration", time.Since(started)))
	return view, nil
}

func (uc *UseCase) fetchAll(ctx context.Context, request WeatherRequest, dates FetchDates) (*CompositeView, error) {
	var todayData, historyData, twoDayData *ports.ForecastData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := uc.weatherProvider.Forecast(gctx, ports.ForecastParams{
			APIKey:     request.APIKey,
			Query:      request.Query,
			Days:       todayForecastDays,
			AirQuality: true,
		})
		if err != nil {
			return fmt.Errorf("today forecast: %w", err)
		}
		todayData = data
		return nil
	})
	g.Go(func() error {
		data, err := uc.weatherProvider.History(gctx, ports.HistoryParams{
			APIKey: request.APIKey,
			Query:  request.Query,
			Date:   dates.Yesterday,
		})
		if err != nil {
			return fmt.Errorf("yesterday history: %w", err)
		}
		historyData = data
		return nil
	})
	g.Go(func() error {
		data, err := uc.weatherProvider.Forecast(gctx, ports.ForecastParams{
			APIKey:     request.APIKey,
			Query:      request.Query,
			Days:       tomorrowForecastDays,
			AirQuality: true,
		})
		if err != nil {
			return fmt.Errorf("tomorrow forecast: %w", err)
		}
		twoDayData = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, classifyFetchError(err)
	}

	today, err := dayAt(todayData, 0, "today")
	if err != nil {
		return nil, err
	}
	yesterday, err := dayAt(historyData, 0, "yesterday")
	if err != nil {
		return nil, err
	}
	tomorrow, err := dayAt(twoDayData, 1, "tomorrow")
	if err != nil {
		return nil, err
	}

	return &CompositeView{
		Location:  convertLocation(todayData.Location),
		Current:   convertCurrent(todayData.Current),
		Yesterday: yesterday,
		Today:     today,
		Tomorrow:  tomorrow,
	}, nil
}

// classifyFetchError keeps typed provider errors and wraps anything else
// as an external API failure.
func classifyFetchError(err error) error {
	switch errors.TypeOf(err) {
	case errors.NotFoundError, errors.ConfigurationError, errors.ExternalAPIError:
		return err
	default:
		return errors.NewExternalAPIError("weather provider failed", err)
	}
}

func dayAt(data *ports.ForecastData, index int, label string) (DayForecast, error) {
	if data == nil || len(data.Days) <= index {
		return DayForecast{}, errors.NewExternalAPIError(
			fmt.Sprintf("weather response has no %s forecast day", label), nil)
	}
	return convertDay(data.Days[index]), nil
}

func convertLocation(l ports.LocationData) Location {
	return Location{
		Name:      l.Name,
		Region:    l.Region,
		Country:   l.Country,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		LocalTime: l.LocalTime,
	}
}

func convertCondition(c ports.ConditionData) Condition {
	return Condition{Text: c.Text, Icon: c.Icon, Code: c.Code}
}

func convertCurrent(c ports.CurrentData) CurrentConditions {
	current := CurrentConditions{
		LastUpdated: c.LastUpdated,
		TempC:       c.TempC,
		FeelsLikeC:  c.FeelsLikeC,
		IsDay:       c.IsDay,
		Condition:   convertCondition(c.Condition),
		WindKph:     c.WindKph,
		WindDir:     c.WindDir,
		PressureMb:  c.PressureMb,
		PrecipMm:    c.PrecipMm,
		Humidity:    c.Humidity,
		Cloud:       c.Cloud,
		VisKm:       c.VisKm,
		UV:          c.UV,
	}
	if c.AirQuality != nil {
		current.AirQuality = &AirQuality{
			CO:         c.AirQuality.CO,
			NO2:        c.AirQuality.NO2,
			O3:         c.AirQuality.O3,
			SO2:        c.AirQuality.SO2,
			PM25:       c.AirQuality.PM25,
			PM10:       c.AirQuality.PM10,
			USEPAIndex: c.AirQuality.USEPAIndex,
		}
	}
	return current
}

func convertDay(d ports.ForecastDayData) DayForecast {
	hours := make([]HourlyForecast, 0, len(d.Hours))
	for _, h := range d.Hours {
		hours = append(hours, HourlyForecast{
			Time:         h.Time,
			TempC:        h.TempC,
			Condition:    convertCondition(h.Condition),
			PrecipMm:     h.PrecipMm,
			Humidity:     h.Humidity,
			WindKph:      h.WindKph,
			UV:           h.UV,
			PressureMb:   h.PressureMb,
			VisKm:        h.VisKm,
			ChanceOfRain: h.ChanceOfRain,
		})
	}

	return DayForecast{
		Date:          d.Date,
		MaxTempC:      d.Day.MaxTempC,
		MinTempC:      d.Day.MinTempC,
		AvgTempC:      d.Day.AvgTempC,
		MaxWindKph:    d.Day.MaxWindKph,
		TotalPrecipMm: d.Day.TotalPrecipMm,
		AvgHumidity:   d.Day.AvgHumidity,
		ChanceOfRain:  d.Day.ChanceOfRain,
		UV:            d.Day.UV,
		Condition:     convertCondition(d.Day.Condition),
		Hours:         hours,
	}
}

// GetProviderName exposes the configured provider for health and logging
func (uc *UseCase) GetProviderName() string {
	return uc.weatherProvider.GetProviderName()
}
