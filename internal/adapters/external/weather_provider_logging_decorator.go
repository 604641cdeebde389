package external

import (
	"context"
	"time"

	"weatherdash.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured
// logging and per-call metrics. API keys are never logged.
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers.
// metrics may be nil.
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// Forecast wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) Forecast(ctx context.Context, params ports.ForecastParams) (*ports.ForecastData, error) {
	call := d.begin(ctx, "forecast", params.Query, ports.F("days", params.Days))
	data, err := d.provider.Forecast(ctx, params)
	call.end(data, err)
	return data, err
}

// History wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) History(ctx context.Context, params ports.HistoryParams) (*ports.ForecastData, error) {
	call := d.begin(ctx, "history", params.Query, ports.F("date", params.Date))
	data, err := d.provider.History(ctx, params)
	call.end(data, err)
	return data, err
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

type loggedCall struct {
	decorator *WeatherProviderLoggingDecorator
	ctx       context.Context
	fields    []ports.Field
	started   time.Time
}

func (d *WeatherProviderLoggingDecorator) begin(ctx context.Context, operation, query string, extra ports.Field) *loggedCall {
	fields := []ports.Field{
		ports.F("provider", d.provider.GetProviderName()),
		ports.F("operation", operation),
		ports.F("query", query),
		extra,
	}
	d.logger.Info("Weather API request started", append(fields, ports.F("event", "request"))...)
	return &loggedCall{decorator: d, ctx: ctx, fields: fields, started: time.Now()}
}

func (c *loggedCall) end(data *ports.ForecastData, err error) {
	d := c.decorator
	duration := time.Since(c.started)
	fields := append(c.fields, ports.F("duration_ms", duration.Milliseconds()))

	if d.metrics != nil {
		d.metrics.RecordWeatherAPICall(c.ctx, d.provider.GetProviderName(), err == nil)
	}

	if err != nil {
		d.logger.Error("Weather API request failed",
			append(fields, ports.F("event", "error"), ports.F("error", err.Error()))...)
		return
	}

	location, days := "", 0
	if data != nil {
		location, days = data.Location.Name, len(data.Days)
	}
	d.logger.Info("Weather API request completed",
		append(fields,
			ports.F("event", "response"),
			ports.F("location", location),
			ports.F("days", days))...)
}
