package external

import (
	"context"
	"encoding/json"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const snapshotKeyPrefix = "snapshot:"

// snapshotEnvelope is the serialized form of a snapshot in the generic cache
type snapshotEnvelope struct {
	Location  string          `json:"location"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

// WeatherCacheAdapter bridges generic CacheProvider to the weather snapshot cache.
// Locations are keyed exactly as given.
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
	metrics       ports.MetricsCollector
}

// NewWeatherCacheAdapter creates a snapshot cache on top of a generic cache provider.
// metrics may be nil.
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider, metrics ports.MetricsCollector) ports.WeatherSnapshotCache {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
		metrics:       metrics,
	}
}

func (w *WeatherCacheAdapter) Get(ctx context.Context, location string) (*ports.WeatherSnapshot, error) {
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	data, err := w.cacheProvider.Get(ctx, snapshotKeyPrefix+location)
	if err != nil {
		if errors.IsNotFoundError(err) {
			w.recordMiss(ctx)
			return nil, errors.NewNotFoundError("no cached weather for location")
		}
		return nil, err
	}

	var envelope snapshotEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		w.recordMiss(ctx)
		return nil, errors.NewExternalAPIError("failed to deserialize weather snapshot", err)
	}

	w.recordHit(ctx)
	return &ports.WeatherSnapshot{
		Location:  envelope.Location,
		Data:      envelope.Data,
		Timestamp: envelope.Timestamp,
	}, nil
}

func (w *WeatherCacheAdapter) Set(ctx context.Context, snapshot *ports.WeatherSnapshot, ttl time.Duration) error {
	if snapshot == nil {
		return errors.NewValidationError("weather snapshot cannot be nil")
	}
	if snapshot.Location == "" {
		return errors.NewValidationError("location cannot be empty")
	}

	data, err := json.Marshal(snapshotEnvelope{
		Location:  snapshot.Location,
		Data:      snapshot.Data,
		Timestamp: snapshot.Timestamp.UTC(),
	})
	if err != nil {
		return errors.NewValidationError("weather snapshot is not serializable: " + err.Error())
	}

	return w.cacheProvider.Set(ctx, snapshotKeyPrefix+snapshot.Location, data, ttl)
}

func (w *WeatherCacheAdapter) recordHit(ctx context.Context) {
	if w.metrics != nil {
		w.metrics.RecordCacheHit(ctx)
	}
}

func (w *WeatherCacheAdapter) recordMiss(ctx context.Context) {
	if w.metrics != nil {
		w.metrics.RecordCacheMiss(ctx)
	}
}
