package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// Snapshot is an opaque weather payload stored by location. Fetching never
// reads it; it is a standalone keyed blob store.
type Snapshot struct {
	Location  string          `json:"location"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
}

type SnapshotUseCase struct {
	cache  ports.WeatherSnapshotCache
	logger ports.Logger
	ttl    time.Duration
	clock  func() time.Time
}

type SnapshotUseCaseDependencies struct {
	Cache  ports.WeatherSnapshotCache
	Logger ports.Logger
	TTL    time.Duration
	Clock  func() time.Time
}

func NewSnapshotUseCase(deps SnapshotUseCaseDependencies) (*SnapshotUseCase, error) {
	if deps.Cache == nil {
		return nil, errors.NewValidationError("snapshot cache is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.TTL <= 0 {
		return nil, errors.NewValidationError("snapshot TTL must be positive")
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	return &SnapshotUseCase{
		cache:  deps.Cache,
		logger: deps.Logger,
		ttl:    deps.TTL,
		clock:  clock,
	}, nil
}

// Get returns the cached snapshot for location or a NOT_FOUND error
func (uc *SnapshotUseCase) Get(ctx context.Context, location string) (*Snapshot, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	cached, err := uc.cache.Get(ctx, location)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("get weather snapshot for %s: %w", location, err)
	}

	return &Snapshot{
		Location:  cached.Location,
		Data:      cached.Data,
		Timestamp: cached.Timestamp,
	}, nil
}

// Put stores data for location, stamped with the current time
func (uc *SnapshotUseCase) Put(ctx context.Context, location string, data json.RawMessage) (*Snapshot, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}
	if len(data) == 0 || !json.Valid(data) {
		return nil, errors.NewValidationError("snapshot data must be valid JSON")
	}

	snapshot := &ports.WeatherSnapshot{
		Location:  location,
		Data:      data,
		Timestamp: uc.clock(),
	}
	if err := uc.cache.Set(ctx, snapshot, uc.ttl); err != nil {
		uc.logger.Error("Failed to store weather snapshot",
			ports.F("location", location),
			ports.F("error", err))
		return nil, fmt.Errorf("store weather snapshot for %s: %w", location, err)
	}

	uc.logger.Debug("Weather snapshot stored", ports.F("location", location), ports.F("ttl", uc.ttl))
	return &Snapshot{Location: snapshot.Location, Data: snapshot.Data, Timestamp: snapshot.Timestamp}, nil
}
