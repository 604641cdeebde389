package external

import (
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

// CreateCacheProvider builds the backend named by cfg.Type
func (f *CacheProviderFactory) CreateCacheProvider(cfg *ports.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case "memory":
		return NewMemoryCacheProvider(), nil
	case "redis":
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported cache type: %q", cfg.Type), nil)
	}
}
