package health

import (
	"context"
	"errors"
	"fmt"
	"messenger/internal/platform/health"

	"messenger/internal/adapters/cache"
)

const NameCache = "redis"

type CacheHealthChecker interface {
	CheckHealth(ctx context.Context) error
}

type CacheProbe struct {
	cache CacheHealthChecker
}

func NewCacheProbe(cache CacheHealthChecker) *CacheProbe {
	return &CacheProbe{cache: cache}
}

func (p *CacheProbe) Name() string {
	return NameCache
}

func (p *CacheProbe) Check(ctx context.Context) health.ProbeResult {
	err := p.cache.CheckHealth(ctx)
	switch {
	case err == nil:
		return health.Healthy("cache connection healthy")
	case errors.Is(err, cache.ErrNotConnected):
		return health.Unhealthy(err.Error())
	default:
		return health.Unhealthy(fmt.Sprintf("cache connection failed: %v", err))
	}
}
