package health

import (
	"context"
	"fmt"
	"messenger/internal/platform/health"
)

const NameStorage = "storage"

type StorageHealthChecker interface {
	HealthCheck(ctx context.Context) (map[string]any, error)
}

type StorageProbe struct {
	storage StorageHealthChecker
}

func NewStorageProbe(storage StorageHealthChecker) *StorageProbe {
	return &StorageProbe{storage: storage}
}

func (p *StorageProbe) Name() string {
	return NameStorage
}

// Check attaches the bucket info to the result whether or not the check passed.
func (p *StorageProbe) Check(ctx context.Context) health.ProbeResult {
	info, err := p.storage.HealthCheck(ctx)
	if err != nil {
		return health.Unhealthy(fmt.Sprintf("object storage check failed: %v", err)).WithInfo(info)
	}
	return health.Healthy("object storage healthy").WithInfo(info)
}
