package storage

import (
	"context"
	"errors"
	"messenger/internal/platform/logger"
	"messenger/internal/platform/storage/minio"
	"sync"

	"messenger/internal/config"
)

var ErrNotConnected = errors.New("object storage client is not initialized")

// Lifecycle owns the MinIO client. An invalid endpoint fails Start; an
// unreachable server only logs, and readiness reports it.
type Lifecycle struct {
	cfg    *config.StorageConfig
	logger logger.Logger
	client *minio.Client
	mu     sync.Mutex
}

func NewStorageLifecycle(cfg *config.StorageConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
	}
}

func (s *Lifecycle) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Info("Starting object storage client",
		logger.String("endpoint", s.cfg.Minio.Endpoint),
		logger.String("bucket", s.cfg.Minio.Bucket),
	)

	client, err := minio.New(&s.cfg.Minio)
	if err != nil {
		s.logger.Error("Failed to create object storage client", logger.Error(err))
		return err
	}

	if s.cfg.Minio.CreateBucket {
		created, err := client.EnsureBucket(ctx)
		switch {
		case err != nil:
			s.logger.Warn("Failed to ensure bucket", logger.Error(err))
		case created:
			s.logger.Info("Created bucket", logger.String("bucket", client.Bucket()))
		}
	}

	s.client = client
	return nil
}

// Stop releases the client; minio-go keeps no connections that need closing.
func (s *Lifecycle) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		s.logger.Info("Releasing object storage client")
	}
	s.client = nil
	return nil
}

func (s *Lifecycle) Client() *minio.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

func (s *Lifecycle) HealthCheck(ctx context.Context) (map[string]any, error) {
	client := s.Client()
	if client == nil {
		return map[string]any{"bucket": s.cfg.Minio.Bucket, "endpoint": s.cfg.Minio.Endpoint}, ErrNotConnected
	}
	return client.HealthCheck(ctx)
}
