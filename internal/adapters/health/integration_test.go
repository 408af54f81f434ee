//go:build integration
// +build integration

package health

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcminio "github.com/testcontainers/testcontainers-go/modules/minio"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"

	"messenger/internal/adapters/cache"
	"messenger/internal/adapters/database"
	"messenger/internal/adapters/storage"
	"messenger/internal/config"
	"messenger/internal/platform/health"
	"messenger/internal/platform/logger"
)

type ProbeIntegrationTestSuite struct {
	suite.Suite
	pgContainer    *postgres.PostgresContainer
	redisContainer *tcredis.RedisContainer
	minioContainer *tcminio.MinioContainer

	db      *database.Lifecycle
	cache   *cache.Lifecycle
	storage *storage.Lifecycle
}

func (s *ProbeIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	log := logger.NewNop()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	pgHost, err := pgContainer.Host(ctx)
	s.Require().NoError(err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	s.db = database.NewDatabaseLifecycle(&config.DatabaseConfig{
		Postgres: config.PostgresConfig{
			Host:         pgHost,
			Port:         pgPort.Int(),
			User:         "testuser",
			Password:     "testpass",
			Database:     "testdb",
			SSLMode:      "disable",
			MaxOpenConns: 5,
			MaxIdleConns: 1,
		},
	}, log)
	s.Require().NoError(s.db.Start(ctx))

	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.redisContainer = redisContainer

	redisHost, err := redisContainer.Host(ctx)
	s.Require().NoError(err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379/tcp")
	s.Require().NoError(err)

	s.cache = cache.NewCacheLifecycle(&config.CacheConfig{
		Redis: config.RedisConfig{
			Addr:         redisHost + ":" + redisPort.Port(),
			DialTimeout:  time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
			PoolSize:     2,
		},
	}, log)
	s.Require().NoError(s.cache.Start(ctx))

	minioContainer, err := tcminio.Run(ctx,
		"minio/minio:RELEASE.2024-01-16T16-07-38Z",
		tcminio.WithUsername("minioadmin"),
		tcminio.WithPassword("minioadmin"),
	)
	s.Require().NoError(err)
	s.minioContainer = minioContainer

	endpoint, err := minioContainer.ConnectionString(ctx)
	s.Require().NoError(err)

	s.storage = storage.NewStorageLifecycle(&config.StorageConfig{
		Minio: config.MinioConfig{
			Endpoint:     endpoint,
			AccessKey:    "minioadmin",
			SecretKey:    "minioadmin",
			Bucket:       "attachments",
			Region:       "us-east-1",
			CreateBucket: true,
		},
	}, log)
	s.Require().NoError(s.storage.Start(ctx))
}

func (s *ProbeIntegrationTestSuite) TearDownSuite() {
	ctx := context.Background()

	_ = s.db.Stop(ctx)
	_ = s.cache.Stop(ctx)
	_ = s.storage.Stop(ctx)

	if s.pgContainer != nil {
		s.Require().NoError(s.pgContainer.Terminate(ctx))
	}
	if s.redisContainer != nil {
		s.Require().NoError(s.redisContainer.Terminate(ctx))
	}
	if s.minioContainer != nil {
		s.Require().NoError(s.minioContainer.Terminate(ctx))
	}
}

func (s *ProbeIntegrationTestSuite) newAggregator(cacheChecker CacheHealthChecker) *health.Aggregator {
	registry, err := health.NewRegistry(
		NewDatabaseProbe(s.db),
		NewCacheProbe(cacheChecker),
		NewStorageProbe(s.storage),
	)
	s.Require().NoError(err)

	aggregator, err := health.NewAggregator(registry, 2*time.Second)
	s.Require().NoError(err)
	return aggregator
}

func (s *ProbeIntegrationTestSuite) TestProbes_Healthy() {
	ctx := context.Background()

	s.Assert().True(NewDatabaseProbe(s.db).Check(ctx).Healthy)
	s.Assert().True(NewCacheProbe(s.cache).Check(ctx).Healthy)

	result := NewStorageProbe(s.storage).Check(ctx)
	s.Assert().True(result.Healthy, result.Message)
	s.Assert().Equal("attachments", result.Info["bucket"])
}

func (s *ProbeIntegrationTestSuite) TestAggregator_AllHealthy() {
	status, err := s.newAggregator(s.cache).Run(context.Background(), health.ModeReadiness)

	s.Require().NoError(err)
	s.Assert().True(status.OverallHealthy)
	s.Assert().Equal([]string{NameDatabase, NameCache, NameStorage}, status.Names())
}

func (s *ProbeIntegrationTestSuite) TestAggregator_CacheDown() {
	ctx := context.Background()

	unreachable := cache.NewCacheLifecycle(&config.CacheConfig{
		Redis: config.RedisConfig{
			Addr:         "127.0.0.1:1",
			DialTimeout:  200 * time.Millisecond,
			ReadTimeout:  200 * time.Millisecond,
			WriteTimeout: 200 * time.Millisecond,
			PoolSize:     1,
		},
	}, logger.NewNop())
	s.Require().NoError(unreachable.Start(ctx))
	defer func() { _ = unreachable.Stop(ctx) }()

	status, err := s.newAggregator(unreachable).Run(ctx, health.ModeReadiness)
	s.Require().NoError(err)

	s.Assert().False(status.OverallHealthy)

	redis, _ := status.Result(NameCache)
	s.Assert().False(redis.Healthy)

	db, _ := status.Result(NameDatabase)
	s.Assert().True(db.Healthy)
	st, _ := status.Result(NameStorage)
	s.Assert().True(st.Healthy)
}

func TestProbeIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(ProbeIntegrationTestSuite))
}
