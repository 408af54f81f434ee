//go:build integration
// +build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"messenger/internal/config"
	"messenger/internal/platform/logger"
)

type DatabaseTestSuite struct {
	suite.Suite
	postgresContainer *postgres.PostgresContainer
	dbConfig          *config.DatabaseConfig
}

func (s *DatabaseTestSuite) SetupSuite() {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:15.3-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.postgresContainer = postgresContainer

	host, err := postgresContainer.Host(ctx)
	s.Require().NoError(err)
	port, err := postgresContainer.MappedPort(ctx, "5432")
	s.Require().NoError(err)

	s.dbConfig = &config.DatabaseConfig{
		Postgres: config.PostgresConfig{
			Host:         host,
			Port:         port.Int(),
			User:         "testuser",
			Password:     "testpass",
			Database:     "testdb",
			SSLMode:      "disable",
			MaxOpenConns: 5,
			MaxIdleConns: 1,
		},
	}
}

func (s *DatabaseTestSuite) TearDownSuite() {
	if s.postgresContainer != nil {
		s.Require().NoError(s.postgresContainer.Terminate(context.Background()))
	}
}

func (s *DatabaseTestSuite) TestLifecycle_StartTestStop() {
	lifecycle := NewDatabaseLifecycle(s.dbConfig, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Require().NoError(lifecycle.Start(ctx))
	s.Assert().NoError(lifecycle.TestConnection(ctx))

	s.Require().NoError(lifecycle.Stop(ctx))
	s.Assert().ErrorIs(lifecycle.TestConnection(ctx), ErrNotConnected)
	s.Assert().NoError(lifecycle.Stop(ctx), "second stop")
}

func (s *DatabaseTestSuite) TestLifecycle_StartPingFails() {
	cfg := *s.dbConfig
	cfg.Postgres.Port = 9999
	lifecycle := NewDatabaseLifecycle(&cfg, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s.Assert().Error(lifecycle.Start(ctx))
	s.Assert().Nil(lifecycle.Connection())
}

func TestDatabaseSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(DatabaseTestSuite))
}
