package database

import (
	"context"
	"errors"
	"fmt"
	"messenger/internal/platform/database/postgres"
	"messenger/internal/platform/logger"
	"sync"

	"messenger/internal/config"
)

var ErrNotConnected = errors.New("database connection is not initialized")

type Lifecycle struct {
	cfg     *config.DatabaseConfig
	logger  logger.Logger
	db      *postgres.DB
	mu      sync.Mutex
	connect func(postgres.Config) (*postgres.DB, error)
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:     cfg,
		logger:  log,
		connect: postgres.New,
	}
}

func (d *Lifecycle) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Close existing connection if any
	if d.db != nil {
		d.logger.Warn("Database connection already exists, closing existing connection")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database connection", logger.Error(err))
		}
		d.db = nil
	}

	d.logger.Info("Starting database connection",
		logger.String("addr", d.cfg.Postgres.Address()),
		logger.String("database", d.cfg.Postgres.Database),
	)

	db, err := d.connect(&d.cfg.Postgres)
	if err != nil {
		d.logger.Error("Failed to create PostgreSQL connection", logger.Error(err))
		return err
	}

	if err := db.Ping(ctx); err != nil {
		d.logger.Error("Failed to ping PostgreSQL", logger.Error(err))
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Error("Failed to close database after ping failure", logger.Error(closeErr))
		}
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	d.db = db
	d.logger.Info("Successfully connected to PostgreSQL database")
	return nil
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	d.logger.Info("Closing database connection")

	done := make(chan error, 1)
	go func() {
		done <- d.db.Close()
	}()

	select {
	case err := <-done:
		d.db = nil
		if err != nil {
			d.logger.Error("Error closing database connection", logger.Error(err))
			return err
		}
		d.logger.Info("Database connection closed successfully")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Database shutdown timeout, forcing close")
		d.db = nil
		return ctx.Err()
	}
}

func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

// TestConnection pings the pool without holding the lifecycle lock for the
// duration of the round trip.
func (d *Lifecycle) TestConnection(ctx context.Context) error {
	db := d.Connection()
	if db == nil {
		return ErrNotConnected
	}
	return db.Ping(ctx)
}
