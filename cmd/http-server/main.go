package main

import (
	"fmt"

	"messenger/internal/adapters/cache"
	"messenger/internal/adapters/database"
	"messenger/internal/adapters/health"
	httpAdapter "messenger/internal/adapters/http"
	healthHttp "messenger/internal/adapters/http/health"
	"messenger/internal/adapters/storage"
	"messenger/internal/adapters/validator"
	"messenger/internal/config"
	platformHealth "messenger/internal/platform/health"
	"messenger/internal/platform/logger"
	"messenger/internal/platform/metrics"
	validatorPlatform "messenger/internal/platform/validator"
	"messenger/internal/version"

	"go.uber.org/fx"
)

func main() {
	fx.New(appModule).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadBase),
	fx.Provide(config.LoadHttp),
	fx.Provide(config.LoadDatabase),
	fx.Provide(config.LoadCache),
	fx.Provide(config.LoadStorage),
	fx.Provide(config.LoadHealth),
	fx.Provide(func(cfg *config.BaseConfig) logger.Config {
		return cfg.LoggerConfig()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validator.NewPlaygroundAdapter),
	fx.Invoke(validateConfigs),
	fx.Invoke(logBuildInfo),

	// Dependencies
	fx.Provide(database.NewDatabaseLifecycle),
	fx.Provide(cache.NewCacheLifecycle),
	fx.Provide(storage.NewStorageLifecycle),

	// Health Checks
	fx.Provide(func(db *database.Lifecycle) *health.DatabaseProbe {
		return health.NewDatabaseProbe(db)
	}),
	fx.Provide(func(c *cache.Lifecycle) *health.CacheProbe {
		return health.NewCacheProbe(c)
	}),
	fx.Provide(func(s *storage.Lifecycle) *health.StorageProbe {
		return health.NewStorageProbe(s)
	}),
	fx.Provide(func(db *health.DatabaseProbe, c *health.CacheProbe, s *health.StorageProbe) (*platformHealth.Registry, error) {
		return platformHealth.NewRegistry(db, c, s)
	}),
	fx.Provide(fx.Annotate(
		func(registry *platformHealth.Registry, cfg *config.HealthConfig, recorder *metrics.Provider) (*platformHealth.Aggregator, error) {
			return platformHealth.NewAggregator(registry, cfg.ProbeTimeout, platformHealth.WithRecorder(recorder))
		},
		fx.As(new(platformHealth.AggregatorInterface)),
	)),

	// HTTP Server
	fx.Provide(metrics.NewProvider),
	fx.Provide(httpAdapter.NewServer),
	fx.Provide(httpAdapter.NewRouter),
	fx.Provide(healthHttp.NewLivenessHandler),
	fx.Provide(healthHttp.NewReadinessHandler),
	fx.Provide(func(aggregator platformHealth.AggregatorInterface) *healthHttp.DetailedHandler {
		return healthHttp.NewDetailedHandler(version.Get(), aggregator)
	}),
	fx.Provide(func(cfg *config.HttpConfig, log logger.Logger, liveness *healthHttp.LivenessHandler, readiness *healthHttp.ReadinessHandler, detailed *healthHttp.DetailedHandler, metrics *metrics.Provider) httpAdapter.RouterDependencies {
		return httpAdapter.RouterDependencies{
			Config:           cfg,
			Logger:           log,
			LivenessHandler:  liveness,
			ReadinessHandler: readiness,
			DetailedHandler:  detailed,
			MetricsProvider:  metrics,
		}
	}),

	// Lifecycle Hooks
	fx.Invoke(func(lc fx.Lifecycle, db *database.Lifecycle, c *cache.Lifecycle, s *storage.Lifecycle, srv *httpAdapter.Server) {
		lc.Append(fx.Hook{
			OnStart: db.Start,
			OnStop:  db.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: c.Start,
			OnStop:  c.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: s.Start,
			OnStop:  s.Stop,
		})
		lc.Append(fx.Hook{
			OnStart: srv.Start,
			OnStop:  srv.Stop,
		})
	}),

	//fx.NopLogger,
)

func validateConfigs(
	v validatorPlatform.Validator,
	base *config.BaseConfig,
	httpCfg *config.HttpConfig,
	dbCfg *config.DatabaseConfig,
	cacheCfg *config.CacheConfig,
	storageCfg *config.StorageConfig,
	healthCfg *config.HealthConfig,
) error {
	for _, cfg := range []any{base, httpCfg, dbCfg, cacheCfg, storageCfg, healthCfg} {
		if err := v.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}

func logBuildInfo(cfg *config.BaseConfig, log logger.Logger) {
	info := version.Info()
	log.Info("Starting messenger health service",
		logger.String("version", info.Version),
		logger.String("commit", info.GitCommit),
		logger.String("build_time", info.BuildTime),
		logger.String("environment", cfg.Environment),
	)
}
