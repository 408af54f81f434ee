package http

import (
	"messenger/internal/platform/logger"
	"messenger/internal/platform/metrics"
	platformMiddleware "messenger/internal/platform/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"messenger/internal/adapters/http/health"
	"messenger/internal/config"
	httpErrors "messenger/internal/platform/http"
)

const (
	LivenessPath  = "/health"
	ReadinessPath = "/health/ready"
	DetailedPath  = "/health/detailed"
	MetricsPath   = "/metrics"
)

type RouterDependencies struct {
	Config           *config.HttpConfig
	Logger           logger.Logger
	LivenessHandler  *health.LivenessHandler
	ReadinessHandler *health.ReadinessHandler
	DetailedHandler  *health.DetailedHandler
	MetricsProvider  *metrics.Provider
}

func NewRouter(deps RouterDependencies) http.Handler {
	cfg := deps.Config
	log := deps.Logger
	r := chi.NewRouter()
	healthPaths := []string{LivenessPath, ReadinessPath, DetailedPath}

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(platformMiddleware.RequestLogger(log, healthPaths...))
	r.Use(platformMiddleware.MetricsMiddleware(deps.MetricsProvider))
	r.Use(platformMiddleware.Recovery(log))
	r.Use(middleware.StripSlashes)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	r.Use(platformMiddleware.SkipPaths(
		httprate.LimitAll(cfg.RateLimit.GlobalRequests, cfg.RateLimit.GlobalWindow),
		healthPaths...,
	))
	r.Use(platformMiddleware.SkipPaths(
		httprate.LimitByIP(cfg.RateLimit.RequestsPerIP, cfg.RateLimit.IPWindow),
		healthPaths...,
	))

	r.NotFound(ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
		return httpErrors.NewNotFound("route not found", nil)
	}))
	r.MethodNotAllowed(ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
		return httpErrors.New(http.StatusMethodNotAllowed, "method not allowed", nil)
	}))

	r.Get(LivenessPath, deps.LivenessHandler.Check)
	r.Get(ReadinessPath, ErrorHandler(deps.ReadinessHandler.Check))
	r.Get(DetailedPath, ErrorHandler(deps.DetailedHandler.Check))

	r.Handle(MetricsPath, deps.MetricsProvider.Handler())

	return r
}
