package middleware

import (
	"messenger/internal/platform/logger"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger attaches a request-scoped logger to the context and logs one
// line per request. Requests to quietPaths are logged at debug level unless
// they end in a 500; the health handlers report dependency failures themselves.
func RequestLogger(baseLogger logger.Logger, quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		quiet[normalizePath(p)] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			reqID := middleware.GetReqID(r.Context())
			contextLogger := baseLogger.With(logger.String("request_id", reqID))
			ctx := logger.WithLogger(r.Context(), contextLogger)

			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			fields := []logger.Field{
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("remote_addr", r.RemoteAddr),
				logger.Int("status", status),
				logger.Duration("duration", time.Since(start)),
			}

			_, isQuiet := quiet[normalizePath(r.URL.Path)]
			switch {
			case isQuiet && status != http.StatusInternalServerError:
				contextLogger.Debug("HTTP Request", fields...)
			case status >= http.StatusInternalServerError:
				contextLogger.Error("HTTP Request", fields...)
			default:
				contextLogger.Info("HTTP Request", fields...)
			}
		})
	}
}
