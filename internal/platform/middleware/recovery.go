package middleware

import (
	"messenger/internal/platform/logger"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"
)

const recoveredBody = `{"error":"internal server error"}` + "\n"

// Recovery turns a panic into a JSON 500. http.ErrAbortHandler is re-raised
// so net/http can abort the connection as intended.
func Recovery(log logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("Panic recovered",
					logger.String("request_id", middleware.GetReqID(r.Context())),
					logger.String("method", r.Method),
					logger.String("path", r.URL.Path),
					logger.String("remote_addr", r.RemoteAddr),
					logger.Any("panic", rec),
					logger.String("stack", string(debug.Stack())),
				)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(recoveredBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
