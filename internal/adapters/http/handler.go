package http

import (
	"errors"
	httpErrors "messenger/internal/platform/http"
	"messenger/internal/platform/logger"
	"net/http"

	"messenger/internal/adapters/http/response"
)

type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler writes the error returned by next as a JSON body. Messages of
// *httpErrors.Error reach the client; anything else becomes a generic 500.
func ErrorHandler(next HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := next(w, r)
		if err == nil {
			return
		}

		log := logger.FromContext(r.Context()).With(
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
		)
		status := httpErrors.StatusOf(err)

		var httpErr *httpErrors.Error
		if !errors.As(err, &httpErr) {
			log.Error("Unexpected server error", logger.Error(err))
			response.RespondError(w, status, errors.New("internal server error"))
			return
		}

		if status >= http.StatusInternalServerError {
			fields := []logger.Field{logger.Int("status", status), logger.String("message", httpErr.Error())}
			if httpErr.Err != nil {
				fields = append(fields, logger.Error(httpErr.Err))
			}
			log.Error("Request failed", fields...)
		}
		response.RespondError(w, status, httpErr)
	}
}
