package http

import (
	"errors"
	"fmt"
	httpErrors "messenger/internal/platform/http"
	"messenger/internal/platform/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func serve(handler HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), logger.NewNop()))
	w := httptest.NewRecorder()

	ErrorHandler(handler)(w, req)
	return w
}

func TestErrorHandler_Success(t *testing.T) {
	w := serve(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("success"))
		return err
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", w.Body.String())
}

func TestErrorHandler_HTTPErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "aggregation fault",
			err:      httpErrors.NewInternalServerError("health aggregation failed", errors.New("no health probes registered")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"health aggregation failed"}`,
		},
		{
			name:     "not found",
			err:      httpErrors.NewNotFound("route not found", nil),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"route not found"}`,
		},
		{
			name:     "wrapped http error",
			err:      fmt.Errorf("readiness: %w", httpErrors.New(http.StatusMethodNotAllowed, "method not allowed", nil)),
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `{"error":"method not allowed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(func(w http.ResponseWriter, r *http.Request) error {
				return tt.err
			})

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	w := serve(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("database password leaked in message")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestErrorHandler_WithoutContextLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	w := httptest.NewRecorder()

	ErrorHandler(func(w http.ResponseWriter, r *http.Request) error {
		return errors.New("boom")
	})(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
