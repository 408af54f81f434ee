package health

import (
	"net/http"

	"messenger/internal/adapters/http/response"
	"messenger/internal/platform/health"
	httpErrors "messenger/internal/platform/http"
)

type DetailedHandler struct {
	version    string
	aggregator health.AggregatorInterface
}

func NewDetailedHandler(version string, aggregator health.AggregatorInterface) *DetailedHandler {
	return &DetailedHandler{
		version:    version,
		aggregator: aggregator,
	}
}

func (h *DetailedHandler) Check(w http.ResponseWriter, r *http.Request) error {
	status, err := h.aggregator.Run(r.Context(), health.ModeDetailed)
	if err != nil {
		return httpErrors.NewInternalServerError(aggregationFailedMessage, err)
	}

	code, body := PresentDetailed(status, h.version)
	response.RespondJSON(w, code, body)
	return nil
}
