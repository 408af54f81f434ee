package health

import (
	"net/http"

	"messenger/internal/adapters/http/response"
	"messenger/internal/platform/health"
	httpErrors "messenger/internal/platform/http"
	"messenger/internal/platform/logger"
)

const aggregationFailedMessage = "health aggregation failed"

type ReadinessHandler struct {
	aggregator health.AggregatorInterface
}

func NewReadinessHandler(aggregator health.AggregatorInterface) *ReadinessHandler {
	return &ReadinessHandler{
		aggregator: aggregator,
	}
}

func (h *ReadinessHandler) Check(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	status, err := h.aggregator.Run(ctx, health.ModeReadiness)
	if err != nil {
		return httpErrors.NewInternalServerError(aggregationFailedMessage, err)
	}

	code, body := PresentReadiness(status)
	if code != http.StatusOK {
		logger.FromContext(ctx).Warn("Readiness check failed",
			logger.String("status", body.Status),
			logger.String("health_run_id", status.RunID),
		)
	}

	response.RespondJSON(w, code, body)
	return nil
}
