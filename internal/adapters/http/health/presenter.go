package health

import (
	"net/http"
	"time"

	"messenger/internal/platform/health"
)

func statusCode(healthy bool) int {
	if healthy {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func seconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// PresentLiveness never reports anything but 200.
func PresentLiveness(now time.Time, uptime time.Duration) (int, LivenessResponse) {
	return http.StatusOK, LivenessResponse{
		Status:    StatusOK,
		Timestamp: now.UTC(),
		Uptime:    seconds(uptime),
	}
}

func PresentReadiness(status health.CompositeStatus) (int, ReadinessResponse) {
	checks := make(OrderedChecks[bool], len(status.Checks))
	for i, c := range status.Checks {
		checks[i] = CheckEntry[bool]{Name: c.Name, Value: c.Result.Healthy}
	}

	body := ReadinessResponse{
		Status:    StatusReady,
		Checks:    checks,
		Timestamp: status.CheckedAt.UTC(),
	}
	if !status.OverallHealthy {
		body.Status = StatusNotReady
	}

	return statusCode(status.OverallHealthy), body
}

func PresentDetailed(status health.CompositeStatus, version string) (int, DetailedResponse) {
	checks := make(OrderedChecks[CheckDetail], len(status.Checks))
	for i, c := range status.Checks {
		checks[i] = CheckEntry[CheckDetail]{
			Name: c.Name,
			Value: CheckDetail{
				Healthy:   c.Result.Healthy,
				Message:   c.Result.Message,
				Info:      c.Result.Info,
				LatencyMs: milliseconds(c.Result.Latency),
			},
		}
	}

	body := DetailedResponse{
		Status:    StatusHealthy,
		Checks:    checks,
		Timestamp: status.CheckedAt.UTC(),
		Uptime:    seconds(status.Uptime),
		Version:   version,
	}
	if !status.OverallHealthy {
		body.Status = StatusUnhealthy
	}

	return statusCode(status.OverallHealthy), body
}
