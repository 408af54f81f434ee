package health

import (
	"net/http"
	"time"

	"messenger/internal/adapters/http/response"
	"messenger/internal/platform/process"
)

// LivenessHandler reports that the process can serve requests. It never
// touches a dependency.
type LivenessHandler struct {
	now    func() time.Time
	uptime func() time.Duration
}

func NewLivenessHandler() *LivenessHandler {
	return &LivenessHandler{
		now:    time.Now,
		uptime: process.Uptime,
	}
}

func (h *LivenessHandler) Check(w http.ResponseWriter, r *http.Request) {
	code, body := PresentLiveness(h.now(), h.uptime())
	response.RespondJSON(w, code, body)
}
