package health

import (
	"context"
	"time"
)

type Mode string

const (
	ModeLiveness  Mode = "liveness"
	ModeReadiness Mode = "readiness"
	ModeDetailed  Mode = "detailed"
)

const (
	MessageTimeout  = "timeout"
	MessageCanceled = "canceled"
)

// ProbeResult is the outcome of a single dependency check.
type ProbeResult struct {
	Healthy bool
	Message string
	Info    map[string]any
	Latency time.Duration
}

func Healthy(message string) ProbeResult {
	return ProbeResult{Healthy: true, Message: message}
}

func Unhealthy(message string) ProbeResult {
	return ProbeResult{Healthy: false, Message: message}
}

func (r ProbeResult) WithInfo(info map[string]any) ProbeResult {
	r.Info = info
	return r
}

// Probe checks one backing dependency. Check must convert every failure into
// an unhealthy result instead of returning an error or panicking.
type Probe interface {
	Name() string
	Check(ctx context.Context) ProbeResult
}

type NamedResult struct {
	Name   string
	Result ProbeResult
}

type CompositeStatus struct {
	Checks         []NamedResult
	OverallHealthy bool
	CheckedAt      time.Time
	Uptime         time.Duration
	RunID          string
}

// NewCompositeStatus is the only place OverallHealthy is derived.
func NewCompositeStatus(checks []NamedResult, checkedAt time.Time, uptime time.Duration, runID string) CompositeStatus {
	healthy := true
	for _, c := range checks {
		if !c.Result.Healthy {
			healthy = false
			break
		}
	}

	return CompositeStatus{
		Checks:         checks,
		OverallHealthy: healthy,
		CheckedAt:      checkedAt,
		Uptime:         uptime,
		RunID:          runID,
	}
}

func (s CompositeStatus) Result(name string) (ProbeResult, bool) {
	for _, c := range s.Checks {
		if c.Name == name {
			return c.Result, true
		}
	}
	return ProbeResult{}, false
}

func (s CompositeStatus) Names() []string {
	names := make([]string, len(s.Checks))
	for i, c := range s.Checks {
		names[i] = c.Name
	}
	return names
}

type AggregatorInterface interface {
	Run(ctx context.Context, mode Mode) (CompositeStatus, error)
}

// Recorder receives every probe outcome, e.g. for metrics.
type Recorder interface {
	RecordProbe(ctx context.Context, name string, result ProbeResult)
}
