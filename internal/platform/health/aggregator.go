package health

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"messenger/internal/platform/logger"
	"messenger/internal/platform/process"

	"github.com/oklog/ulid"
	"golang.org/x/sync/errgroup"
)

type Option func(*Aggregator)

func WithRecorder(recorder Recorder) Option {
	return func(a *Aggregator) {
		a.recorder = recorder
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

func WithStartTime(startedAt time.Time) Option {
	return func(a *Aggregator) {
		a.startedAt = startedAt
	}
}

// Aggregator runs every registered probe concurrently and merges the results.
// It keeps no state between runs; overlapping requests run independent probe sets.
type Aggregator struct {
	registry     *Registry
	probeTimeout time.Duration
	recorder     Recorder
	now          func() time.Time
	startedAt    time.Time
	newRunID     func() string
}

// Compile-time interface check
var _ AggregatorInterface = (*Aggregator)(nil)

func NewAggregator(registry *Registry, probeTimeout time.Duration, opts ...Option) (*Aggregator, error) {
	if registry == nil {
		return nil, ErrNoProbes
	}
	if probeTimeout <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeout, probeTimeout)
	}

	a := &Aggregator{
		registry:     registry,
		probeTimeout: probeTimeout,
		now:          time.Now,
		startedAt:    process.StartedAt(),
		newRunID: func() string {
			return ulid.MustNew(ulid.Now(), rand.Reader).String()
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Aggregator) ProbeTimeout() time.Duration {
	return a.probeTimeout
}

// Run executes the probes and waits for every one of them to finish or time
// out. Dependency failures are reported inside the CompositeStatus; the error
// return is reserved for faults of the aggregator itself.
func (a *Aggregator) Run(ctx context.Context, mode Mode) (CompositeStatus, error) {
	runID := a.newRunID()
	checkedAt := a.now().UTC()

	if mode == ModeLiveness {
		return NewCompositeStatus(nil, checkedAt, a.uptime(), runID), nil
	}

	probes := a.registry.All()
	if len(probes) == 0 {
		return CompositeStatus{}, ErrNoProbes
	}

	log := logger.FromContext(ctx).With(
		logger.String("health_run_id", runID),
		logger.String("mode", string(mode)),
	)

	results := make([]NamedResult, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			results[i] = NamedResult{Name: p.Name(), Result: a.runProbe(ctx, p)}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if a.recorder != nil {
			a.recorder.RecordProbe(ctx, r.Name, r.Result)
		}
		if !r.Result.Healthy {
			log.Warn("Health probe failed",
				logger.String("dependency", r.Name),
				logger.String("message", r.Result.Message),
				logger.Duration("latency", r.Result.Latency),
			)
		}
	}

	status := NewCompositeStatus(results, checkedAt, a.uptime(), runID)
	log.Debug("Health aggregation completed", logger.Bool("healthy", status.OverallHealthy))

	return status, nil
}

func (a *Aggregator) runProbe(ctx context.Context, p Probe) ProbeResult {
	probeCtx, cancel := context.WithTimeout(ctx, a.probeTimeout)
	defer cancel()

	start := time.Now()
	done := make(chan ProbeResult, 1)

	// The probe goroutine is abandoned on timeout; the buffered channel lets it
	// finish without blocking once its client returns.
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- Unhealthy(fmt.Sprintf("probe panicked: %v", rec))
			}
		}()
		done <- p.Check(probeCtx)
	}()

	select {
	case result := <-done:
		// An unhealthy result that raced the deadline is reported as the deadline.
		if result.Healthy || probeCtx.Err() == nil {
			result.Latency = time.Since(start)
			return result
		}
	case <-probeCtx.Done():
	}

	return a.expired(ctx, start)
}

func (a *Aggregator) expired(ctx context.Context, start time.Time) ProbeResult {
	switch {
	case errors.Is(ctx.Err(), context.Canceled):
		result := Unhealthy(MessageCanceled)
		result.Latency = time.Since(start)
		return result
	case ctx.Err() != nil:
		result := Unhealthy(MessageTimeout)
		result.Latency = time.Since(start)
		return result
	default:
		result := Unhealthy(MessageTimeout)
		result.Latency = a.probeTimeout
		return result
	}
}

func (a *Aggregator) uptime() time.Duration {
	uptime := a.now().Sub(a.startedAt)
	if uptime < 0 {
		return 0
	}
	return uptime
}
