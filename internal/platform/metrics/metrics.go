package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"messenger/internal/platform/health"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter
	ProbeDuration    metric.Float64Histogram
	ProbeFailures    metric.Int64Counter
	registry         *prometheus.Registry
}

// Compile-time interface check
var _ health.Recorder = (*Provider)(nil)

func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter("messenger")

	requestsTotal, err := meter.Int64Counter(
		"http_requests",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	requestsInFlight, err := meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	if err != nil {
		return nil, err
	}

	probeDuration, err := meter.Float64Histogram(
		"health_probe_duration",
		metric.WithDescription("Dependency probe latency in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10),
	)
	if err != nil {
		return nil, err
	}

	probeFailures, err := meter.Int64Counter(
		"health_probe_failures",
		metric.WithDescription("Number of unhealthy dependency probe results"),
	)
	if err != nil {
		return nil, err
	}

	return &Provider{
		RequestsTotal:    requestsTotal,
		RequestDuration:  requestDuration,
		RequestsInFlight: requestsInFlight,
		ProbeDuration:    probeDuration,
		ProbeFailures:    probeFailures,
		registry:         registry,
	}, nil
}

func (p *Provider) RecordProbe(ctx context.Context, name string, result health.ProbeResult) {
	p.ProbeDuration.Record(ctx, result.Latency.Seconds(),
		metric.WithAttributes(
			attribute.String("dependency", name),
			attribute.Bool("healthy", result.Healthy),
		),
	)

	if !result.Healthy {
		p.ProbeFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("dependency", name)))
	}
}

// RecordRequest records one served request. route must be a registered
// pattern, never the raw path.
func (p *Provider) RecordRequest(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	attrs := metric.WithAttributeSet(attribute.NewSet(
		attribute.String("method", method),
		attribute.String("path", route),
		attribute.String("status", strconv.Itoa(status)),
	))

	p.RequestsTotal.Add(ctx, 1, attrs)
	p.RequestDuration.Record(ctx, elapsed.Seconds(), attrs)
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
