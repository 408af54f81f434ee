package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"messenger/internal/platform/health"
)

type MetricsTestSuite struct {
	suite.Suite
	provider *Provider
}

func (s *MetricsTestSuite) SetupTest() {
	var err error
	s.provider, err = NewProvider()
	s.Require().NoError(err)
	s.Require().NotNil(s.provider)
}

func (s *MetricsTestSuite) scrape() string {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	s.provider.Handler().ServeHTTP(w, req)

	s.Require().Equal(http.StatusOK, w.Code)
	return w.Body.String()
}

func (s *MetricsTestSuite) TestNewProvider_Success() {
	s.Assert().NotNil(s.provider.RequestsTotal)
	s.Assert().NotNil(s.provider.RequestDuration)
	s.Assert().NotNil(s.provider.RequestsInFlight)
	s.Assert().NotNil(s.provider.ProbeDuration)
	s.Assert().NotNil(s.provider.ProbeFailures)
	s.Assert().NotNil(s.provider.registry)
}

func (s *MetricsTestSuite) TestNewProvider_IndependentRegistries() {
	other, err := NewProvider()
	s.Require().NoError(err)

	s.Assert().NotSame(s.provider.registry, other.registry)
}

func (s *MetricsTestSuite) TestRecordRequest() {
	ctx := context.Background()

	for range 3 {
		s.provider.RecordRequest(ctx, http.MethodGet, "/health/ready", http.StatusServiceUnavailable, 20*time.Millisecond)
	}
	s.provider.RequestsInFlight.Add(ctx, 1)

	body := s.scrape()

	s.Assert().Contains(body, "http_request_duration")
	s.Assert().Contains(body, "http_requests_in_flight")
	s.Assert().Regexp(`http_requests\w*\{[^}]*path="/health/ready"[^}]*status="503"[^}]*\} 3`, body)
}

func (s *MetricsTestSuite) TestRecordProbe_Healthy() {
	s.provider.RecordProbe(context.Background(), "db", health.ProbeResult{Healthy: true, Latency: 12 * time.Millisecond})

	body := s.scrape()

	s.Assert().Contains(body, "health_probe_duration")
	s.Assert().Contains(body, `dependency="db"`)
	s.Assert().Contains(body, `healthy="true"`)
	s.Assert().NotContains(body, "health_probe_failures")
}

func (s *MetricsTestSuite) TestRecordProbe_Unhealthy() {
	ctx := context.Background()
	result := health.Unhealthy("timeout")
	result.Latency = 5 * time.Second

	s.provider.RecordProbe(ctx, "redis", result)
	s.provider.RecordProbe(ctx, "redis", result)

	body := s.scrape()

	s.Assert().Contains(body, "health_probe_failures")
	s.Assert().Contains(body, `healthy="false"`)
	s.Assert().Regexp(`health_probe_failures\w*\{[^}]*dependency="redis"[^}]*\} 2`, body)
}

func (s *MetricsTestSuite) TestRecordProbe_Concurrent() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.provider.RecordProbe(context.Background(), "storage", health.Unhealthy("down"))
		}()
	}
	wg.Wait()

	s.Assert().Regexp(`health_probe_failures\w*\{[^}]*dependency="storage"[^}]*\} 20`, s.scrape())
}

func BenchmarkProvider_RecordProbe(b *testing.B) {
	provider, err := NewProvider()
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	result := health.Healthy("ok")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		provider.RecordProbe(ctx, "db", result)
	}
}

func TestMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsTestSuite))
}
