package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsForTesting(t *testing.T) {
	// Creating two instances must not panic, unlike double registration
	m1 := NewMetricsForTesting()
	m2 := NewMetricsForTesting()
	if m1 == nil || m2 == nil {
		t.Fatal("Expected metrics instances, got nil")
	}
}

func TestCounters(t *testing.T) {
	m := NewMetricsForTesting()

	m.ToolRequests.WithLabelValues("get_wind_forecast", OutcomeOK).Inc()
	m.ToolRequests.WithLabelValues("get_wind_forecast", OutcomeOK).Inc()
	m.ToolRequests.WithLabelValues("get_wind_forecast", OutcomeError).Inc()

	ok := testutil.ToFloat64(m.ToolRequests.WithLabelValues("get_wind_forecast", OutcomeOK))
	if ok != 2 {
		t.Errorf("Expected 2 ok requests, got %v", ok)
	}
	failed := testutil.ToFloat64(m.ToolRequests.WithLabelValues("get_wind_forecast", OutcomeError))
	if failed != 1 {
		t.Errorf("Expected 1 failed request, got %v", failed)
	}

	m.TideFallbacks.Inc()
	if got := testutil.ToFloat64(m.TideFallbacks); got != 1 {
		t.Errorf("Expected 1 tide fallback, got %v", got)
	}
}
