package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestHTTPMetricsExportsCounterAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	metrics.ObserveRequest("GET", "/inventory", "200", 40*time.Millisecond)
	metrics.ObserveRequest("GET", "/inventory", "200", 15*time.Millisecond)
	metrics.ObserveRequest("POST", "/inventory", "409", 5*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	got, err := fetchCounterValue(mfs, "http_requests_total", map[string]string{
		"method": "GET", "route": "/inventory", "status": "200",
	})
	if err != nil {
		t.Fatalf("fetch counter: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected 2 GET requests, got %v", got)
	}

	count, err := fetchHistogramCount(mfs, "http_request_duration_seconds", map[string]string{
		"method": "POST", "route": "/inventory",
	})
	if err != nil {
		t.Fatalf("fetch histogram: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 POST observation, got %d", count)
	}
}

func TestHTTPMetricsNilReceiverIsNoop(t *testing.T) {
	var metrics *HTTPMetrics
	metrics.ObserveRequest("GET", "/", "200", time.Millisecond)

	empty := NewHTTPMetrics(nil)
	empty.ObserveRequest("GET", "/", "200", time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric, labels) {
				return metric.GetCounter().GetValue(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %s with labels %v not found", name, labels)
}

func fetchHistogramCount(mfs []*dto.MetricFamily, name string, labels map[string]string) (uint64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if labelsMatch(metric, labels) {
				return metric.GetHistogram().GetSampleCount(), nil
			}
		}
	}
	return 0, fmt.Errorf("metric %s with labels %v not found", name, labels)
}

func labelsMatch(metric *dto.Metric, labels map[string]string) bool {
	found := 0
	for _, pair := range metric.GetLabel() {
		if want, ok := labels[pair.GetName()]; ok {
			if pair.GetValue() != want {
				return false
			}
			found++
		}
	}
	return found == len(labels)
}
