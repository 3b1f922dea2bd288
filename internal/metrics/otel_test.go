package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledInitializesRecorderAndHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled:     true,
		ServiceName: "league-stats-service",
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}

	// Exercise otel-backed recorders to ensure no panic.
	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordAwardCycle(time.Millisecond, nil)
	rec.RecordQuery("games", time.Millisecond, errors.New("timeout"))
	rec.RecordBadgeAwarded("triple_double")
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry failed")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatalf("expected reader error to propagate")
	}
}

func TestSetupServesPrometheusScrape(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	rec.RecordBadgeAwarded("sharpshooter")

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected scrape to succeed, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "sharpshooter") {
		t.Fatalf("expected badge attribute in scrape output")
	}
}

func TestObservePoolExportsGauge(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	if err := rec.ObservePool(func() PoolStats { return PoolStats{Total: 4, Idle: 3, Acquired: 1} }); err != nil {
		t.Fatalf("observe pool: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	if !strings.Contains(body, "db_pool_connections") || !strings.Contains(body, `state="acquired"`) {
		t.Fatalf("expected pool gauge in scrape output, got %s", body)
	}
}

func TestObservePoolWithoutTelemetryIsNoop(t *testing.T) {
	var nilRec *Recorder
	if err := nilRec.ObservePool(func() PoolStats { return PoolStats{} }); err != nil {
		t.Fatalf("expected nil recorder to ignore pool stats, got %v", err)
	}
	if err := NewRecorder().ObservePool(nil); err != nil {
		t.Fatalf("expected plain recorder to ignore pool stats, got %v", err)
	}
}
