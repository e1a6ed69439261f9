package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devhub/devhub/internal/metrics"
)

func TestMetricsHandler(t *testing.T) {
	t.Parallel()

	recorder := metrics.NewInMemory()
	recorder.IncLoginSuccess()
	recorder.IncLoginFailure()
	recorder.IncAppCreated()
	recorder.IncAppListCacheMiss()

	h := NewMetricsHandler(recorder)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.Metrics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain exposition", ct)
	}

	body := rec.Body.String()
	expected := []string{
		`devhub_logins_total{status="success"} 1`,
		`devhub_logins_total{status="failure"} 1`,
		"devhub_apps_created_total 1",
		"devhub_apps_updated_total 0",
		"devhub_app_list_cache_misses_total 1",
	}
	for _, line := range expected {
		if !strings.Contains(body, line) {
			t.Errorf("metrics output missing %q; got:\n%s", line, body)
		}
	}
}

func TestMetricsHandler_NoSnapshotter(t *testing.T) {
	t.Parallel()

	h := NewMetricsHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	h.Metrics(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
