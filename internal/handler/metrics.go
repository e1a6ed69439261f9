package handler

import (
	"fmt"
	"net/http"

	"github.com/devhub/devhub/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "devhub_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "devhub_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)

	writeMetric(w, "devhub_apps_created_total %d\n", snap.AppsCreated)
	writeMetric(w, "devhub_apps_updated_total %d\n", snap.AppsUpdated)
	writeMetric(w, "devhub_apps_deleted_total %d\n", snap.AppsDeleted)

	writeMetric(w, "devhub_app_list_cache_hits_total %d\n", snap.AppListCacheHits)
	writeMetric(w, "devhub_app_list_cache_misses_total %d\n", snap.AppListCacheMisses)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
