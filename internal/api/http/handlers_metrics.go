package http

import (
	"github.com/GriffinCanCode/AgentOS/fileserver/internal/infrastructure/monitoring"
)

// HandlerMetrics wraps the metrics the handlers report directly.
// A nil *HandlerMetrics or nil metrics is valid and records nothing.
type HandlerMetrics struct {
	metrics *monitoring.Metrics
}

// NewHandlerMetrics creates a metrics wrapper
func NewHandlerMetrics(metrics *monitoring.Metrics) *HandlerMetrics {
	return &HandlerMetrics{metrics: metrics}
}

// TrackSearch records the size of a search result
func (hm *HandlerMetrics) TrackSearch(results int) {
	if hm == nil || hm.metrics == nil {
		return
	}
	hm.metrics.ObserveSearchResults(results)
}

// Snapshot returns the current counters, or nil when metrics are disabled
func (hm *HandlerMetrics) Snapshot() *monitoring.Snapshot {
	if hm == nil || hm.metrics == nil {
		return nil
	}
	s := hm.metrics.Snapshot()
	return &s
}
