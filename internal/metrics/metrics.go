// Package metrics provides Prometheus metrics for bactrack.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RecommendationsTotal counts recommendations served, by filter path.
	RecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bactrack_recommendations_total",
		Help: "Total number of recommendations served, by filter path.",
	}, []string{"path"})

	// EmptyRecommendationsTotal counts recommendations where no drink qualified, by filter path.
	EmptyRecommendationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bactrack_recommendations_empty_total",
		Help: "Total number of recommendations with no qualifying drink, by filter path.",
	}, []string{"path"})

	// ReadingsTotal counts BAC readings recorded, by source.
	ReadingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bactrack_readings_total",
		Help: "Total number of BAC readings recorded, by source.",
	}, []string{"source"})

	// DrinksLoggedTotal counts drinks logged against sessions.
	DrinksLoggedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bactrack_drinks_logged_total",
		Help: "Total number of drinks logged.",
	})

	// SessionsStartedTotal counts sessions started, by whether a drive time was set.
	SessionsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bactrack_sessions_started_total",
		Help: "Total number of sessions started, by drive time presence.",
	}, []string{"drive_time"})

	// HTTPRequestsTotal counts HTTP API requests, by route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bactrack_http_requests_total",
		Help: "Total number of HTTP API requests, by route and status.",
	}, []string{"route", "status"})
)

// RecordRecommendation counts a served recommendation and whether it was empty.
func RecordRecommendation(path string, qualified int) {
	RecommendationsTotal.WithLabelValues(path).Inc()
	if qualified == 0 {
		EmptyRecommendationsTotal.WithLabelValues(path).Inc()
	}
}

// RecordReading counts a recorded reading.
func RecordReading(source string) {
	ReadingsTotal.WithLabelValues(source).Inc()
}

// RecordDrink counts a logged drink.
func RecordDrink() {
	DrinksLoggedTotal.Inc()
}

// RecordSessionStarted counts a started session.
func RecordSessionStarted(hasDriveTime bool) {
	label := "false"
	if hasDriveTime {
		label = "true"
	}
	SessionsStartedTotal.WithLabelValues(label).Inc()
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(route, status string) {
	HTTPRequestsTotal.WithLabelValues(route, status).Inc()
}
