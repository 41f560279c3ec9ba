// Package metrics registers the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kimia_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kimia_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Listing metrics.
	PropertySearchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kimia_property_searches_total",
			Help: "Total number of property listing searches",
		},
	)
	BlogViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kimia_blog_views_total",
			Help: "Total number of public blog post fetches",
		},
	)

	// Chat metrics.
	ChatRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kimia_chat_requests_total",
			Help: "Total number of chat messages handled",
		},
	)

	// Authentication metrics.
	AuthAttemptsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kimia_auth_attempts_total",
			Help: "Total number of login attempts",
		},
	)
	AuthFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kimia_auth_failures_total",
			Help: "Total number of failed login attempts",
		},
	)
)
