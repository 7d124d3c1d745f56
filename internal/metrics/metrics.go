package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_http_requests_total",
			Help: "Total HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trace_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LotsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "trace_lots_created_total",
			Help: "Lots created since process start",
		},
	)

	ActivitiesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_activities_recorded_total",
			Help: "Lifecycle activities recorded, by type",
		},
		[]string{"activity_type"},
	)

	DocumentsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trace_documents_rendered_total",
			Help: "Barcode and PDF documents rendered, by kind",
		},
		[]string{"kind"},
	)
)
