// Package metrics provides Prometheus metrics for the Aster service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PullsTotal tracks pull operations by outcome
	PullsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aster",
			Subsystem: "channel",
			Name:      "pulls_total",
			Help:      "Total number of pull operations by outcome",
		},
		[]string{"status"},
	)

	// ChannelbacksTotal tracks channelback operations by outcome
	ChannelbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aster",
			Subsystem: "channel",
			Name:      "channelbacks_total",
			Help:      "Total number of channelback operations by outcome",
		},
		[]string{"status"},
	)

	// AccountLinksTotal tracks account linking attempts by outcome
	AccountLinksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aster",
			Subsystem: "channel",
			Name:      "account_links_total",
			Help:      "Total number of account linking attempts by outcome",
		},
		[]string{"status"},
	)

	// RemoteRequestsTotal tracks outbound requests to WordPress
	RemoteRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aster",
			Subsystem: "wordpress",
			Name:      "requests_total",
			Help:      "Total number of outbound WordPress API requests",
		},
		[]string{"method", "status_code"},
	)

	// RemoteRequestDuration tracks outbound WordPress request duration
	RemoteRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aster",
			Subsystem: "wordpress",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound WordPress API requests in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)
)
