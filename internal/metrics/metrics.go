// Package metrics holds Prometheus instruments used across the demo.
// All collectors are registered with the global registry, so importing
// this package anywhere is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LocaleRedirectTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "locale_redirect_total",
			Help: "Locale-prefix redirects issued, by selected locale.",
		},
		[]string{"locale"})

	NegotiationFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "locale_negotiation_fallback_total",
			Help: "Negotiations that fell back to the default locale.",
		})

	ContentQueryTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_query_total",
			Help: "Cumulative number of CMS queries issued.",
		})

	ContentQueryErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "content_query_errors_total",
			Help: "Cumulative number of failed CMS queries.",
		})

	contentQuerySeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_query_seconds",
			Help:    "CMS query round-trip latency.",
			Buckets: prometheus.DefBuckets,
		})
)

// NewQueryTimer times one CMS round-trip against the latency histogram.
func NewQueryTimer() *prometheus.Timer {
	return prometheus.NewTimer(contentQuerySeconds)
}

func init() {
	prometheus.MustRegister(
		LocaleRedirectTotal,
		NegotiationFallbackTotal,
		ContentQueryTotal,
		ContentQueryErrorsTotal,
		contentQuerySeconds,
	)
}
