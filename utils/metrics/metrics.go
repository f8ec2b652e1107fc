// Package metrics exposes prometheus counters for the aggregation pipeline.
// Counters are registered on the default registry and served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamFetchTotal counts outbound fetch attempts per source name and
	// outcome (success, transport_error, bad_markup, empty_feed).
	UpstreamFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antena_upstream_fetch_total",
			Help: "Outbound feed fetch attempts by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	// FeedFallbackTotal counts requests that exhausted every primary source
	// and fell through to the search aggregator feed.
	FeedFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "antena_feed_fallback_total",
			Help: "Requests served from the search aggregator fallback feed",
		},
	)

	// ImageEnrichmentTotal counts per-item preview image lookups by outcome
	// (found, missing, fetch_error).
	ImageEnrichmentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "antena_image_enrichment_total",
			Help: "Preview image enrichment attempts by outcome",
		},
		[]string{"outcome"},
	)
)
