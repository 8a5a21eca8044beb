package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPResponseBytes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseBytes,
			Help:    HelpTextHTTPResponseBytes,
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Cost Resolution Metrics
var (
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameResolutionsTotal,
			Help: HelpTextResolutionsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionDuration,
			Help:    HelpTextResolutionDuration,
			Buckets: ResolutionLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	ResolutionNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionNodes,
			Help:    HelpTextResolutionNodes,
			Buckets: ResolutionNodeBuckets,
		},
	)

	RankedRecipes = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRankedRecipes,
			Help: HelpTextRankedRecipes,
		},
	)
)

// Price Metrics
var (
	PriceCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheHits,
			Help: HelpTextPriceCacheHits,
		},
	)

	PriceCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePriceCacheMisses,
			Help: HelpTextPriceCacheMisses,
		},
	)

	PricesSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePricesSubmitted,
			Help: HelpTextPricesSubmitted,
		},
	)
)

// Catalog Metrics
var (
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogReloads,
			Help: HelpTextCatalogReloads,
		},
		[]string{LabelResult},
	)

	CatalogRecipes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogRecipes,
			Help: HelpTextCatalogRecipes,
		},
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogItems,
			Help: HelpTextCatalogItems,
		},
	)
)
