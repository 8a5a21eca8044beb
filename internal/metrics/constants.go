package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseBytes    = "http_response_size_bytes"
)

// Cost resolution metric names
const (
	MetricNameResolutionsTotal   = "cost_resolutions_total"
	MetricNameResolutionDuration = "cost_resolution_duration_seconds"
	MetricNameResolutionNodes    = "cost_resolution_nodes"
	MetricNameRankedRecipes      = "ranking_recipes_evaluated_total"
)

// Price cache metric names
const (
	MetricNamePriceCacheHits   = "price_cache_hits_total"
	MetricNamePriceCacheMisses = "price_cache_misses_total"
	MetricNamePricesSubmitted  = "prices_submitted_total"
)

// Catalog metric names
const (
	MetricNameCatalogReloads = "catalog_reloads_total"
	MetricNameCatalogRecipes = "catalog_recipes"
	MetricNameCatalogItems   = "catalog_items"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseBytes    = "HTTP response body size in bytes, by route"
)

// Cost resolution metric help text
const (
	HelpTextResolutionsTotal   = "Total number of top-level cost resolutions by operation and outcome"
	HelpTextResolutionDuration = "Cost resolution latency in seconds"
	HelpTextResolutionNodes    = "Number of distinct items resolved per top-level resolution"
	HelpTextRankedRecipes      = "Total number of recipes evaluated by profitability ranking"
)

// Price cache metric help text
const (
	HelpTextPriceCacheHits   = "Total number of current-price cache hits"
	HelpTextPriceCacheMisses = "Total number of current-price cache misses"
	HelpTextPricesSubmitted  = "Total number of accepted price submissions"
)

// Catalog metric help text
const (
	HelpTextCatalogReloads = "Total number of recipe catalog reloads by result"
	HelpTextCatalogRecipes = "Number of recipes in the loaded catalog"
	HelpTextCatalogItems   = "Number of items in the loaded catalog"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelOperation = "operation"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
)

// Outcome label values
const (
	OutcomeResolved   = "resolved"
	OutcomeUnresolved = "unresolved"
	OutcomeError      = "error"
	ResultSuccess     = "success"
	ResultFailure     = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionLatencyBuckets range from 0.1ms to 2.5s
var ResolutionLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 2.5}

// ResolutionNodeBuckets cover trees from a single leaf to a few hundred nodes
var ResolutionNodeBuckets = []float64{1, 2, 5, 10, 25, 50, 100, 250}

// UnmatchedRoute is the path label used when no chi route matched
const UnmatchedRoute = "unmatched"
