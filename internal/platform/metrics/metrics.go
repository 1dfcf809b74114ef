package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	ItemToggles      prometheus.Counter
	PresetsApplied   *prometheus.CounterVec
	MappingFallbacks *prometheus.CounterVec
	ScoreCacheHits   prometheus.Counter
	ScoreCacheMisses prometheus.Counter
	RequestLatency   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		ItemToggles: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_item_toggles_total",
			Help: "Total number of checklist item toggles.",
		}),
		PresetsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chaincheck_presets_applied_total",
			Help: "Total number of preset applications by mode.",
		}, []string{"mode"}),
		MappingFallbacks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "chaincheck_threat_mapping_fallbacks_total",
			Help: "Times a category/profile pair had no mapping and fell back to all items.",
		}, []string{"category", "threat_level"}),
		ScoreCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_score_cache_hits_total",
			Help: "Score reads served from the memoized cache.",
		}),
		ScoreCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_score_cache_misses_total",
			Help: "Score reads that required recomputation.",
		}),
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chaincheck_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method", "status"}),
	}
}

// NewForTest creates an unregistered Metrics so parallel tests do not
// collide on the default registry.
func NewForTest() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		ItemToggles: factory.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_item_toggles_total",
			Help: "Total number of checklist item toggles.",
		}),
		PresetsApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chaincheck_presets_applied_total",
			Help: "Total number of preset applications by mode.",
		}, []string{"mode"}),
		MappingFallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "chaincheck_threat_mapping_fallbacks_total",
			Help: "Times a category/profile pair had no mapping and fell back to all items.",
		}, []string{"category", "threat_level"}),
		ScoreCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_score_cache_hits_total",
			Help: "Score reads served from the memoized cache.",
		}),
		ScoreCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "chaincheck_score_cache_misses_total",
			Help: "Score reads that required recomputation.",
		}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "chaincheck_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method", "status"}),
	}
}
