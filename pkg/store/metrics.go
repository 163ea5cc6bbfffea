package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	fetches       *prometheus.CounterVec
	hits          *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	patches       *prometheus.CounterVec
}

// newMetrics creates the store metrics and registers them with r.
// With a nil registerer, the metrics are collected but not exported.
func newMetrics(r prometheus.Registerer) *metrics {
	factory := promauto.With(r)

	return &metrics{
		fetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_ok_store_fetches_total",
			Help: "How many fetches the store executed, partitioned by resource and result.",
		}, []string{"resource", "result"}),
		hits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_ok_store_hits_total",
			Help: "How many queries were answered from the cache, partitioned by resource.",
		}, []string{"resource"}),
		invalidations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_ok_store_invalidations_total",
			Help: "How many keys were invalidated, partitioned by resource.",
		}, []string{"resource"}),
		patches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "budget_ok_store_patches_total",
			Help: "How many keys were patched, partitioned by resource.",
		}, []string{"resource"}),
	}
}
