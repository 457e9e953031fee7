package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	actionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_invoice_actions_total",
		Help: "Invoice mutations by action and outcome.",
	}, []string{"action", "outcome"})

	viewCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_view_cache_total",
		Help: "View cache lookups and invalidations by result.",
	}, []string{"result"})

	seedRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_seed_runs_total",
		Help: "Seeding pipeline runs by outcome.",
	}, []string{"outcome"})

	seedDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dashboard_seed_duration_seconds",
		Help:    "Wall time of a seeding pipeline run.",
		Buckets: prometheus.DefBuckets,
	})
)
