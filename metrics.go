package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bulkLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ideahub_client",
			Name:      "bulk_loads_total",
			Help:      "Bulk interaction state loads by outcome.",
		},
		[]string{"outcome"},
	)

	refreshFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ideahub_client",
			Name:      "state_refresh_failures_total",
			Help:      "Single-entity refreshes abandoned after retries.",
		},
	)

	optimisticPatchesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ideahub_client",
			Name:      "optimistic_patches_total",
			Help:      "Local state patches applied before server confirmation.",
		},
	)

	sessionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ideahub_client",
			Name:      "session_transitions_total",
			Help:      "Session state machine transitions by resulting status.",
		},
		[]string{"status"},
	)
)
