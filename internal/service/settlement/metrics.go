package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PlanFallbackTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_plan_fallback_total",
			Help: "Settlements computed with the basic-tier fallback because the locked plan was unknown",
		},
	)

	ApplyFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_apply_failures_total",
			Help: "Wallet credit attempts that failed and left the settlement pending",
		},
	)

	CompletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "settlement_completed_total",
			Help: "Settlements applied to provider wallets",
		},
	)
)
