// Package metrics holds shared Prometheus helpers used across the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// BonusTransactions counts ledger transactions by type.
	BonusTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bossy",
		Name:      "bonus_transactions_total",
		Help:      "Number of bonus account transactions recorded, by type.",
	}, []string{"type"})

	// TaskCompletionsReviewed counts reviewed task completions by outcome.
	TaskCompletionsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bossy",
		Name:      "task_completions_reviewed_total",
		Help:      "Number of task completions reviewed, by outcome.",
	}, []string{"outcome"})

	// NotificationsCreated counts notifications created by type.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bossy",
		Name:      "notifications_created_total",
		Help:      "Number of notifications created, by type.",
	}, []string{"type"})
)
