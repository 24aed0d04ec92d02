// Package metrics defines and registers all custom Prometheus metrics for
// the Furniro checkout service. It is the single source of truth for metric
// names, labels, and help strings; registration happens implicitly via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "checkout"

// CheckoutsTotal counts checkout submissions by outcome.
// Labels:
//   - outcome: "succeeded", "failed", "invalid" (validation rejected the
//     form before any network call), or "in_flight" (duplicate submission
//     blocked by the processing flag)
var CheckoutsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of checkout submissions, by outcome.",
	},
	[]string{"outcome"},
)

// StepFailuresTotal counts which workflow step aborted the chain.
// Label:
//   - step: "create_shipment", "create_customer", or "create_order"
var StepFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "step_failures_total",
		Help:      "Total number of aborted checkouts, by failing step.",
	},
	[]string{"step"},
)

// UpstreamRequestDuration measures each outbound call to a collaborator.
// Labels:
//   - target: "carrier" or "cms"
//   - outcome: "ok" or "error"
var UpstreamRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of outbound calls to the carrier and CMS.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"target", "outcome"},
)

// JournalWritesTotal counts reconciliation journal writes.
// Label:
//   - result: "ok" or "error"
var JournalWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "journal_writes_total",
		Help:      "Total number of checkout attempt journal writes, by result.",
	},
	[]string{"result"},
)
