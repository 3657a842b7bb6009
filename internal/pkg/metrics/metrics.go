// Package metrics holds the Prometheus collectors of the scheduling service.
// Collectors register with the default registry, which cmd exposes on /metrics.
package metrics

import (
	"scheduling/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProposalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_proposals_total",
		Help: "Schedule proposals handled, by outcome (\"ok\" or the error kind).",
	},
		[]string{"outcome"},
	)

	ResponsesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_responses_total",
		Help: "Confirm and reject requests handled, by action and outcome.",
	},
		[]string{"action", "outcome"},
	)

	VerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_compliance_verdicts_total",
		Help: "Compliance evaluations, by validity.",
	},
		[]string{"valid"},
	)

	NotificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduling_notifications_total",
		Help: "Outbox notifications sent or failed.",
	},
		[]string{"status"},
	)

	OutboxBatchSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scheduling_outbox_last_batch_size",
		Help: "Number of outbox messages claimed by the last dispatch run.",
	})
)

// Outcome turns a handler result into a label value: "ok" for nil, else the error kind.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return string(errs.KindOf(err))
}
