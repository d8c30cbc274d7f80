package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var bedLedgerOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "hospital_directory",
		Name:      "bed_ledger_operations_total",
		Help:      "Department bed ledger operations by operation and outcome.",
	},
	[]string{"operation", "outcome"},
)

func observeBedOp(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(KindOf(err))
	}
	bedLedgerOps.WithLabelValues(operation, outcome).Inc()
}
