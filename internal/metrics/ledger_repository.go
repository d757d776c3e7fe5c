package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operations_total",
		Help:      "Count of ledger store operations.",
	}, []string{"operation", "driver", "status"})
	ledgerRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger store operations.",
		Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "driver", "status"})
)

// LedgerRepository tracks metrics for ledger store operations.
type LedgerRepository struct {
	driver string
}

// NewLedgerRepository creates a collector for a store opened with driver.
func NewLedgerRepository(driver string) *LedgerRepository {
	return &LedgerRepository{driver: label(driver)}
}

// Observe records duration and status of a store operation.
func (m LedgerRepository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerRepositoryRequestsTotal.WithLabelValues(operation, m.driver, status).Inc()
	ledgerRepositoryRequestDuration.WithLabelValues(operation, m.driver, status).Observe(time.Since(started).Seconds())
}
