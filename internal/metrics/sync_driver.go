package metrics

import (
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_driver",
		Name:      "blocks_total",
		Help:      "Count of block sync attempts.",
	}, []string{"network", "status"})
	syncBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync_driver",
		Name:      "block_duration_seconds",
		Help:      "Duration of syncing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
	syncTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync_driver",
		Name:      "transactions_total",
		Help:      "Count of transactions seen during sync, by outcome.",
	}, []string{"network", "outcome"})
	dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "transactions_total",
		Help:      "Count of dispatched transactions by type.",
	}, []string{"network", "type", "status"})
	dispatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "duration_seconds",
		Help:      "Duration of dispatching a transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "type", "status"})
	quarantineTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dispatcher",
		Name:      "quarantined_total",
		Help:      "Count of transactions quarantined because their payload could not be read.",
	}, []string{"network", "type"})
)

// SyncDriver tracks block sync and transaction dispatch.
type SyncDriver struct {
	network string
}

// NewSyncDriver constructs a SyncDriver collector.
func NewSyncDriver(network model.Network) *SyncDriver {
	return &SyncDriver{network: label(string(network))}
}

// ObserveSyncBlock records a block sync outcome and duration.
func (m SyncDriver) ObserveSyncBlock(err error, started time.Time) {
	status := statusOf(err)
	syncBlockTotal.WithLabelValues(m.network, status).Inc()
	syncBlockDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

// ObserveTransactions records how many transactions a block created and skipped.
func (m SyncDriver) ObserveTransactions(created, skipped int) {
	syncTransactionsTotal.WithLabelValues(m.network, "created").Add(float64(created))
	syncTransactionsTotal.WithLabelValues(m.network, "skipped").Add(float64(skipped))
}

// ObserveDispatch records the side effects of one transaction.
func (m SyncDriver) ObserveDispatch(txType string, err error, started time.Time) {
	status := statusOf(err)
	txType = label(txType)
	dispatchTotal.WithLabelValues(m.network, txType, status).Inc()
	dispatchDuration.WithLabelValues(m.network, txType, status).Observe(time.Since(started).Seconds())
}

// ObserveQuarantine records a quarantined transaction.
func (m SyncDriver) ObserveQuarantine(txType string) {
	quarantineTotal.WithLabelValues(m.network, label(txType)).Inc()
}
