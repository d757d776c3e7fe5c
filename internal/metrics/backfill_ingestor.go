package metrics

import (
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backfillFetchMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backfill_ingestor",
		Name:      "fetch_missing_total",
		Help:      "Count of attempts to resolve the backfill range.",
	}, []string{"network", "status"})

	backfillFetchMissingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backfill_ingestor",
		Name:      "fetch_missing_duration_seconds",
		Help:      "Duration of resolving the backfill range.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	backfillProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "backfill_ingestor",
		Name:      "process_batch_total",
		Help:      "Count of processed chunks.",
	}, []string{"network", "status"})

	backfillProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backfill_ingestor",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a chunk of heights.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "status"})

	backfillProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "backfill_ingestor",
		Name:      "process_batch_size",
		Help:      "Number of heights synced per chunk.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"network"})
)

// BackfillIngester tracks metrics for the backfill pipeline.
type BackfillIngester struct {
	network string
}

// NewBackfillIngester constructs a BackfillIngester.
func NewBackfillIngester(network model.Network) *BackfillIngester {
	return &BackfillIngester{network: label(string(network))}
}

// ObserveFetchMissing records a range resolution outcome and duration.
func (m BackfillIngester) ObserveFetchMissing(err error, started time.Time) {
	status := statusOf(err)
	backfillFetchMissingTotal.WithLabelValues(m.network, status).Inc()
	backfillFetchMissingDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a chunk of heights.
func (m BackfillIngester) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusOf(err)
	backfillProcessBatchTotal.WithLabelValues(m.network, status).Inc()
	backfillProcessBatchDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	backfillProcessBatchSize.WithLabelValues(m.network).Observe(float64(heights))
}
