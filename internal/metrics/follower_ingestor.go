package metrics

import (
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerFetchMissingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "fetch_missing_total",
		Help:      "Count of attempts to fetch new follower heights.",
	}, []string{"network", "status"})

	followerFetchMissingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "fetch_missing_duration_seconds",
		Help:      "Duration of fetching follower heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "process_batch_total",
		Help:      "Count of follower batches processed.",
	}, []string{"network", "status"})

	followerProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a follower batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "process_batch_size",
		Help:      "Number of heights processed per follower batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})

	followerProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of syncing a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	followerLastHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "follower_ingestor",
		Name:      "last_synced_height",
		Help:      "Last height synced by the follower.",
	}, []string{"network"})
)

// FollowerIngester tracks metrics for the follower ingester pipeline.
type FollowerIngester struct {
	network string
}

// NewFollowerIngester constructs a FollowerIngester.
func NewFollowerIngester(network model.Network) *FollowerIngester {
	return &FollowerIngester{network: label(string(network))}
}

// ObserveFetchMissing records a fetch attempt outcome and duration.
func (m FollowerIngester) ObserveFetchMissing(err error, started time.Time) {
	status := statusOf(err)
	followerFetchMissingTotal.WithLabelValues(m.network, status).Inc()
	followerFetchMissingDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a batch of heights.
func (m FollowerIngester) ObserveProcessBatch(err error, heights int, started time.Time) {
	status := statusOf(err)
	followerProcessBatchTotal.WithLabelValues(m.network, status).Inc()
	followerProcessBatchDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	followerProcessBatchSize.WithLabelValues(m.network).
		Observe(float64(heights))
}

// ObserveProcessHeight records the sync of one height and tracks the last synced height.
func (m FollowerIngester) ObserveProcessHeight(err error, height uint64, started time.Time) {
	status := statusOf(err)
	followerProcessHeightDuration.WithLabelValues(m.network, status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		followerLastHeight.WithLabelValues(m.network).Set(float64(height))
	}
}
