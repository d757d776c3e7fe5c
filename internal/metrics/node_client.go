package metrics

import (
	"time"

	"github.com/goodnatureofminers/vfxledger/internal/vfx/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of chain node API operations.",
	}, []string{"operation", "network", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain node API operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// NodeClient tracks metrics for calls to the chain node API.
type NodeClient struct {
	network string
}

// NewNodeClient constructs a metrics collector for node calls.
func NewNodeClient(network model.Network) *NodeClient {
	return &NodeClient{network: label(string(network))}
}

// Observe records a single call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	nodeRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	nodeRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
