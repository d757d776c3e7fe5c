package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notifierPublishTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "notifier",
		Name:      "published_total",
		Help:      "Count of events published to the broker.",
	}, []string{"event", "status"})
	notifierPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "notifier",
		Name:      "publish_duration_seconds",
		Help:      "Duration of publishing an event.",
		Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
	}, []string{"event", "status"})
)

// Notifier tracks event publishing.
type Notifier struct{}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// ObservePublish records one publish attempt.
func (Notifier) ObservePublish(event string, err error, started time.Time) {
	status := statusOf(err)
	notifierPublishTotal.WithLabelValues(event, status).Inc()
	notifierPublishDuration.WithLabelValues(event, status).Observe(time.Since(started).Seconds())
}
