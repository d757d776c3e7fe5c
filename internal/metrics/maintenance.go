package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	maintenanceJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "maintenance",
		Name:      "jobs_total",
		Help:      "Count of maintenance job runs.",
	}, []string{"job", "status"})
	maintenanceJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "maintenance",
		Name:      "job_duration_seconds",
		Help:      "Duration of maintenance job runs.",
		Buckets:   []float64{.1, .5, 1, 5, 15, 30, 60, 300, 900, 1800, 3600},
	}, []string{"job", "status"})
)

// Maintenance tracks operator job runs.
type Maintenance struct{}

func NewMaintenance() *Maintenance {
	return &Maintenance{}
}

// ObserveJob records a job outcome and duration.
func (Maintenance) ObserveJob(job string, err error, started time.Time) {
	status := statusOf(err)
	maintenanceJobsTotal.WithLabelValues(job, status).Inc()
	maintenanceJobDuration.WithLabelValues(job, status).Observe(time.Since(started).Seconds())
}
