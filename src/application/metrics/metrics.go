package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	SuccessResult = "success"
	FailureResult = "failure"
)

// Metrics tracks queue jobs handled by this process.
type Metrics struct {
	JobsHandled *prometheus.CounterVec
	JobDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		JobsHandled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freecast_jobs_handled_total",
			Help: "Queue jobs handled, by job type and result",
		}, []string{"job_type", "result"}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freecast_job_duration_seconds",
			Help:    "Time spent handling a queue job",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
		}, []string{"job_type"}),
		registry: registry,
	}
}

func (m *Metrics) ObserveJob(jobType string, duration time.Duration, err error) {
	result := SuccessResult
	if err != nil {
		result = FailureResult
	}

	m.JobsHandled.WithLabelValues(jobType, result).Inc()
	m.JobDuration.WithLabelValues(jobType).Observe(duration.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
