// Package metrics exposes the most recent scheduling run's statistics
// as Prometheus gauges, the way the retrieved node-autoscaling example
// registers its reconciliation counters against a shared registry.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/edusched/timetable/scheduler"
)

const namespace = "timetable"

var (
	totalRequired = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_required_total",
		Help:      "Sessions required by the most recently published run.",
	})
	totalScheduled = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_scheduled_total",
		Help:      "Sessions successfully placed by the most recently published run.",
	})
	successRate = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "success_rate_percent",
		Help:      "Percentage of required sessions placed by the most recently published run.",
	})
	averageHeadroom = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "average_room_headroom",
		Help:      "Average room capacity minus class size across placed sessions.",
	})
	teacherSessions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "teacher_sessions_total",
		Help:      "Sessions assigned to each teacher in the most recently published run.",
	}, []string{"teacher"})
)

var mu sync.Mutex

// Publish updates every gauge from result. mu serializes concurrent
// Publish calls so two runs never interleave their teacher gauges; the
// /metrics handler does not take mu, so a scrape that races a Publish
// can observe a partly updated set of gauges.
func Publish(result *scheduler.Result) {
	mu.Lock()
	defer mu.Unlock()

	totalRequired.Set(float64(result.Statistics.TotalRequired))
	totalScheduled.Set(float64(result.Statistics.TotalScheduled))
	successRate.Set(result.Statistics.SuccessRate)
	averageHeadroom.Set(result.Statistics.AverageRoomHeadroom)

	teacherSessions.Reset()
	for _, u := range result.Statistics.TeacherUtilization {
		teacherSessions.WithLabelValues(u.Name).Set(float64(u.TotalSessions))
	}
}

// Serve blocks, serving /metrics on addr until the process exits or an
// error occurs (e.g. the port is already bound).
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
