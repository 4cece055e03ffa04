package observability

import (
	"errors"

	"github.com/claude/ftracker/internal/training"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	reportsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "reports",
		Name:      "computed_total",
		Help:      "Number of workout reports computed, by workout code.",
	}, []string{"code"})

	reportErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "reports",
		Name:      "errors_total",
		Help:      "Number of rejected workout packages, by error kind.",
	}, []string{"kind"})

	caloriesHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ftracker",
		Subsystem: "reports",
		Name:      "calories_kcal",
		Help:      "Distribution of calories per computed report.",
		Buckets:   []float64{50, 100, 200, 400, 800, 1600},
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(reportsCounter, reportErrorCounter, caloriesHistogram)
}

// RecordReport counts a successfully computed report.
func RecordReport(code string, calories float64) {
	reportsCounter.WithLabelValues(code).Inc()
	caloriesHistogram.WithLabelValues(code).Observe(calories)
}

// RecordError counts a rejected package under the kind of err.
func RecordError(err error) {
	reportErrorCounter.WithLabelValues(ErrorKind(err)).Inc()
}

// ErrorKind maps a dispatch error to a short metric label.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutKind):
		return "unknown_kind"
	case errors.Is(err, training.ErrMalformedReadings):
		return "malformed_readings"
	case errors.Is(err, training.ErrInvalidDomainValue):
		return "invalid_value"
	default:
		return "other"
	}
}
