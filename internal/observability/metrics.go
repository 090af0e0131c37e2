package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mutationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthlog",
		Subsystem: "store",
		Name:      "mutations_total",
		Help:      "Number of successful store mutations grouped by operation.",
	}, []string{"op"})

	storedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "healthlog",
		Subsystem: "store",
		Name:      "activities",
		Help:      "Number of activity records currently held in memory.",
	})

	statisticsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "healthlog",
		Subsystem: "statistics",
		Name:      "queries_total",
		Help:      "Number of statistics computations grouped by kind.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(mutationCounter, storedGauge, statisticsCounter)
}

// RecordMutation counts a successful add/update/delete.
func RecordMutation(op string) {
	mutationCounter.WithLabelValues(op).Inc()
}

// RecordStored sets the stored-records gauge. The store calls it while still
// holding its write lock so gauge updates follow mutation order.
func RecordStored(n int) {
	storedGauge.Set(float64(n))
}

func RecordStatisticsQuery(kind string) {
	statisticsCounter.WithLabelValues(kind).Inc()
}
