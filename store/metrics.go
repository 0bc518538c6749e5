package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments store loads and queries. The collector registers
// against whatever Registerer the embedding process supplies; the store
// itself never exposes a network endpoint.
type Metrics struct {
	loadsTotal    prometheus.Counter
	loadFailures  prometheus.Counter
	entriesLoaded prometheus.Gauge
	queriesTotal  *prometheus.CounterVec
}

// NewMetrics creates store metrics registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		loadsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "guidekb",
			Subsystem: "store",
			Name:      "loads_total",
			Help:      "Number of successful corpus loads.",
		}),
		loadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "guidekb",
			Subsystem: "store",
			Name:      "load_failures_total",
			Help:      "Number of corpus loads rejected as malformed.",
		}),
		entriesLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "guidekb",
			Subsystem: "store",
			Name:      "entries_loaded",
			Help:      "Entries in the most recently loaded store.",
		}),
		queriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "guidekb",
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Store queries by operation.",
		}, []string{"operation"}),
	}
}

// loaded records a successful load. Nil-safe.
func (m *Metrics) loaded(entries int) {
	if m == nil {
		return
	}
	m.loadsTotal.Inc()
	m.entriesLoaded.Set(float64(entries))
}

// loadFailure records a rejected load. Nil-safe.
func (m *Metrics) loadFailure() {
	if m == nil {
		return
	}
	m.loadFailures.Inc()
}

// query records one query by operation name. Nil-safe.
func (m *Metrics) query(operation string) {
	if m == nil {
		return
	}
	m.queriesTotal.WithLabelValues(operation).Inc()
}
