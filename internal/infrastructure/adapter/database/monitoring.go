package database

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Metrics holds the database collectors
type Metrics struct {
	queryDuration *prometheus.HistogramVec
	queryErrors   *prometheus.CounterVec
	pool          *prometheus.GaugeVec
	waitCount     prometheus.Gauge
}

// NewMetrics creates database collectors and registers them with reg.
// A nil registerer leaves them unregistered, which tests rely on.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "yozi",
			Subsystem: "db",
			Name:      "query_duration_seconds",
			Help:      "Duration of SQL statements by operation and table",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation", "table"}),
		queryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "yozi",
			Subsystem: "db",
			Name:      "query_errors_total",
			Help:      "SQL statements that returned an error",
		}, []string{"operation", "table"}),
		pool: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "yozi",
			Subsystem: "db",
			Name:      "pool_connections",
			Help:      "Connection pool state from sql.DBStats",
		}, []string{"state"}),
		waitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "yozi",
			Subsystem: "db",
			Name:      "pool_wait_count",
			Help:      "Total number of connections waited for",
		}),
	}

	if reg != nil {
		reg.MustRegister(m.queryDuration, m.queryErrors, m.pool, m.waitCount)
	}
	return m
}

// ObserveQuery records one statement. Record-not-found is not counted as an error.
func (m *Metrics) ObserveQuery(operation, table string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	if operation == "" {
		operation = "other"
	}
	m.queryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		m.queryErrors.WithLabelValues(operation, table).Inc()
	}
}

func (m *Metrics) setPool(metrics ConnectionPoolMetrics) {
	if m == nil {
		return
	}
	m.pool.WithLabelValues("open").Set(float64(metrics.OpenConnections))
	m.pool.WithLabelValues("idle").Set(float64(metrics.IdleConnections))
	m.pool.WithLabelValues("in_use").Set(float64(metrics.InUse))
	m.pool.WithLabelValues("max_open").Set(float64(metrics.MaxOpenConnections))
	m.waitCount.Set(float64(metrics.WaitCount))
}
