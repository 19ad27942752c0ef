package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Catalog query-layer metrics.
var (
	CatalogOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_operations_total",
			Help:      "Total number of catalog operations",
		},
		[]string{"operation", "status"},
	)

	CatalogOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "catalog_operation_duration_seconds",
			Help:      "Catalog operation duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"operation"},
	)

	CatalogFirmsSeeded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_firms_seeded",
			Help:      "Number of firms inserted by the last seed run",
		},
	)
)

// Operation status label values.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusInvalid  = "invalid"
	StatusError    = "error"
)

var registerCatalogOnce sync.Once

// RegisterCatalogMetrics registers catalog metrics with the default registry. Safe to call repeatedly.
func RegisterCatalogMetrics() {
	registerCatalogOnce.Do(func() {
		prometheus.MustRegister(CatalogOperationsTotal)
		prometheus.MustRegister(CatalogOperationDuration)
		prometheus.MustRegister(CatalogFirmsSeeded)
	})
}

// ObserveCatalogOperation records one operation outcome.
func ObserveCatalogOperation(operation, status string, elapsed time.Duration) {
	CatalogOperationsTotal.WithLabelValues(operation, status).Inc()
	CatalogOperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
