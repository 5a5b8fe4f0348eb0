// Package metrics counts catalog operations in a private Prometheus
// registry. The registry is read back by the CLI stats command; nothing is
// exposed over the network.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/mesh-intelligence/libraflow/internal/catalog"
)

const namespace = "libraflow"

// Log label values for the history gauge.
const (
	LogRecent   = "recent"
	LogBorrowed = "borrowed"
)

// Collector implements catalog.Observer on top of Prometheus metrics.
type Collector struct {
	registry *prometheus.Registry

	OperationsTotal *prometheus.CounterVec
	Books           prometheus.Gauge
	HistoryEntries  *prometheus.GaugeVec
}

var _ catalog.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them in a new registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_operations_total",
				Help:      "Catalog operations by name and outcome",
			},
			[]string{"operation", "outcome"},
		),
		Books: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "catalog_books",
				Help:      "Live records in the catalog",
			},
		),
		HistoryEntries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "history_entries",
				Help:      "Entries held by each history log",
			},
			[]string{"log"},
		),
	}
	c.registry.MustRegister(c.OperationsTotal, c.Books, c.HistoryEntries)
	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// CatalogEvent implements catalog.Observer.
func (c *Collector) CatalogEvent(e catalog.Event) {
	c.OperationsTotal.WithLabelValues(e.Op, e.Outcome).Inc()
	c.Books.Set(float64(e.Books))
	c.HistoryEntries.WithLabelValues(LogRecent).Set(float64(e.Recent))
	c.HistoryEntries.WithLabelValues(LogBorrowed).Set(float64(e.Borrowed))
}

// Sample is one gathered metric value with its labels rendered inline,
// e.g. libraflow_catalog_operations_total{operation="add",outcome="ok"}.
type Sample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Snapshot gathers the registry and returns samples sorted by name.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out = append(out, Sample{
				Name:  sampleName(mf.GetName(), m.GetLabel()),
				Value: sampleValue(mf.GetType(), m),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func sampleName(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	s := name + "{"
	for i, lp := range labels {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue())
	}
	return s + "}"
}

func sampleValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
