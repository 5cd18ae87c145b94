package promstats

import (
	"time"

	"github.com/hupe1980/axistable"
	"github.com/prometheus/client_golang/prometheus"
)

var _ axistable.MetricsCollector = (*Collector)(nil)

// Collector implements axistable.MetricsCollector on Prometheus metrics.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	ops          *prometheus.CounterVec
	bulkRemoved  *prometheus.CounterVec
	rebuildCells prometheus.Gauge
}

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace (default "axistable").
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets sets the latency histogram buckets in seconds.
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector and registers its metrics with reg.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{
		namespace: "axistable",
		// Table operations are sub-microsecond; rebuilds reach milliseconds.
		buckets: prometheus.ExponentialBuckets(1e-7, 4, 12),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of table operations",
			Buckets:   o.buckets,
		}, []string{"op"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "operations_total",
			Help:      "Total table operations by outcome",
		}, []string{"op", "outcome"}),
		bulkRemoved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "bulk_removed_triples_total",
			Help:      "Triples removed by whole-row or whole-column removal",
		}, []string{"axis"}),
		rebuildCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: o.namespace,
			Name:      "inverse_cells",
			Help:      "Cells covered by the most recent inverse rebuild",
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.ops, c.bulkRemoved, c.rebuildCells} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordInsert implements axistable.MetricsCollector.
func (c *Collector) RecordInsert(d time.Duration, added bool) {
	c.opLatency.WithLabelValues("insert").Observe(d.Seconds())
	c.ops.WithLabelValues("insert", outcome(added)).Inc()
}

// RecordRemove implements axistable.MetricsCollector.
func (c *Collector) RecordRemove(d time.Duration, removed bool) {
	c.opLatency.WithLabelValues("remove").Observe(d.Seconds())
	c.ops.WithLabelValues("remove", outcome(removed)).Inc()
}

// RecordBulkRemove implements axistable.MetricsCollector.
func (c *Collector) RecordBulkRemove(axis axistable.Axis, removed int, d time.Duration) {
	c.opLatency.WithLabelValues("remove_" + axis.String()).Observe(d.Seconds())
	c.ops.WithLabelValues("remove_"+axis.String(), outcome(removed > 0)).Inc()
	c.bulkRemoved.WithLabelValues(axis.String()).Add(float64(removed))
}

// RecordRebuild implements axistable.MetricsCollector.
func (c *Collector) RecordRebuild(cells int, d time.Duration) {
	c.opLatency.WithLabelValues("rebuild").Observe(d.Seconds())
	c.ops.WithLabelValues("rebuild", "changed").Inc()
	c.rebuildCells.Set(float64(cells))
}

func outcome(changed bool) string {
	if changed {
		return "changed"
	}
	return "noop"
}
