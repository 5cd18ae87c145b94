// Package promstats exports axistable metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	c, err := promstats.New(reg, promstats.WithNamespace("graph"))
//	t := axistable.New[axistable.Key, axistable.Key, axistable.Key](
//	    axistable.WithMetricsCollector(c),
//	)
package promstats
