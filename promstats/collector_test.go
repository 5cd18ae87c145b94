package promstats

import (
	"testing"

	"github.com/hupe1980/axistable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Table(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	tbl := axistable.New[axistable.Key, axistable.Key, axistable.Key](axistable.WithMetricsCollector(c))
	tbl.Insert(1, 10, 100)
	tbl.Insert(1, 10, 100)
	tbl.Insert(2, 10, 200)
	tbl.Remove(1, 10, 100)
	tbl.Remove(1, 10, 100)
	tbl.RemoveColumn(10)

	axistable.BuildInverse(tbl, axistable.WithInverseMetrics(c))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("insert", "noop")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.ops.WithLabelValues("insert", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("remove", "changed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ops.WithLabelValues("remove", "noop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.bulkRemoved.WithLabelValues("col")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.rebuildCells))

	assert.Equal(t, 4, testutil.CollectAndCount(c.opLatency)) // insert, remove, remove_col, rebuild
}

func TestCollector_Namespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg, WithNamespace("graph"), WithBuckets(prometheus.DefBuckets))
	require.NoError(t, err)

	c.RecordRebuild(3, 0)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "graph_inverse_cells")
	assert.Contains(t, names, "graph_operation_latency_seconds")
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}
