package axistable

import (
	"fmt"
	"testing"

	"github.com/hupe1980/axistable/testutil"
)

func BenchmarkTable_Insert(b *testing.B) {
	ops := testutil.NewRNG(1).Ops(b.N, testutil.OpsConfig{Rows: 1024, Cols: 1024, Values: 4096})
	tbl := newIntTable(WithCapacity(b.N))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		op := ops[i]
		tbl.InsertIDs(op.Row, op.Col, op.Value)
	}
}

func BenchmarkTable_InsertRemove(b *testing.B) {
	tbl := newIntTable()
	for v := range uint64(64) {
		tbl.InsertIDs(1, v%8, v)
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tbl.InsertIDs(1, 3, 1000)
		tbl.Remove(1, 3, 1000)
	}
}

func BenchmarkTable_Row(b *testing.B) {
	tbl := newIntTable()
	apply(tbl, testutil.NewRNG(2).Ops(100_000, testutil.OpsConfig{Rows: 256, Cols: 256, Values: 4096}))

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tbl.Row(uint64(i % 256)).Len()
	}
}

func BenchmarkBuildInverse(b *testing.B) {
	tbl := newIntTable()
	apply(tbl, testutil.NewRNG(3).Ops(50_000, testutil.OpsConfig{Rows: 128, Cols: 128, Values: 2048}))

	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = BuildInverse(tbl, WithParallelism(workers))
			}
		})
	}
}
