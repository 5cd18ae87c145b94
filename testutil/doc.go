// Package testutil provides testing utilities for axistable.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, a random operation generator and a
// brute-force oracle that answers every table query by scanning a flat set
// of triples.
//
// # Random Operations
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.Ops(1000, testutil.OpsConfig{Rows: 8, Cols: 8, Values: 16, RemoveRate: 0.4})
//
// Small key spaces make values recur across cells of one row or column,
// which is what exercises the multiplicity bookkeeping.
//
// # Oracle
//
//	o := testutil.NewOracle()
//	o.Apply(ops...)
//	o.Row(1)              // union of every cell of row 1, by scan
//	o.ColumnExcept(1, 10) // Col(10) \ Row(1), by scan
package testutil
