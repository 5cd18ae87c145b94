package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// OpKind is the kind of a generated table operation.
type OpKind uint8

const (
	// OpInsert inserts a triple.
	OpInsert OpKind = iota
	// OpRemove removes a triple.
	OpRemove
)

// Op is one generated table operation.
type Op struct {
	Kind  OpKind
	Row   uint64
	Col   uint64
	Value uint64
}

// OpsConfig bounds the key spaces of generated operations.
type OpsConfig struct {
	Rows   int
	Cols   int
	Values int

	// RemoveRate is the probability in [0, 1] that an operation is a removal.
	RemoveRate float64
}

// Ops generates n random operations. Keys are drawn from [0, Rows),
// [0, Cols) and [0, Values).
//
// Half of the removals target a triple inserted earlier in the sequence, so
// removals hit live triples often even in large key spaces.
func (r *RNG) Ops(n int, cfg OpsConfig) []Op {
	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, 0, n)
	var inserted []Op

	for range n {
		if r.rand.Float64() < cfg.RemoveRate {
			op := Op{
				Kind:  OpRemove,
				Row:   uint64(r.rand.Intn(cfg.Rows)),
				Col:   uint64(r.rand.Intn(cfg.Cols)),
				Value: uint64(r.rand.Intn(cfg.Values)),
			}
			if len(inserted) > 0 && r.rand.Intn(2) == 0 {
				prev := inserted[r.rand.Intn(len(inserted))]
				op.Row, op.Col, op.Value = prev.Row, prev.Col, prev.Value
			}
			ops = append(ops, op)
			continue
		}

		op := Op{
			Kind:  OpInsert,
			Row:   uint64(r.rand.Intn(cfg.Rows)),
			Col:   uint64(r.rand.Intn(cfg.Cols)),
			Value: uint64(r.rand.Intn(cfg.Values)),
		}
		inserted = append(inserted, op)
		ops = append(ops, op)
	}

	return ops
}
