// Package testutil provides deterministic stand-ins for the ledger's clock
// and buffer ID generator so that ledger contents and golden output are
// byte-identical across test runs.
package testutil

import "sync/atomic"

// DeterministicClock hands out ledger sequence numbers 1, 2, 3, ... and satisfies
// ledger.Clock. Safe for concurrent use.
type DeterministicClock struct {
	n atomic.Int64
}

// NewDeterministicClock returns a counter whose first Next is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

func (c *DeterministicClock) Next() int64 {
	return c.n.Add(1)
}
