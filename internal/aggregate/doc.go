// Package aggregate sums integers held in a resizable slice or in a
// fixed-size buffer whose lifecycle is managed by an Allocator.
//
// # Scoped Buffers
//
// A FixedBuffer is only ever obtained through Acquire and must be released
// exactly once. WithBuffer wraps acquisition and release in a single scope so
// that release runs on every exit path, including errors and panics:
//
//	total, err := aggregate.SumFixedBuffer(alloc, [5]int{1, 2, 3, 4, 5})
//
// Allocators record acquisitions and releases. CountingAllocator keeps the
// tally in memory for tests; the ledger package persists it to SQLite.
package aggregate
