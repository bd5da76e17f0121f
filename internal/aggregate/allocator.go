package aggregate

import (
	"fmt"
	"sync"
)

// Allocator hands out buffer identities and takes them back.
// Free must be called at most once per identity returned by Allocate.
type Allocator interface {
	Allocate() (id string, err error)
	Free(id string) error
}

// HeapAllocator is the default allocator. The buffer storage itself lives
// in the FixedBuffer; the allocator only numbers the buffers.
type HeapAllocator struct {
	mu   sync.Mutex
	next int
}

// Allocate returns a fresh buffer identity.
func (a *HeapAllocator) Allocate() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	return fmt.Sprintf("heap-%d", a.next), nil
}

// Free is a no-op for the heap allocator.
func (a *HeapAllocator) Free(string) error {
	return nil
}

// CountingAllocator is an instrumented allocator that tracks every
// acquisition and release. It rejects releases of unknown or already
// released identities.
//
// Thread-safety: all methods are safe for concurrent use.
type CountingAllocator struct {
	mu       sync.Mutex
	next     int
	acquired int
	released int
	live     map[string]bool
}

// NewCountingAllocator creates an empty CountingAllocator.
func NewCountingAllocator() *CountingAllocator {
	return &CountingAllocator{live: make(map[string]bool)}
}

// Allocate records an acquisition.
func (a *CountingAllocator) Allocate() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.next++
	id := fmt.Sprintf("buf-%d", a.next)
	a.live[id] = true
	a.acquired++
	return id, nil
}

// Free records a release.
func (a *CountingAllocator) Free(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	live, known := a.live[id]
	if !known {
		return fmt.Errorf("free %s: unknown buffer", id)
	}
	if !live {
		return fmt.Errorf("free %s: %w", id, ErrDoubleRelease)
	}
	a.live[id] = false
	a.released++
	return nil
}

// Acquired returns the number of Allocate calls.
func (a *CountingAllocator) Acquired() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acquired
}

// Released returns the number of successful Free calls.
func (a *CountingAllocator) Released() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Live returns the number of buffers acquired but not yet released.
func (a *CountingAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.acquired - a.released
}
