package aggregate

import (
	"errors"
	"fmt"
)

// BufferLen is the fixed number of elements in a FixedBuffer.
const BufferLen = 5

// FixedBuffer is a contiguous block of BufferLen ints owned by exactly one
// scope. Obtain one with Acquire and give it back with Release, or let
// WithBuffer do both.
type FixedBuffer struct {
	id       string
	alloc    Allocator
	data     [BufferLen]int
	released bool
}

// Acquire allocates a buffer from alloc and fills it with values.
// No allocation is made when len(values) != BufferLen.
func Acquire(alloc Allocator, values ...int) (*FixedBuffer, error) {
	if len(values) != BufferLen {
		return nil, &LengthError{Got: len(values)}
	}
	id, err := alloc.Allocate()
	if err != nil {
		return nil, fmt.Errorf("acquire buffer: %w", err)
	}
	b := &FixedBuffer{id: id, alloc: alloc}
	copy(b.data[:], values)
	return b, nil
}

// ID returns the identity assigned by the allocator.
func (b *FixedBuffer) ID() string {
	return b.id
}

// At returns the element at index i.
func (b *FixedBuffer) At(i int) (int, error) {
	if b.released {
		return 0, ErrReleased
	}
	if i < 0 || i >= BufferLen {
		return 0, &BoundsError{BufferID: b.id, Index: i}
	}
	return b.data[i], nil
}

// Sum returns the sum of all elements.
func (b *FixedBuffer) Sum() (int, error) {
	if b.released {
		return 0, ErrReleased
	}
	total := 0
	for i := 0; i < BufferLen; i++ {
		total += b.data[i]
	}
	return total, nil
}

// Release returns the buffer to its allocator. Only the first call reaches
// the allocator; later calls return ErrDoubleRelease.
func (b *FixedBuffer) Release() error {
	if b.released {
		return fmt.Errorf("release %s: %w", b.id, ErrDoubleRelease)
	}
	b.released = true
	b.data = [BufferLen]int{}
	if err := b.alloc.Free(b.id); err != nil {
		return fmt.Errorf("release %s: %w", b.id, err)
	}
	return nil
}

// WithBuffer acquires a buffer holding values, runs fn with it and releases
// it on every exit path. A release failure is joined with fn's error.
// If fn panics the buffer is released before the panic continues.
func WithBuffer(alloc Allocator, values []int, fn func(*FixedBuffer) error) (err error) {
	b, err := Acquire(alloc, values...)
	if err != nil {
		return err
	}
	defer func() {
		if relErr := b.Release(); relErr != nil {
			err = errors.Join(err, relErr)
		}
	}()
	return fn(b)
}

// SumFixedBuffer sums values through a scoped FixedBuffer. Each call makes
// exactly one allocation and one release.
func SumFixedBuffer(alloc Allocator, values [BufferLen]int) (int, error) {
	var total int
	err := WithBuffer(alloc, values[:], func(b *FixedBuffer) error {
		var sumErr error
		total, sumErr = b.Sum()
		return sumErr
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
