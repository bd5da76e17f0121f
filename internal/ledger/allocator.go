package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Clock supplies monotonically increasing sequence numbers.
type Clock interface {
	Next() int64
}

// IDGenerator supplies buffer identities.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 buffer IDs.
type UUIDv7Generator struct{}

// Generate returns a hyphenated UUIDv7 string.
// Panics if UUID generation fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SeqClock is a monotonic clock starting after a given seq.
type SeqClock struct {
	mu  sync.Mutex
	seq int64
}

// NewSeqClock returns a clock whose first Next is start+1.
func NewSeqClock(start int64) *SeqClock {
	return &SeqClock{seq: start}
}

// Next returns the next sequence number.
func (c *SeqClock) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Allocator records buffer acquisitions and releases in a Ledger.
// It satisfies aggregate.Allocator.
//
// An Allocator is bound to the context of the run that created it.
type Allocator struct {
	ctx    context.Context
	ledger *Ledger
	clock  Clock
	ids    IDGenerator
	logger *slog.Logger
}

// AllocatorOption configures an Allocator.
type AllocatorOption func(*Allocator)

// WithClock overrides the sequence clock.
func WithClock(c Clock) AllocatorOption {
	return func(a *Allocator) { a.clock = c }
}

// WithIDGenerator overrides the buffer ID generator.
func WithIDGenerator(g IDGenerator) AllocatorOption {
	return func(a *Allocator) { a.ids = g }
}

// WithLogger sets the logger for allocation events.
func WithLogger(l *slog.Logger) AllocatorOption {
	return func(a *Allocator) { a.logger = l }
}

// NewAllocator creates an Allocator writing to l. Unless overridden, the
// clock continues from the ledger's highest seq and IDs are UUIDv7.
func NewAllocator(ctx context.Context, l *Ledger, opts ...AllocatorOption) (*Allocator, error) {
	a := &Allocator{
		ctx:    ctx,
		ledger: l,
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		start, err := l.MaxSeq(ctx)
		if err != nil {
			return nil, fmt.Errorf("new allocator: %w", err)
		}
		a.clock = NewSeqClock(start)
	}
	return a, nil
}

// Allocate records an acquire event for a fresh buffer ID.
func (a *Allocator) Allocate() (string, error) {
	id := a.ids.Generate()
	seq := a.clock.Next()
	if err := a.ledger.RecordAcquire(a.ctx, id, seq); err != nil {
		return "", err
	}
	a.logger.Debug("buffer acquired", "buffer_id", id, "seq", seq)
	return id, nil
}

// Free records a release event for id.
func (a *Allocator) Free(id string) error {
	seq := a.clock.Next()
	if err := a.ledger.RecordRelease(a.ctx, id, seq); err != nil {
		return err
	}
	a.logger.Debug("buffer released", "buffer_id", id, "seq", seq)
	return nil
}
