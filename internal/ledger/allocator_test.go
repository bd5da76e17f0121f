package ledger

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primer/internal/aggregate"
	"github.com/roach88/primer/internal/testutil"
)

func TestAllocator_SumFixedBufferIsBalanced(t *testing.T) {
	l := createTestLedger(t)
	ctx := context.Background()

	alloc, err := NewAllocator(ctx, l,
		WithClock(testutil.NewDeterministicClock()),
		WithIDGenerator(testutil.NewSequentialIDGenerator("buf")),
	)
	require.NoError(t, err)

	total, err := aggregate.SumFixedBuffer(alloc, [aggregate.BufferLen]int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 15, total)

	events, err := l.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Event{
		{ID: 1, BufferID: "buf-0001", Kind: EventAcquire, Seq: 1},
		{ID: 2, BufferID: "buf-0001", Kind: EventRelease, Seq: 2},
	}, events)

	report, err := l.Audit(ctx)
	require.NoError(t, err)
	assert.True(t, report.Clean())
}

func TestAllocator_DoubleReleaseNeverReachesLedger(t *testing.T) {
	l := createTestLedger(t)
	ctx := context.Background()

	alloc, err := NewAllocator(ctx, l)
	require.NoError(t, err)

	buf, err := aggregate.Acquire(alloc, 1, 2, 3, 4, 5)
	require.NoError(t, err)
	require.NoError(t, buf.Release())
	assert.ErrorIs(t, buf.Release(), aggregate.ErrDoubleRelease)

	report, err := l.Audit(ctx)
	require.NoError(t, err)
	assert.True(t, report.Clean(), "findings: %v", report.Findings)
}

func TestAllocator_LeakIsReported(t *testing.T) {
	l := createTestLedger(t)
	ctx := context.Background()

	alloc, err := NewAllocator(ctx, l)
	require.NoError(t, err)

	buf, err := aggregate.Acquire(alloc, 1, 2, 3, 4, 5)
	require.NoError(t, err)

	report, err := l.Audit(ctx)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, FindingLeak, report.Findings[0].Kind)
	assert.Equal(t, buf.ID(), report.Findings[0].BufferID)
}

func TestAllocator_DefaultsToUUIDv7AndContinuesSeq(t *testing.T) {
	l := createTestLedger(t)
	ctx := context.Background()
	require.NoError(t, l.RecordAcquire(ctx, "old", 10))
	require.NoError(t, l.RecordRelease(ctx, "old", 11))

	alloc, err := NewAllocator(ctx, l)
	require.NoError(t, err)

	id, err := alloc.Allocate()
	require.NoError(t, err)
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	seq, err := l.MaxSeq(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), seq)
}
