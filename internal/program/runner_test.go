package program

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primer/internal/aggregate"
)

func TestRun_DefaultLines(t *testing.T) {
	result, err := NewRunner(nil, nil).Run(context.Background(), Default())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"The sum of the elements in the vector is: 15",
		"The sum of the elements in the array is: 15",
		"Buddy says: Woof!",
		"Whiskers says: Meow!",
	}, result.Lines())
}

func TestRun_DefaultGolden(t *testing.T) {
	result, err := NewRunner(nil, nil).Run(context.Background(), Default())
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = result.WriteTo(&buf)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default", buf.Bytes())
}

func TestRun_BufferStepsAreBalanced(t *testing.T) {
	alloc := aggregate.NewCountingAllocator()
	p := &Program{Name: "buffers", Steps: []Step{
		{Buffer: &SumStep{Label: "a", Values: []int{1, 1, 1, 1, 1}}},
		{Buffer: &SumStep{Label: "b", Values: []int{2, 2, 2, 2, 2}}},
	}}

	result, err := NewRunner(alloc, nil).Run(context.Background(), p)
	require.NoError(t, err)

	assert.Equal(t, 2, alloc.Acquired())
	assert.Equal(t, 2, alloc.Released())
	require.NotNil(t, result.Steps[1].Total)
	assert.Equal(t, 10, *result.Steps[1].Total)
}

func TestRun_EmptySumIsZero(t *testing.T) {
	p := &Program{Steps: []Step{{Sum: &SumStep{Label: "nothing"}}}}

	result, err := NewRunner(nil, nil).Run(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "The sum of the elements in the nothing is: 0", result.String())
}

func TestRun_RejectsInvalidProgram(t *testing.T) {
	alloc := aggregate.NewCountingAllocator()
	p := &Program{Steps: []Step{
		{Buffer: &SumStep{Label: "ok", Values: []int{1, 2, 3, 4, 5}}},
		{Speak: &SpeakStep{Kind: "cow", Name: "Daisy"}},
	}}

	_, err := NewRunner(alloc, nil).Run(context.Background(), p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrUnknownKind)
	assert.Equal(t, 0, alloc.Acquired(), "nothing runs before validation passes")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(nil, nil).Run(ctx, Default())
	assert.ErrorIs(t, err, context.Canceled)
}
