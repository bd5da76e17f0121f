package aggregate

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a buffer is read after Release.
	ErrReleased = errors.New("buffer already released")

	// ErrDoubleRelease is returned by a second call to Release.
	ErrDoubleRelease = errors.New("double release")
)

// LengthError reports an Acquire call with the wrong number of values.
type LengthError struct {
	Got int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("fixed buffer holds exactly %d values, got %d", BufferLen, e.Got)
}

// BoundsError reports an index outside the buffer.
type BoundsError struct {
	BufferID string
	Index    int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for buffer %s (len %d)", e.Index, e.BufferID, BufferLen)
}
