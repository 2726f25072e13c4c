package fetch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceSource serves a fixed backing slice one bounded batch at a time and
// counts the requests it answered.
func sliceSource(backing []int, calls *int) PageFunc[int] {
	return func(_ context.Context, offset, limit int) ([]int, error) {
		*calls++
		if offset >= len(backing) {
			return nil, nil
		}
		end := min(offset+limit, len(backing))
		return backing[offset:end], nil
	}
}

func TestAllDrainsEveryRecord(t *testing.T) {
	backing := make([]int, 250)
	for i := range backing {
		backing[i] = i
	}

	var calls int
	got, err := All(context.Background(), 100, sliceSource(backing, &calls))
	require.NoError(t, err)
	assert.Equal(t, backing, got)

	// 100 + 100 + 50; the short batch stops the loop
	assert.Equal(t, 3, calls)
}

func TestAllExactMultipleIssuesFinalEmptyRequest(t *testing.T) {
	backing := make([]int, 200)
	var calls int

	got, err := All(context.Background(), 100, sliceSource(backing, &calls))
	require.NoError(t, err)
	assert.Len(t, got, 200)

	// Two full batches plus one empty probe
	assert.Equal(t, 3, calls)
}

func TestAllShortFirstBatch(t *testing.T) {
	var calls int
	got, err := All(context.Background(), 100, sliceSource([]int{1, 2, 3}, &calls))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 1, calls)
}

func TestAllEmptySource(t *testing.T) {
	var calls int
	got, err := All(context.Background(), 100, sliceSource(nil, &calls))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, calls)
}

func TestAllMidLoopErrorReturnsPartial(t *testing.T) {
	boom := errors.New("source unavailable")
	page := func(_ context.Context, offset, limit int) ([]int, error) {
		if offset >= 100 {
			return nil, boom
		}
		out := make([]int, limit)
		return out, nil
	}

	got, err := All(context.Background(), 100, page)
	assert.ErrorIs(t, err, boom)

	// The first full batch is preserved alongside the error
	assert.Len(t, got, 100)
}
