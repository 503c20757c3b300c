package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForVisitsEveryIndex(t *testing.T) {
	for _, workers := range []int{1, 4} {
		seen := make([]atomic.Int32, 100)
		err := For(context.Background(), 0, 100, workers, func(_ context.Context, i int) error {
			seen[i].Add(1)
			return nil
		})
		require.NoError(t, err)
		for i := range seen {
			assert.Equal(t, int32(1), seen[i].Load(), "index %d", i)
		}
	}
}

func TestForReturnsFirstError(t *testing.T) {
	boom := errors.New("boom")
	for _, workers := range []int{1, 3} {
		err := For(context.Background(), 0, 50, workers, func(_ context.Context, i int) error {
			if i == 10 {
				return boom
			}
			return nil
		})
		assert.ErrorIs(t, err, boom)
	}
}

func TestForCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := For(ctx, 0, 10, 1, func(context.Context, int) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
}

func TestForChunked(t *testing.T) {
	var total atomic.Int64
	var chunks atomic.Int32
	err := ForChunked(context.Background(), 0, 1003, 100, NumWorkers(), func(_ context.Context, s, e int) error {
		assert.Less(t, s, e)
		assert.LessOrEqual(t, e-s, 100)
		total.Add(int64(e - s))
		chunks.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1003), total.Load())
	assert.Equal(t, int32(11), chunks.Load())

	err = ForChunked(context.Background(), 5, 5, 10, 2, func(context.Context, int, int) error {
		t.Fatal("no chunks expected")
		return nil
	})
	assert.NoError(t, err)
}
