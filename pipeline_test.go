package puzzler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}

	var sum int64
	err := run(context.Background(), items, 8, func(i int) error {
		atomic.AddInt64(&sum, int64(i))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(4950), sum)
}

func TestRunStopsOnError(t *testing.T) {
	errBoom := errors.New("boom")

	var seen []int
	err := run(context.Background(), []int{0, 1, 2, 3, 4, 5}, 1, func(i int) error {
		seen = append(seen, i)
		if i == 3 {
			return errBoom
		}
		return nil
	})
	assert.Equal(t, errBoom, err)
	assert.Equal(t, []int{0, 1, 2, 3}, seen)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancelFunc := context.WithCancel(context.Background())
	cancelFunc()

	var calls int64
	err := run(ctx, []int{0, 1, 2}, 2, func(int) error {
		atomic.AddInt64(&calls, 1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, atomic.LoadInt64(&calls))
}
