package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartitionInOrder(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](4, 16)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Publish(ctx, "bistro-12/2025-12-28", i))
	}

	idx := partitionIndex("bistro-12/2025-12-28", queue.PartitionCount())
	ch := queue.Partition(idx)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, <-ch)
	}
}

func TestPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](0, -1)
	assert.Equal(t, DefaultNumPartitions, queue.PartitionCount())
	assert.Equal(t, DefaultBuffer, cap(queue.Partition(0)))
}

func TestPartitionedQueue_PublishHonoursContext(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](1, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := queue.Publish(ctx, "key", 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPartitionedQueue_Close(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueue[int](2, 4)
	require.NoError(t, queue.Publish(context.Background(), "a", 1))
	queue.Close()
	queue.Close()

	assert.ErrorIs(t, queue.Publish(context.Background(), "a", 2), ErrQueueClosed)

	idx := partitionIndex("a", 2)
	v, ok := <-queue.Partition(idx)
	assert.True(t, ok, "buffered message stays readable after close")
	assert.Equal(t, 1, v)
	_, ok = <-queue.Partition(idx)
	assert.False(t, ok)
}

func TestPartitionIndex_Stable(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "a", "bistro-12/2025-12-28", "cafe-7/2026-01-01"} {
		idx := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		assert.Equal(t, idx, partitionIndex(key, 8))
	}
}
