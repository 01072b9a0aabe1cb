package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingQueueEnqueueDequeue(t *testing.T) {
	rq := NewRingQueue[int](3)
	require.True(t, rq.IsEmpty())

	_, err := rq.Dequeue()
	require.ErrorIs(t, err, ErrQueueEmpty)
	_, err = rq.Peek()
	require.ErrorIs(t, err, ErrQueueEmpty)

	require.NoError(t, rq.Enqueue(1))
	require.NoError(t, rq.Enqueue(2))
	require.NoError(t, rq.Enqueue(3))
	require.True(t, rq.IsFull())
	require.ErrorIs(t, rq.Enqueue(4), ErrQueueFull)

	v, err := rq.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = rq.Dequeue()
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, 2, rq.Len())

	require.NoError(t, rq.Enqueue(4))
	require.Equal(t, []int{2, 3, 4}, rq.Items())
}

func TestRingQueuePush(t *testing.T) {
	rq := NewRingQueue[string](2)
	rq.Push("a")
	rq.Push("b")
	rq.Push("c")
	require.Equal(t, 2, rq.Len())
	require.Equal(t, []string{"b", "c"}, rq.Items())
}

func TestRingQueueMinimumSize(t *testing.T) {
	rq := NewRingQueue[int](0)
	require.NoError(t, rq.Enqueue(7))
	require.True(t, rq.IsFull())
	require.Empty(t, NewRingQueue[int](4).Items())
}
