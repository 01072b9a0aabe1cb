package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewJobSystemValidation(t *testing.T) {
	_, err := NewJobSystem(0, 1)
	require.ErrorIs(t, err, ErrNoWorkers)

	_, err = NewJobSystem(1, -1)
	require.ErrorIs(t, err, ErrNegativeChannelSize)
}

func TestJobSystemRunsJobs(t *testing.T) {
	js, err := NewJobSystem(4, 8)
	require.NoError(t, err)
	require.Equal(t, 4, js.Workers())

	var completed, failed, callbacks atomic.Int32
	var wg sync.WaitGroup
	errBoom := errors.New("boom")

	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		require.NoError(t, js.Submit(JobTask{
			OnStart: func() error {
				if i%5 == 0 {
					return errBoom
				}
				return nil
			},
			OnComplete: func() { completed.Add(1) },
			OnFailure: func(err error) {
				if errors.Is(err, errBoom) {
					failed.Add(1)
				}
			},
			OnCompletionCallback: func() {
				callbacks.Add(1)
				wg.Done()
			},
		}))
	}
	wg.Wait()

	require.Equal(t, int32(16), completed.Load())
	require.Equal(t, int32(4), failed.Load())
	require.Equal(t, int32(20), callbacks.Load())

	require.NoError(t, js.Shutdown())
}

func TestJobSystemShutdown(t *testing.T) {
	js, err := NewJobSystem(1, 0)
	require.NoError(t, err)

	ran := make(chan struct{}, 1)
	require.NoError(t, js.Submit(JobTask{OnStart: func() error {
		ran <- struct{}{}
		return nil
	}}))
	require.NoError(t, js.Shutdown())
	require.Len(t, ran, 1)

	require.ErrorIs(t, js.Shutdown(), ErrJobSystemClosed)
	require.ErrorIs(t, js.Submit(JobTask{}), ErrJobSystemClosed)
}
