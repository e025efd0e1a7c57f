package correctionui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noTeardown(t *testing.T) func(context.Context) error {
	return func(context.Context) error {
		t.Error("teardown must not run")
		return nil
	}
}

func TestRecorderGuard_StopBeforeStart(t *testing.T) {
	var guard RecorderGuard
	stopped := false

	ok, err := guard.Stop(context.Background(), func(context.Context) error {
		stopped = true
		return nil
	})

	assert.False(t, ok)
	assert.NoError(t, err)
	assert.False(t, stopped)
}

func TestRecorderGuard_StartThenStop(t *testing.T) {
	var guard RecorderGuard
	starts, stops := 0, 0

	ok, err := guard.Start(context.Background(), func(context.Context) error {
		starts++
		return nil
	}, noTeardown(t))
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, guard.IsRecording())

	ok, err = guard.Start(context.Background(), func(context.Context) error {
		starts++
		return nil
	}, noTeardown(t))
	assert.False(t, ok)
	assert.NoError(t, err)

	ok, err = guard.Stop(context.Background(), func(context.Context) error {
		stops++
		return nil
	})
	assert.True(t, ok)
	assert.NoError(t, err)

	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, stops)
	assert.False(t, guard.IsRecording())
}

func TestRecorderGuard_FailedStartClearsFlag(t *testing.T) {
	var guard RecorderGuard
	permissionErr := errors.New("microphone permission denied")

	ok, err := guard.Start(context.Background(), func(context.Context) error {
		return permissionErr
	}, noTeardown(t))

	assert.False(t, ok)
	assert.ErrorIs(t, err, permissionErr)
	assert.False(t, guard.IsRecording())

	ok, err = guard.Stop(context.Background(), func(context.Context) error {
		t.Fatal("stop must not run after a failed start")
		return nil
	})
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestRecorderGuard_StopErrorStillClearsFlag(t *testing.T) {
	var guard RecorderGuard
	_, _ = guard.Start(context.Background(), func(context.Context) error { return nil }, noTeardown(t))

	ok, err := guard.Stop(context.Background(), func(context.Context) error {
		return errors.New("encoder flush failed")
	})

	assert.True(t, ok)
	assert.Error(t, err)
	assert.False(t, guard.IsRecording())
}

func TestRecorderGuard_ReleaseWhileStartPending(t *testing.T) {
	var guard RecorderGuard
	entered := make(chan struct{})
	release := make(chan struct{})
	var stopCalls, teardownCalls int

	var wg sync.WaitGroup
	var started bool
	var startErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		started, startErr = guard.Start(context.Background(), func(context.Context) error {
			close(entered)
			<-release
			return nil
		}, func(context.Context) error {
			teardownCalls++
			return nil
		})
	}()

	select {
	case <-entered:
	case <-time.After(time.Second):
		t.Fatal("start was never called")
	}

	ok, err := guard.Stop(context.Background(), func(context.Context) error {
		stopCalls++
		return nil
	})
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.False(t, guard.IsRecording())

	close(release)
	wg.Wait()

	require.NoError(t, startErr)
	assert.False(t, started)
	assert.Equal(t, 0, stopCalls)
	assert.Equal(t, 1, teardownCalls)
	assert.False(t, guard.IsRecording())

	ok, err = guard.Start(context.Background(), func(context.Context) error { return nil }, noTeardown(t))
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, guard.IsRecording())
}

func TestRecorderGuard_StartWhilePendingIsNoop(t *testing.T) {
	var guard RecorderGuard
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = guard.Start(context.Background(), func(context.Context) error {
			close(entered)
			<-release
			return nil
		}, noTeardown(t))
	}()
	<-entered

	ok, err := guard.Start(context.Background(), func(context.Context) error {
		t.Error("second start must not run")
		return nil
	}, noTeardown(t))
	assert.False(t, ok)
	assert.NoError(t, err)

	close(release)
	<-done
	assert.True(t, guard.IsRecording())
}
