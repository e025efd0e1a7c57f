package correctionui

import (
	"context"
	"sync"
)

type recorderState int

const (
	recorderIdle recorderState = iota
	recorderStarting
	recorderRecording
)

// RecorderGuard tracks whether a recording is in progress so that a release before
// the press completed never stops a recorder that was not started.
type RecorderGuard struct {
	mu        sync.Mutex
	state     recorderState
	cancelled bool
}

// Start calls start and marks the recorder active once it returns. A second Start while
// starting or active is a no-op. If Stop arrived while start was pending, the freshly
// started recorder is torn down with teardown and Start reports false.
func (g *RecorderGuard) Start(ctx context.Context, start, teardown func(context.Context) error) (bool, error) {
	g.mu.Lock()
	if g.state != recorderIdle {
		g.mu.Unlock()
		return false, nil
	}
	g.state = recorderStarting
	g.cancelled = false
	g.mu.Unlock()

	err := start(ctx)

	g.mu.Lock()
	if err != nil {
		g.state = recorderIdle
		g.cancelled = false
		g.mu.Unlock()
		return false, err
	}
	if g.cancelled {
		g.state = recorderIdle
		g.cancelled = false
		g.mu.Unlock()
		return false, teardown(ctx)
	}
	g.state = recorderRecording
	g.mu.Unlock()

	return true, nil
}

// Stop calls stop only when a recording is active. A Stop during a pending Start
// marks it cancelled and returns without calling stop.
func (g *RecorderGuard) Stop(ctx context.Context, stop func(context.Context) error) (bool, error) {
	g.mu.Lock()
	switch g.state {
	case recorderStarting:
		g.cancelled = true
		g.mu.Unlock()
		return false, nil
	case recorderRecording:
		g.state = recorderIdle
		g.mu.Unlock()
		return true, stop(ctx)
	default:
		g.mu.Unlock()
		return false, nil
	}
}

// IsRecording reports whether a started recorder is active
func (g *RecorderGuard) IsRecording() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state == recorderRecording
}
