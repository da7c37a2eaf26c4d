package nfsengine

import (
	"context"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacadeStopResolvesExactlyOnce(t *testing.T) {
	f, err := NewFacade(&mockDispatcher{}, Config{}, log.NewNopLogger(), func(ctx context.Context, _ *Router) error {
		<-ctx.Done()
		return nil
	})
	require.NoError(t, err)

	startDone := make(chan error, 1)
	go func() { startDone <- f.Start(context.Background()) }()

	// Give Start's goroutine a chance to install the run.Group actors.
	time.Sleep(20 * time.Millisecond)

	err1 := f.Stop()
	err2 := f.Stop()
	assert.Equal(t, err1, err2)

	select {
	case <-startDone:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after Stop")
	}

	select {
	case <-f.Done():
	default:
		t.Fatal("Done channel not closed after Start returned")
	}
}

func TestFacadeStartTwiceFails(t *testing.T) {
	f, err := NewFacade(&mockDispatcher{}, Config{}, log.NewNopLogger(), func(ctx context.Context, _ *Router) error {
		<-ctx.Done()
		return nil
	})
	require.NoError(t, err)

	go f.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	err = f.Start(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyStarted)

	f.Stop()
}

func TestFacadeStopBeforeStartIsSafe(t *testing.T) {
	f, err := NewFacade(&mockDispatcher{}, Config{}, log.NewNopLogger(), func(ctx context.Context, _ *Router) error {
		<-ctx.Done()
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, f.Stop())
}

func TestNewFacadeRejectsInvalidConfig(t *testing.T) {
	_, err := NewFacade(&mockDispatcher{}, Config{RequestTimeoutMillis: -1}, log.NewNopLogger(), nil)
	assert.Error(t, err)
}
