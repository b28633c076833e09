package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_StartRunsJobWithDeadline(t *testing.T) {
	s := NewScheduler()

	ran := make(chan bool, 1)
	s.AddJob("sweep", time.Hour, func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		ran <- ok
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case hadDeadline := <-ran:
		assert.True(t, hadDeadline, "job run should be bounded by a deadline")
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopCancelsJobContext(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	s.AddJob("blocker", time.Hour, func(ctx context.Context) error {
		<-ctx.Done()
		close(done)
		return ctx.Err()
	})

	s.Start()
	s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not canceled on stop")
	}
}

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	calls := 0
	s.AddJob("a", time.Hour, func(ctx context.Context) error {
		calls++
		return nil
	})
	s.AddJob("b", time.Hour, func(ctx context.Context) error {
		calls++
		return errors.New("sweep failed")
	})

	s.RunOnce(context.Background())
	require.Equal(t, 2, calls)
}
