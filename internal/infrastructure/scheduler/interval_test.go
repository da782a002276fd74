package scheduler

import (
	"context"
	"testing"
	"time"
)

func TestStartRunsJobOnInterval(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(5 * time.Millisecond)
	fired := make(chan time.Time, 1)

	err := s.Start(context.Background(), func(t time.Time) {
		select {
		case fired <- t:
		default:
		}
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop(context.Background())

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
}

func TestStartZeroIntervalIsDisabled(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(0)
	if err := s.Start(context.Background(), func(time.Time) {
		t.Error("job ran with zero interval")
	}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestStopHaltsTicking(t *testing.T) {
	t.Parallel()

	s := NewIntervalScheduler(5 * time.Millisecond)
	runs := make(chan struct{}, 64)

	if err := s.Start(context.Background(), func(time.Time) { runs <- struct{}{} }); err != nil {
		t.Fatalf("Start: %v", err)
	}

	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	// Drain anything in flight, then confirm silence.
	time.Sleep(20 * time.Millisecond)
	for len(runs) > 0 {
		<-runs
	}
	select {
	case <-runs:
		t.Fatal("job ran after Stop")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestStopWithoutStart(t *testing.T) {
	t.Parallel()

	if err := NewIntervalScheduler(time.Minute).Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
