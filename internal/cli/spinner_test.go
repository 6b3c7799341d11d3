package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Generating...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.Cancelled() {
		t.Error("plain Stop should not report cancellation")
	}
}

func TestSpinnerWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Generating...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner not cancelled after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinnerWithContext(context.Background(), "Generating...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}
