package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func withStatusBuffer(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := statusOut
	statusOut = &buf
	t.Cleanup(func() { statusOut = old })
	return &buf
}

func TestSpinnerStop(t *testing.T) {
	withStatusBuffer(t)

	s := newSpinner(context.Background(), "Searching layouts...")
	s.Start()
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	s.Stop()

	assertStopped(t, s)
}

func assertStopped(t *testing.T, s *Spinner) {
	t.Helper()
	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner goroutine still running")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner(context.Background(), "never shown")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a spinner that was never started")
	}
}

func TestSpinnerFollowsContext(t *testing.T) {
	withStatusBuffer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s := newSpinner(ctx, "Searching layouts...")
	s.Start()
	assertStopped(t, s)
	s.Stop()
}

func TestNilSpinner(t *testing.T) {
	var s *Spinner
	s.Start()
	s.Stop()
}
