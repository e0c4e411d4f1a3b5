package cli

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	s := newSpinner("Testing...")
	var buf bytes.Buffer
	s.w = &buf
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	s.Stop()

	if buf.Len() == 0 {
		t.Error("spinner wrote no frames")
	}
	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop without parent cancellation")
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner("never started")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop() blocked on a spinner that was never started")
	}
}

func TestSpinnerParentCancellation(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) }},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			s := newSpinnerWithContext(ctx, "waiting")
			s.w = &bytes.Buffer{}
			s.Start()
			if tt.name == "cancel" {
				cancel()
			}
			time.Sleep(100 * time.Millisecond)
			defer cancel()

			if !s.Cancelled() {
				t.Error("Cancelled() = false after parent context ended")
			}
			s.Stop()
		})
	}
}

func TestSpinnerSetMessage(t *testing.T) {
	s := newSpinner("first")
	s.w = &bytes.Buffer{}
	s.SetMessage("second")
	if s.message != "second" {
		t.Errorf("message = %q, want %q", s.message, "second")
	}
	s.Stop()
}
