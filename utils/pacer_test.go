package utils

import (
	"context"
	"testing"
	"time"
)

func TestPacerEnforcesInterval(t *testing.T) {
	pacer := NewPacer(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := pacer.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	elapsed := time.Since(start)

	// First slot is immediate, the next two each wait one interval.
	if elapsed < 100*time.Millisecond {
		t.Errorf("3 waits took %v, want at least 100ms", elapsed)
	}
}

func TestPacerDisabled(t *testing.T) {
	pacer := NewPacer(0)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 100; i++ {
		if err := pacer.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("disabled pacer must not block, took %v", elapsed)
	}
}

func TestPacerCancelledContext(t *testing.T) {
	pacer := NewPacer(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	// Consume the immediate slot, then cancel before the next one.
	if err := pacer.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := pacer.Wait(ctx); err == nil {
		t.Error("want error after context cancellation")
	}
}
