package host

import (
	"testing"
	"time"
)

func TestFrameClockStartsAtZeroAndNeverDecreases(t *testing.T) {
	now := time.Unix(100, 0)
	c := newFrameClock(func() time.Time { return now })

	if got := c.Elapsed(); got != 0 {
		t.Fatalf("first reading: got %v", got)
	}

	now = now.Add(16 * time.Millisecond)
	if got := c.Elapsed(); got != 16 {
		t.Fatalf("after 16ms: got %v", got)
	}

	now = now.Add(-10 * time.Millisecond) // wall clock stepped back
	if got := c.Elapsed(); got != 16 {
		t.Fatalf("after step back: got %v", got)
	}

	now = now.Add(1500 * time.Microsecond)
	if got := c.Elapsed(); got != 16 {
		t.Fatalf("still behind: got %v", got)
	}

	now = now.Add(20 * time.Millisecond)
	if got := c.Elapsed(); got != 27.5 {
		t.Fatalf("after catch-up: got %v", got)
	}
}
