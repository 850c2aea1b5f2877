package host

import "time"

// frameClock reports milliseconds since its first reading. Readings never decrease.
type frameClock struct {
	now   func() time.Time
	start time.Time
	last  float64
}

func newFrameClock(now func() time.Time) *frameClock {
	if now == nil {
		now = time.Now
	}
	return &frameClock{now: now}
}

func (c *frameClock) Elapsed() float64 {
	t := c.now()
	if c.start.IsZero() {
		c.start = t
		return 0
	}
	ms := float64(t.Sub(c.start)) / float64(time.Millisecond)
	if ms < c.last {
		ms = c.last
	}
	c.last = ms
	return ms
}
