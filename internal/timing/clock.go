// Package timing provides the monotonic time source driving animation.
// Components take a Clock instead of reading the frame scheduler directly so
// tests can step time deterministically.
package timing

import "time"

// Clock reports monotonic elapsed time.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures elapsed wall time from its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock only moves when advanced.
type ManualClock struct {
	now time.Duration
}

func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}
