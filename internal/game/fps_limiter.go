package game

import (
	"time"

	"ropepen/internal/config"
)

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a new FPS limiter
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due under config.GetFPSLimit.
// Uses a hybrid sleep/spin approach for better precision on high FPS caps.
func (f *FPSLimiter) Wait() {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)

	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// busy-wait for the final few microseconds
		if time.Until(f.next) <= 0 {
			break
		}
	}

	// Late by more than a frame (hitch): resync instead of bursting
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	frames int
	since  time.Time
	fps    float64
}

// Tick records a frame at now and returns the latest completed rate.
func (c *FPSCounter) Tick(now time.Time) float64 {
	if c.since.IsZero() {
		c.since = now
	}
	c.frames++
	if elapsed := now.Sub(c.since); elapsed >= time.Second {
		c.fps = float64(c.frames) / elapsed.Seconds()
		c.frames = 0
		c.since = now
	}
	return c.fps
}
