package game

import (
	"testing"
	"time"

	"ropepen/internal/config"
)

func TestFPSLimiterPacesFrames(t *testing.T) {
	prev := config.GetFPSLimit()
	defer config.SetFPSLimit(prev)
	config.SetFPSLimit(100)

	l := NewFPSLimiter()
	start := time.Now()
	for i := 0; i < 10; i++ {
		l.Wait()
	}
	if elapsed := time.Since(start); elapsed < 95*time.Millisecond {
		t.Errorf("10 frames at 100 FPS took %v, want about 100ms", elapsed)
	}
}

func TestFPSLimiterResyncsAfterHitch(t *testing.T) {
	prev := config.GetFPSLimit()
	defer config.SetFPSLimit(prev)
	config.SetFPSLimit(100)

	l := NewFPSLimiter()
	l.Wait()
	time.Sleep(50 * time.Millisecond)
	l.Wait()
	if ahead := time.Until(l.next); ahead <= 0 || ahead > 10*time.Millisecond {
		t.Errorf("next frame %v ahead after a hitch, want within one frame", ahead)
	}
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	base := time.Unix(100, 0)
	for i := 0; i < 60; i++ {
		if got := c.Tick(base.Add(time.Duration(i) * time.Second / 60)); got != 0 {
			t.Fatalf("rate reported before a full second: %v", got)
		}
	}
	if got := c.Tick(base.Add(time.Second)); got != 61 {
		t.Errorf("Tick() = %v, want 61", got)
	}
}
