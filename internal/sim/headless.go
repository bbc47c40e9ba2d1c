package sim

import (
	"context"
	"fmt"
	"time"
)

// TickRate is the nominal frame rate; every smoothing constant assumes it.
const TickRate = 60

// HeadlessStats summarises a headless run.
type HeadlessStats struct {
	Frames   uint64
	Contacts int
	Elapsed  time.Duration
}

// Summary is a one-line description of the world state.
func (w *World) Summary() string {
	p := w.Player
	r := w.lastReport
	return fmt.Sprintf("frame=%d player=(%.2f,%.2f) tether=(%.2f,%.2f) com=(%.2f,%.2f) rope_max=%.3f contacts=[player:%d rope:%d tether:%d animal:%d]",
		w.frame,
		p.Position.X(), p.Position.Z(),
		p.Tether.Position.X(), p.Tether.Position.Z(),
		p.COM.X(), p.COM.Z(),
		p.Rope.MaxSegmentLength(),
		r.PlayerAnimal, r.RopeAnimal, r.TetherAnimal, r.AnimalAnimal)
}

// Done reports whether a front end should stop stepping w: ctx was cancelled
// or maxTicks steps have completed. A maxTicks of 0 means no limit.
func (w *World) Done(ctx context.Context, maxTicks int) bool {
	if ctx.Err() != nil {
		return true
	}
	return maxTicks > 0 && w.frame >= uint64(maxTicks)
}

// RunHeadless steps w on a synthetic TickRate clock with no input until ticks
// frames have run or ctx is cancelled. When logEvery is positive, logf
// receives a Summary every logEvery frames.
func RunHeadless(ctx context.Context, w *World, ticks, logEvery int, logf func(format string, args ...any)) HeadlessStats {
	start := time.Now()
	var stats HeadlessStats
	for !w.Done(ctx, ticks) {
		now := float64(w.frame+1) / TickRate
		report := w.Step(Input{Now: now})
		stats.Contacts += report.Total()
		if logEvery > 0 && logf != nil && w.frame%uint64(logEvery) == 0 {
			logf("%s", w.Summary())
		}
	}
	stats.Frames = w.frame
	stats.Elapsed = time.Since(start)
	return stats
}
