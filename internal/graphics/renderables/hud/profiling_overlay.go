package hud

import (
	"fmt"
	"strings"
	"time"

	"ropepen/internal/profiling"
)

// historyLen is the number of frames averaged by the overlay.
const historyLen = 60

// frameStats keeps a rolling window of scene render durations.
type frameStats struct {
	history []time.Duration
	last    time.Duration
	min     time.Duration
	max     time.Duration
	avg     time.Duration
}

func (s *frameStats) record(d time.Duration) {
	s.last = d
	if len(s.history) >= historyLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))
}

func (s *frameStats) lines() []string {
	lines := []string{
		fmt.Sprintf("Scene: %s (avg %s, min %s, max %s)",
			profiling.FormatMs(s.last), profiling.FormatMs(s.avg),
			profiling.FormatMs(s.min), profiling.FormatMs(s.max)),
		fmt.Sprintf("Step: %s | rope: %s | collisions: %s",
			profiling.FormatMs(profiling.SumWithPrefix("sim.")),
			profiling.FormatMs(profiling.SumWithPrefix("rope.")),
			profiling.FormatMs(profiling.SumWithPrefix("collision."))),
	}
	if top := profiling.TopN(8); top != "" {
		for line := range strings.SplitSeq(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0ms") {
				lines = append(lines, line)
			}
		}
	}
	return lines
}
