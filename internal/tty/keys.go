package tty

import (
	"time"

	"ropepen/internal/input"
)

// HoldDuration is how long a key counts as held after its last press.
// Terminals report presses and repeats but never releases.
const HoldDuration = 150 * time.Millisecond

// holdTracker turns press events into held actions.
type holdTracker struct {
	last [input.ActionCount]time.Time
}

func (h *holdTracker) press(act input.Action, now time.Time) {
	if act < 0 || act >= input.ActionCount {
		return
	}
	h.last[act] = now
}

// apply pushes the held state of every action into im as of now.
func (h *holdTracker) apply(im *input.InputManager, now time.Time) {
	for act := input.Action(0); act < input.ActionCount; act++ {
		t := h.last[act]
		im.HandleActionEvent(act, !t.IsZero() && now.Sub(t) < HoldDuration)
	}
}
