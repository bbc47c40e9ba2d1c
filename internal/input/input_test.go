package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestArrowsAndWASDShareActions(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyUp, glfw.Press)
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)

	d := im.Directions()
	if !d.Forward || !d.Right || d.Backward || d.Left {
		t.Fatalf("Directions() = %+v, want forward and right", d)
	}

	im.HandleKeyEvent(glfw.KeyUp, glfw.Release)
	if im.Directions().Forward {
		t.Errorf("forward still held after release")
	}
}

func TestEdgeDetection(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	if !im.JustPressed(ActionToggleProfiling) {
		t.Fatalf("JustPressed false on the press frame")
	}
	im.PostUpdate()

	// Key repeat keeps the action held without a new edge.
	im.HandleKeyEvent(glfw.KeyV, glfw.Repeat)
	if im.JustPressed(ActionToggleProfiling) || !im.IsActive(ActionToggleProfiling) {
		t.Errorf("repeat should hold without a new press edge")
	}

	im.HandleKeyEvent(glfw.KeyV, glfw.Release)
	if im.IsActive(ActionToggleProfiling) {
		t.Errorf("still active after release")
	}
	im.HandleKeyEvent(glfw.KeyV, glfw.Press)
	im.PostUpdate()
	if im.JustPressed(ActionToggleProfiling) {
		t.Errorf("edge survived PostUpdate")
	}
}

func TestUnboundAndOutOfRange(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyZ, glfw.Press)
	im.HandleActionEvent(ActionCount, true)
	im.HandleActionEvent(-1, true)
	if im.Directions().Any() {
		t.Errorf("unbound input moved the player")
	}
	if im.IsActive(ActionCount) {
		t.Errorf("IsActive(ActionCount) = true")
	}
	if im.IsActive(-1) {
		t.Errorf("IsActive(-1) = true")
	}
}

func TestPointerAndScroll(t *testing.T) {
	im := NewInputManager()
	if _, _, ok := im.Cursor(); ok {
		t.Fatalf("cursor reported before any event")
	}
	im.HandleCursorEvent(320, 200)
	x, y, ok := im.Cursor()
	if !ok || x != 320 || y != 200 {
		t.Errorf("Cursor() = %v, %v, %v", x, y, ok)
	}

	im.HandleScrollEvent(1)
	im.HandleScrollEvent(-0.5)
	if s := im.ConsumeScroll(); s != 0.5 {
		t.Errorf("ConsumeScroll() = %v, want 0.5", s)
	}
	if s := im.ConsumeScroll(); s != 0 {
		t.Errorf("scroll not cleared, got %v", s)
	}
}
