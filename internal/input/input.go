package input

import (
	"sync"

	"ropepen/internal/entity"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionMoveForward Action = iota
	ActionMoveBackward
	ActionMoveLeft
	ActionMoveRight
	ActionToggleProfiling
	ActionToggleProjection
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and accumulates the
// pointer state sampled once per frame.
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	currentState [ActionCount]bool

	// Reset each frame by PostUpdate
	justPressed [ActionCount]bool

	cursorX, cursorY float64
	hasCursor        bool
	scroll           float32
}

// NewInputManager creates an InputManager with WASD and arrow key movement.
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyW, ActionMoveForward)
	im.BindKey(glfw.KeyUp, ActionMoveForward)
	im.BindKey(glfw.KeyS, ActionMoveBackward)
	im.BindKey(glfw.KeyDown, ActionMoveBackward)
	im.BindKey(glfw.KeyA, ActionMoveLeft)
	im.BindKey(glfw.KeyLeft, ActionMoveLeft)
	im.BindKey(glfw.KeyD, ActionMoveRight)
	im.BindKey(glfw.KeyRight, ActionMoveRight)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyP, ActionToggleProjection)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// HandleKeyEvent processes a GLFW key event.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	pressed := action == glfw.Press || action == glfw.Repeat
	for _, act := range actions {
		im.HandleActionEvent(act, pressed)
	}
}

// HandleActionEvent sets the state of a logical action directly. Front ends
// without GLFW key codes feed their events through here.
func (im *InputManager) HandleActionEvent(act Action, pressed bool) {
	if act < 0 || act >= ActionCount {
		return
	}

	im.mu.Lock()
	defer im.mu.Unlock()

	// Detect edges immediately when event arrives
	if pressed && !im.currentState[act] {
		im.justPressed[act] = true
	}
	im.currentState[act] = pressed
}

// HandleCursorEvent records the pointer position in window coordinates.
func (im *InputManager) HandleCursorEvent(x, y float64) {
	im.mu.Lock()
	im.cursorX, im.cursorY = x, y
	im.hasCursor = true
	im.mu.Unlock()
}

// HandleScrollEvent accumulates vertical wheel movement.
func (im *InputManager) HandleScrollEvent(yoff float64) {
	im.mu.Lock()
	im.scroll += float32(yoff)
	im.mu.Unlock()
}

// Cursor returns the last pointer position and whether one was ever seen.
func (im *InputManager) Cursor() (x, y float64, ok bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.cursorX, im.cursorY, im.hasCursor
}

// ConsumeScroll returns the wheel movement since the previous call.
func (im *InputManager) ConsumeScroll() float32 {
	im.mu.Lock()
	defer im.mu.Unlock()
	s := im.scroll
	im.scroll = 0
	return s
}

// Directions returns the held movement actions.
func (im *InputManager) Directions() entity.Directions {
	return entity.Directions{
		Forward:  im.IsActive(ActionMoveForward),
		Backward: im.IsActive(ActionMoveBackward),
		Left:     im.IsActive(ActionMoveLeft),
		Right:    im.IsActive(ActionMoveRight),
	}
}

// SetCallbacks installs the key, cursor and scroll callbacks on window.
// This should be called once during initialization
func (im *InputManager) SetCallbacks(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		im.HandleCursorEvent(x, y)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		im.HandleScrollEvent(yoff)
	})
}

// PostUpdate must be called at the end of each frame to update edge detection states
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := range ActionCount {
		im.justPressed[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}
