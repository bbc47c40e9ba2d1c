package game

import (
	"time"

	"ropepen/internal/camera"
	"ropepen/internal/config"
	"ropepen/internal/graphics/renderables/hud"
	"ropepen/internal/graphics/renderables/scene"
	"ropepen/internal/graphics/renderer"
	standardInput "ropepen/internal/input"
	"ropepen/internal/profiling"
	"ropepen/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Session ties one simulated world to the window that shows it.
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	World    *sim.World

	fps FPSCounter
}

// NewSession builds the renderables for w at the window's framebuffer size.
func NewSession(window *glfw.Window, w *sim.World) (*Session, error) {
	fbWidth, fbHeight := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbWidth, fbHeight,
		scene.NewScene(w.Player.Rope.Sides),
		hud.NewHUD(),
	)
	if err != nil {
		return nil, err
	}
	return &Session{Window: window, Renderer: r, World: w}, nil
}

// Cleanup releases GPU resources.
func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Renderer = nil
}

// Update samples input and advances the world by one frame.
func (s *Session) Update(im *standardInput.InputManager) {
	defer profiling.Track("session.Update")()

	s.handleInputActions(im)

	in := sim.Input{
		Now:        glfw.GetTime(),
		Directions: im.Directions(),
		Scroll:     im.ConsumeScroll(),
	}
	if x, y, ok := im.Cursor(); ok {
		width, height := s.Window.GetSize()
		if ray, err := s.World.PointerRay(x, y, width, height); err == nil {
			in.Pointer = ray
		}
	}
	s.World.Step(in)
}

// Render draws the current world state.
func (s *Session) Render(dt float64) {
	fps := s.fps.Tick(time.Now())
	s.Renderer.Render(s.World, dt, fps)
}

func (s *Session) handleInputActions(im *standardInput.InputManager) {
	if im.JustPressed(standardInput.ActionToggleProfiling) {
		config.ToggleProfiling()
	}
	if im.JustPressed(standardInput.ActionToggleProjection) {
		cam := s.World.Camera
		if cam.Projection == camera.Perspective {
			cam.Projection = camera.Orthographic
		} else {
			cam.Projection = camera.Perspective
		}
	}
	if im.JustPressed(standardInput.ActionQuit) {
		s.Window.SetShouldClose(true)
	}
}
