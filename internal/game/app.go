package game

import (
	"context"
	"log"
	"time"

	standardInput "ropepen/internal/input"
	"ropepen/internal/profiling"
	"ropepen/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged.
const slowFrame = 16 * time.Millisecond

// App runs the windowed frame loop.
type App struct {
	window       *glfw.Window
	inputManager *standardInput.InputManager
	session      *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
}

// NewApp creates the session for w and installs the input callbacks.
func NewApp(window *glfw.Window, im *standardInput.InputManager, w *sim.World) (*App, error) {
	session, err := NewSession(window, w)
	if err != nil {
		return nil, err
	}
	app := &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
	}
	SetupInputHandlers(app)
	return app, nil
}

// Run loops until the window is asked to close, ctx is cancelled or
// maxTicks frames have run (0 means no limit).
func (a *App) Run(ctx context.Context, maxTicks int) {
	for !a.window.ShouldClose() && !a.session.World.Done(ctx, maxTicks) {
		a.tick()
	}
}

// Close releases the session.
func (a *App) Close() {
	if a.session != nil {
		a.session.Cleanup()
		a.session = nil
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	a.session.Update(a.inputManager)
	a.session.Render(dt)

	a.window.SwapBuffers()

	if d := time.Since(startTick); d > slowFrame {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate() // Clear "JustPressed" flags
	a.fpsLimiter.Wait()
}

// RefreshRender repaints while the window is being resized.
func (a *App) RefreshRender() {
	if a.session == nil {
		return
	}
	a.session.Render(0)
	a.window.SwapBuffers()
}
