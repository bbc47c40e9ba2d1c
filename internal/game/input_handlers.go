package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupInputHandlers routes window events to the input manager and keeps the
// renderer viewport in sync with the framebuffer.
func SetupInputHandlers(app *App) {
	window := app.window
	app.inputManager.SetCallbacks(window)

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		if app.session == nil {
			return
		}
		app.session.Renderer.UpdateViewport(fbWidth, fbHeight)
		app.RefreshRender()
	})
}
