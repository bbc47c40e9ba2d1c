package renderer

import (
	"fmt"

	"ropepen/internal/profiling"
	"ropepen/internal/sim"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	renderables []Renderable
	width       int
	height      int
}

// NewRenderer configures GL state and initializes every renderable in order.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.MULTISAMPLE)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			// Dispose the ones already initialized
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %d: %w", i, err)
		}
	}

	renderer := &Renderer{renderables: rs}
	renderer.UpdateViewport(width, height)
	return renderer, nil
}

// Render draws one frame of w as seen by its camera.
func (r *Renderer) Render(w *sim.World, dt, fps float64) {
	defer profiling.Track("render.Frame")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if r.height > 0 {
		aspect = float32(r.width) / float32(r.height)
	}

	cam := w.Camera
	ctx := RenderContext{
		Camera: cam,
		World:  w,
		DT:     dt,
		FPS:    fps,
		View:   cam.ViewMatrix(),
		Proj:   cam.ProjectionMatrix(aspect),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}

// UpdateViewport resizes the GL viewport and notifies every renderable.
func (r *Renderer) UpdateViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}
