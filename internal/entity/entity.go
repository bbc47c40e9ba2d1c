package entity

import (
	"image/color"

	"ropepen/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Directions is the state of the four movement inputs for one frame.
// Any combination may be active at once.
type Directions struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether at least one direction is held.
func (d Directions) Any() bool {
	return d.Forward || d.Backward || d.Left || d.Right
}

// Context carries the per-frame inputs every simulated entity may read.
type Context struct {
	Frame      uint64
	Now        float64 // seconds on the input clock
	Directions Directions
	Pointer    *physics.Ray // nil when no pointer ray is available this frame
}

// Pose is what the renderer needs to draw an entity.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Color       color.RGBA
}

// Simulatable is implemented by everything the frame loop advances.
type Simulatable interface {
	Update(ctx *Context)
	Pose() Pose
}
