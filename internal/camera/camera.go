package camera

import (
	"errors"
	"runtime"

	"ropepen/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Projection selects how the camera maps the scene to the screen.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

const (
	DefaultFOVY = 60.0
	MinFOVY     = 20.0
	MaxFOVY     = 100.0

	// TargetRate is the per-frame easing of the look target toward the center of mass.
	TargetRate = 0.2

	NearPlane = 0.01
	FarPlane  = 1000.0
)

// Offset places the camera above and behind the player.
var Offset = mgl32.Vec3{0, 15, 8}

// ErrDegenerateView is returned when the view or projection cannot be inverted.
var ErrDegenerateView = errors.New("degenerate camera view")

// Camera is a look-at camera that trails the player.
type Camera struct {
	Position   mgl32.Vec3
	Target     mgl32.Vec3
	Up         mgl32.Vec3
	FOVY       float32 // vertical field of view in degrees
	Projection Projection
}

func New() *Camera {
	return &Camera{
		Position:   Offset,
		Target:     mgl32.Vec3{0, 10, 10},
		Up:         mgl32.Vec3{0, 1, 0},
		FOVY:       DefaultFOVY,
		Projection: Perspective,
	}
}

// Follow eases the look target toward com on the ground plane and pins the
// camera at a fixed offset from the player.
func (c *Camera) Follow(com, playerPos mgl32.Vec3) {
	c.Target[0] = physics.Lerp(c.Target[0], com.X(), TargetRate)
	c.Target[2] = physics.Lerp(c.Target[2], com.Z(), TargetRate)
	c.Target[1] = 0
	c.Position = playerPos.Add(Offset)
}

// ZoomStep is how many degrees one wheel notch changes the field of view.
// Windows reports smaller wheel deltas, so it gets a larger step.
func ZoomStep() float32 {
	if runtime.GOOS == "windows" {
		return 3
	}
	return 1
}

// Zoom narrows the field of view for positive wheel input and widens it for
// negative input, clamped to [MinFOVY, MaxFOVY].
func (c *Camera) Zoom(wheel float32) {
	c.FOVY -= wheel * ZoomStep()
	c.FOVY = mgl32.Clamp(c.FOVY, MinFOVY, MaxFOVY)
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// ProjectionMatrix builds the projection for a viewport with the given aspect
// ratio. Orthographic mode uses FOVY as the visible height in world units.
func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	if c.Projection == Orthographic {
		top := c.FOVY / 2
		right := top * aspect
		return mgl32.Ortho(-right, right, -top, top, NearPlane, FarPlane)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FOVY), aspect, NearPlane, FarPlane)
}

// ScreenRay returns the world-space ray under the pixel (x, y) of a
// width x height viewport. Screen y grows downward.
func (c *Camera) ScreenRay(x, y float64, width, height int) (physics.Ray, error) {
	if width <= 0 || height <= 0 {
		return physics.Ray{}, ErrDegenerateView
	}
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix(float32(width) / float32(height))

	winX := float32(x)
	winY := float32(height) - float32(y)
	near, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return physics.Ray{}, ErrDegenerateView
	}
	far, err := mgl32.UnProject(mgl32.Vec3{winX, winY, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return physics.Ray{}, ErrDegenerateView
	}

	dir := far.Sub(near)
	if dir.Len() == 0 {
		return physics.Ray{}, ErrDegenerateView
	}
	origin := c.Position
	if c.Projection == Orthographic {
		origin = near
	}
	return physics.Ray{Origin: origin, Direction: dir.Normalize()}, nil
}
