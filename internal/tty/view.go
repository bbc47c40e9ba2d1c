package tty

import (
	"math"

	"ropepen/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
)

// BaseExtent is the half depth of the world shown at the default FOV.
const BaseExtent = 20.0

// cellAspect is how many times taller a terminal cell is than it is wide.
const cellAspect = 2.0

// View maps the XZ plane onto a grid of terminal cells with -Z at the top,
// matching what the 3D camera shows.
type View struct {
	Width, Height int
	CenterX       float32
	CenterZ       float32
	Extent        float32 // world units from the center to the top row
}

// ViewFor centres on the camera target and scales with its zoom.
func ViewFor(cam *camera.Camera, width, height int) View {
	return View{
		Width:   width,
		Height:  height,
		CenterX: cam.Target.X(),
		CenterZ: cam.Target.Z(),
		Extent:  BaseExtent * cam.FOVY / camera.DefaultFOVY,
	}
}

// rowSize is the world depth covered by one row.
func (v View) rowSize() float32 {
	if v.Height <= 0 {
		return 0
	}
	return 2 * v.Extent / float32(v.Height)
}

func (v View) colSize() float32 {
	return v.rowSize() / cellAspect
}

// ToCell returns the cell containing world point p. ok is false when the
// point falls outside the grid.
func (v View) ToCell(p mgl32.Vec3) (x, y int, ok bool) {
	rs, cs := v.rowSize(), v.colSize()
	if rs == 0 || v.Width <= 0 {
		return 0, 0, false
	}
	fx := (p.X()-v.CenterX)/cs + float32(v.Width)/2
	fy := (p.Z()-v.CenterZ)/rs + float32(v.Height)/2
	x = int(math.Floor(float64(fx)))
	y = int(math.Floor(float64(fy)))
	return x, y, x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// ToWorld returns the world point at the centre of cell (x, y) on plane y=0.
func (v View) ToWorld(x, y int) mgl32.Vec3 {
	rs, cs := v.rowSize(), v.colSize()
	return mgl32.Vec3{
		v.CenterX + (float32(x)+0.5-float32(v.Width)/2)*cs,
		0,
		v.CenterZ + (float32(y)+0.5-float32(v.Height)/2)*rs,
	}
}
