package scene

import (
	"image/color"

	"ropepen/internal/entity"

	"github.com/go-gl/mathgl/mgl32"
)

// minSegmentLength is the shortest rope segment worth a cylinder.
const minSegmentLength = 1e-6

var up = mgl32.Vec3{0, 1, 0}

// ModelMatrix places a mesh at pose with the given per-axis scale.
func ModelMatrix(pose entity.Pose, scale mgl32.Vec3) mgl32.Mat4 {
	rot := pose.Orientation
	if rot.Len() == 0 {
		rot = mgl32.QuatIdent()
	}
	return mgl32.Translate3D(pose.Position.X(), pose.Position.Y(), pose.Position.Z()).
		Mul4(rot.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// SegmentMatrix maps the unit cylinder (y in [0,1], radius 1) onto the
// segment a-b with the given radius. ok is false for degenerate segments.
func SegmentMatrix(a, b mgl32.Vec3, radius float32) (m mgl32.Mat4, ok bool) {
	dir := b.Sub(a)
	length := dir.Len()
	if length < minSegmentLength {
		return mgl32.Mat4{}, false
	}
	rot := mgl32.QuatBetweenVectors(up, dir.Mul(1/length))
	return mgl32.Translate3D(a.X(), a.Y(), a.Z()).
		Mul4(rot.Mat4()).
		Mul4(mgl32.Scale3D(radius, length, radius)), true
}

// ColorVec converts an 8-bit color to the shader's 0..1 range.
func ColorVec(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
