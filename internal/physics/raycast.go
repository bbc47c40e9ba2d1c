package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// rayEpsilon is the smallest |Direction.Y| treated as crossing a horizontal plane.
const rayEpsilon = 1e-6

// Ray is a half-line starting at Origin.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlaneY intersects the ray with the horizontal plane at height y.
// The returned point has its Y forced to exactly y. ok is false for rays
// parallel to the plane or pointing away from it.
func IntersectPlaneY(r Ray, y float32) (point mgl32.Vec3, t float32, ok bool) {
	if mgl32.Abs(r.Direction.Y()) < rayEpsilon {
		return mgl32.Vec3{}, 0, false
	}
	t = (y - r.Origin.Y()) / r.Direction.Y()
	if t < 0 {
		return mgl32.Vec3{}, t, false
	}
	hit := r.At(t)
	return mgl32.Vec3{hit.X(), y, hit.Z()}, t, true
}
