package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// fallbackNormal separates spheres whose centers coincide exactly.
var fallbackNormal = mgl32.Vec3{1, 0, 0}

// ClosestPointOnSegment returns the point of segment [start, end] nearest to point.
// A zero-length segment collapses to start.
func ClosestPointOnSegment(point, start, end mgl32.Vec3) mgl32.Vec3 {
	line := end.Sub(start)
	length := line.Len()
	if length == 0 {
		return start
	}
	dir := line.Mul(1.0 / length)

	t := point.Sub(start).Dot(dir)
	t = mgl32.Clamp(t, 0, length)

	return start.Add(dir.Mul(t))
}

// PointSegmentCollides reports whether point lies within threshold of the segment.
func PointSegmentCollides(point, start, end mgl32.Vec3, threshold float32) bool {
	closest := ClosestPointOnSegment(point, start, end)
	return point.Sub(closest).Len() <= threshold
}

// SpheresOverlap reports whether two spheres touch or interpenetrate.
func SpheresOverlap(c1 mgl32.Vec3, r1 float32, c2 mgl32.Vec3, r2 float32) bool {
	d := c2.Sub(c1)
	sum := r1 + r2
	return d.Dot(d) <= sum*sum
}

// Separation returns the unit normal pointing from c1 to c2 and the amount by
// which the spheres interpenetrate. ok is false when they do not overlap.
func Separation(c1 mgl32.Vec3, r1 float32, c2 mgl32.Vec3, r2 float32) (normal mgl32.Vec3, overlap float32, ok bool) {
	if !SpheresOverlap(c1, r1, c2, r2) {
		return mgl32.Vec3{}, 0, false
	}
	d := c2.Sub(c1)
	dist := d.Len()
	if dist == 0 {
		return fallbackNormal, r1 + r2, true
	}
	return d.Mul(1.0 / dist), r1 + r2 - dist, true
}
