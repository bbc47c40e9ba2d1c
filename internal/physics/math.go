package physics

import "github.com/go-gl/mathgl/mgl32"

// Lerp moves position toward target by rate. Rates are per-frame factors, not
// scaled by elapsed time.
func Lerp(position, target, rate float32) float32 {
	return position + (target-position)*rate
}

// LerpVec3 is the component-wise form of Lerp.
func LerpVec3(position, target mgl32.Vec3, rate float32) mgl32.Vec3 {
	return position.Add(target.Sub(position).Mul(rate))
}

// ClampLength shortens v to limit while keeping its direction.
// Vectors already within limit are returned unchanged.
func ClampLength(v mgl32.Vec3, limit float32) mgl32.Vec3 {
	l := v.Len()
	if l <= limit || l == 0 {
		return v
	}
	return v.Mul(limit / l)
}
