// Package rope implements a chain of points held between two moving anchors
// by a soft distance constraint.
//
// Each Update runs a single relaxation pass over the interior points. The
// pass nudges points toward satisfying the constraint but does not iterate to
// convergence; calling it every frame with small anchor motion keeps the
// visible stretch bounded.
package rope

import (
	"errors"
	"fmt"

	"ropepen/internal/physics"
	"ropepen/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinPoints    = 2
	DefaultSides = 10
)

// ErrInvalidRope is returned for construction parameters the solver cannot work with.
var ErrInvalidRope = errors.New("invalid rope")

// Rope is an ordered, fixed-length sequence of points. Index 0 and Len()-1 are
// pinned to the anchors on every update.
type Rope struct {
	Thickness  float32 // render radius of each segment
	Sides      int     // render tessellation of each segment
	Constraint float32 // maximum intended distance between consecutive points

	points []mgl32.Vec3
}

// New builds a rope of numPoints points laid out evenly between start and end.
func New(start, end mgl32.Vec3, numPoints int, thickness, constraint float32) (*Rope, error) {
	if numPoints < MinPoints {
		return nil, fmt.Errorf("%w: %d points, need at least %d", ErrInvalidRope, numPoints, MinPoints)
	}
	if constraint <= 0 {
		return nil, fmt.Errorf("%w: constraint %v must be positive", ErrInvalidRope, constraint)
	}
	if thickness < 0 {
		return nil, fmt.Errorf("%w: thickness %v is negative", ErrInvalidRope, thickness)
	}

	r := &Rope{
		Thickness:  thickness,
		Sides:      DefaultSides,
		Constraint: constraint,
		points:     make([]mgl32.Vec3, numPoints),
	}
	r.Initialize(start, end)
	return r, nil
}

// Initialize places every point on the straight line from start to end with
// uniform parametric spacing.
func (r *Rope) Initialize(start, end mgl32.Vec3) {
	last := float32(len(r.points) - 1)
	for i := range r.points {
		r.points[i] = physics.LerpVec3(start, end, float32(i)/last)
	}
}

// Update pins the anchors and runs one relaxation pass. Interior points are
// visited in order, so each point sees its predecessor's new position.
func (r *Rope) Update(start, end mgl32.Vec3) {
	defer profiling.Track("rope.Update")()

	n := len(r.points)
	r.points[0] = start
	r.points[n-1] = end

	for i := 1; i < n-1; i++ {
		prev := r.points[i-1]
		next := r.points[i+1]

		toPrev := physics.ClampLength(r.points[i].Sub(prev), r.Constraint)
		toNext := physics.ClampLength(next.Sub(r.points[i]), r.Constraint)

		r.points[i] = prev.Add(toPrev).Add(next).Sub(toNext).Mul(0.5)
	}
}

// Points exposes the current chain. Callers must not modify it.
func (r *Rope) Points() []mgl32.Vec3 {
	return r.points
}

func (r *Rope) Len() int {
	return len(r.points)
}

func (r *Rope) Start() mgl32.Vec3 {
	return r.points[0]
}

func (r *Rope) End() mgl32.Vec3 {
	return r.points[len(r.points)-1]
}

// MaxSegmentLength returns the longest distance between consecutive points.
func (r *Rope) MaxSegmentLength() float32 {
	var longest float32
	for i := 0; i < len(r.points)-1; i++ {
		if l := r.points[i+1].Sub(r.points[i]).Len(); l > longest {
			longest = l
		}
	}
	return longest
}
