package physics_test

import (
	"ropepen/internal/physics"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIntersectPlaneY(t *testing.T) {
	// Straight down from (0,5,0) onto y=1
	ray := physics.Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, -1, 0}}
	point, dist, ok := physics.IntersectPlaneY(ray, 1.0)
	if !ok {
		t.Fatalf("Expected hit, got miss")
	}
	if dist != 4 {
		t.Errorf("Expected t=4, got %f", dist)
	}
	if !closeTo(point, mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Expected point (0,1,0), got %v", point)
	}

	// Oblique ray, Y of the result is forced to the plane height
	oblique := physics.Ray{Origin: mgl32.Vec3{0, 15, 8}, Direction: mgl32.Vec3{1, -2, -1}.Normalize()}
	point, _, ok = physics.IntersectPlaneY(oblique, 1.0)
	if !ok {
		t.Fatalf("Expected oblique hit, got miss")
	}
	if point.Y() != 1.0 {
		t.Errorf("Expected y=1, got %f", point.Y())
	}
	if !closeTo(point, mgl32.Vec3{7, 1, 1}) {
		t.Errorf("Expected (7,1,1), got %v", point)
	}

	// Parallel ray never reaches the plane
	flat := physics.Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{1, 0, 0}}
	if _, _, ok := physics.IntersectPlaneY(flat, 1.0); ok {
		t.Errorf("Expected miss for parallel ray")
	}

	// Pointing away from the plane
	up := physics.Ray{Origin: mgl32.Vec3{0, 5, 0}, Direction: mgl32.Vec3{0, 1, 0}}
	if _, _, ok := physics.IntersectPlaneY(up, 1.0); ok {
		t.Errorf("Expected miss for ray pointing away")
	}
}

func closeTo(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}
