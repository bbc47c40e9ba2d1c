package scene

import (
	"image/color"
	"testing"

	"ropepen/internal/entity"

	"github.com/go-gl/mathgl/mgl32"
)

func near(a, b mgl32.Vec3) bool {
	return a.Sub(b).Len() < 1e-4
}

func TestSegmentMatrixMapsUnitCylinder(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl32.Vec3
	}{
		{"up", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}},
		{"along x", mgl32.Vec3{1, 1, 1}, mgl32.Vec3{4, 1, 1}},
		{"diagonal", mgl32.Vec3{0, 1, 10}, mgl32.Vec3{0.1, 0.9, 9.95}},
		{"straight down", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := SegmentMatrix(tt.a, tt.b, 0.1)
			if !ok {
				t.Fatalf("SegmentMatrix reported a degenerate segment")
			}
			base := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
			top := m.Mul4x1(mgl32.Vec4{0, 1, 0, 1}).Vec3()
			if !near(base, tt.a) || !near(top, tt.b) {
				t.Errorf("axis maps to %v..%v, want %v..%v", base, top, tt.a, tt.b)
			}
			rim := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
			if d := rim.Sub(tt.a).Len(); d < 0.0999 || d > 0.1001 {
				t.Errorf("radius maps to %f, want 0.1", d)
			}
		})
	}
}

func TestSegmentMatrixSkipsZeroLength(t *testing.T) {
	p := mgl32.Vec3{3, 1, 3}
	if _, ok := SegmentMatrix(p, p, 0.1); ok {
		t.Errorf("zero-length segment should be skipped")
	}
}

func TestModelMatrix(t *testing.T) {
	pose := entity.Pose{Position: mgl32.Vec3{2, 1, -3}}
	m := ModelMatrix(pose, mgl32.Vec3{2, 2, 2})
	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	if !near(corner, mgl32.Vec3{3, 2, -2}) {
		t.Errorf("corner at %v, want (3, 2, -2)", corner)
	}

	pose.Orientation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	m = ModelMatrix(pose, mgl32.Vec3{1, 1, 1})
	x := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	if !near(x, mgl32.Vec3{2, 1, -4}) {
		t.Errorf("rotated +X lands at %v, want (2, 1, -4)", x)
	}
}

func TestColorVec(t *testing.T) {
	got := ColorVec(color.RGBA{R: 255, G: 0, B: 51, A: 255})
	if !near(got, mgl32.Vec3{1, 0, 0.2}) {
		t.Errorf("ColorVec = %v", got)
	}
}
