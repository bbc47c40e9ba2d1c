package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMeshVertexCounts(t *testing.T) {
	tests := []struct {
		name string
		mesh MeshData
		want int
	}{
		{"cube", CubeMesh(), 36},
		{"plane", PlaneMesh(), 6},
		{"sphere", SphereMesh(8, 12), (2*8 - 2) * 12 * 3},
		{"cylinder", CylinderMesh(10), 10 * 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mesh.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
			if tt.mesh.VertexCount()%3 != 0 {
				t.Errorf("not a triangle list")
			}
		})
	}
}

// Every triangle must wind counter-clockwise when seen from the side its
// normals point to, or back-face culling drops it.
func TestMeshWinding(t *testing.T) {
	meshes := map[string]MeshData{
		"cube":     CubeMesh(),
		"plane":    PlaneMesh(),
		"sphere":   SphereMesh(8, 12),
		"cylinder": CylinderMesh(10),
	}
	for name, m := range meshes {
		for i := 0; i+2 < m.VertexCount(); i += 3 {
			a, b, c := m.Position(i), m.Position(i+1), m.Position(i+2)
			face := b.Sub(a).Cross(c.Sub(a))
			n := m.Normal(i).Add(m.Normal(i + 1)).Add(m.Normal(i + 2))
			if face.Dot(n) <= 0 {
				t.Errorf("%s: triangle %d winds clockwise", name, i/3)
				break
			}
		}
	}
}

func TestSphereIsUnit(t *testing.T) {
	m := SphereMesh(6, 8)
	for i := 0; i < m.VertexCount(); i++ {
		if l := m.Position(i).Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d at radius %f", i, l)
		}
	}
}

func TestCylinderSpansUnitHeight(t *testing.T) {
	m := CylinderMesh(6)
	minY, maxY := float32(1), float32(0)
	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)
		minY = min(minY, p.Y())
		maxY = max(maxY, p.Y())
		if r := (mgl32.Vec2{p.X(), p.Z()}).Len(); r > 1.001 {
			t.Fatalf("vertex %d outside unit radius: %f", i, r)
		}
	}
	if minY != 0 || maxY != 1 {
		t.Errorf("height range [%f, %f], want [0, 1]", minY, maxY)
	}
}
