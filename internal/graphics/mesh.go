package graphics

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// floatsPerVertex is position followed by normal.
const floatsPerVertex = 6

// MeshData is an interleaved position/normal triangle list.
type MeshData struct {
	Vertices []float32
}

// VertexCount returns the number of vertices in the list.
func (m MeshData) VertexCount() int {
	return len(m.Vertices) / floatsPerVertex
}

// Position returns vertex i's position.
func (m MeshData) Position(i int) mgl32.Vec3 {
	o := i * floatsPerVertex
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

// Normal returns vertex i's normal.
func (m MeshData) Normal(i int) mgl32.Vec3 {
	o := i*floatsPerVertex + 3
	return mgl32.Vec3{m.Vertices[o], m.Vertices[o+1], m.Vertices[o+2]}
}

func (m *MeshData) add(p, n mgl32.Vec3) {
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

func (m *MeshData) quad(a, b, c, d, n mgl32.Vec3) {
	m.add(a, n)
	m.add(b, n)
	m.add(c, n)
	m.add(a, n)
	m.add(c, n)
	m.add(d, n)
}

// CubeMesh is a unit cube centred on the origin, counter-clockwise faces.
func CubeMesh() MeshData {
	var m MeshData
	const h = 0.5
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	for _, f := range faces {
		c := f.n.Mul(h)
		u := f.u.Mul(h)
		v := f.v.Mul(h)
		m.quad(c.Sub(u).Sub(v), c.Add(u).Sub(v), c.Add(u).Add(v), c.Sub(u).Add(v), f.n)
	}
	return m
}

// PlaneMesh is a unit square in the XZ plane facing +Y.
func PlaneMesh() MeshData {
	var m MeshData
	n := mgl32.Vec3{0, 1, 0}
	m.quad(
		mgl32.Vec3{-0.5, 0, 0.5},
		mgl32.Vec3{0.5, 0, 0.5},
		mgl32.Vec3{0.5, 0, -0.5},
		mgl32.Vec3{-0.5, 0, -0.5},
		n,
	)
	return m
}

// SphereMesh is a unit-radius UV sphere.
func SphereMesh(rings, segments int) MeshData {
	var m MeshData
	point := func(ring, seg int) mgl32.Vec3 {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(seg) / float64(segments)
		return mgl32.Vec3{
			float32(math.Sin(theta) * math.Cos(phi)),
			float32(math.Cos(theta)),
			float32(-math.Sin(theta) * math.Sin(phi)),
		}
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := point(r, s)
			b := point(r+1, s)
			c := point(r+1, s+1)
			d := point(r, s+1)
			if r != 0 {
				m.add(a, a)
				m.add(b, b)
				m.add(d, d)
			}
			if r != rings-1 {
				m.add(b, b)
				m.add(c, c)
				m.add(d, d)
			}
		}
	}
	return m
}

// CylinderMesh is a unit-radius cylinder from y=0 to y=1 with sides facets
// and capped ends.
func CylinderMesh(sides int) MeshData {
	var m MeshData
	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}
	rim := func(i int) mgl32.Vec3 {
		a := 2 * math.Pi * float64(i) / float64(sides)
		return mgl32.Vec3{float32(math.Cos(a)), 0, float32(-math.Sin(a))}
	}
	for i := 0; i < sides; i++ {
		p0 := rim(i)
		p1 := rim(i + 1)
		t0 := p0.Add(up)
		t1 := p1.Add(up)

		m.add(p0, p0)
		m.add(p1, p1)
		m.add(t1, p1)
		m.add(p0, p0)
		m.add(t1, p1)
		m.add(t0, p0)

		m.add(up, up)
		m.add(t0, up)
		m.add(t1, up)

		m.add(mgl32.Vec3{}, down)
		m.add(p1, down)
		m.add(p0, down)
	}
	return m
}

// Mesh is MeshData uploaded to the GPU.
type Mesh struct {
	vao, vbo uint32
	count    int32
}

// Upload copies data into a new VAO/VBO pair.
func Upload(data MeshData) *Mesh {
	m := &Mesh{count: int32(data.VertexCount())}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, floatsPerVertex*4, gl.PtrOffset(3*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return m
}

// Draw issues the draw call; the caller binds the shader.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
