package scene

import (
	"image/color"

	"ropepen/internal/collision"
	"ropepen/internal/graphics"
	"ropepen/internal/graphics/renderer"
	"ropepen/internal/profiling"
	"ropepen/internal/rope"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Ground is the field the arena is played on.
var (
	GroundColor = color.RGBA{R: 56, G: 186, B: 95, A: 255}
	GroundSize  = float32(50)
	RopeColor   = color.RGBA{R: 102, G: 191, B: 255, A: 255}
)

// PlayerSize is the edge of the player cube.
const PlayerSize = 2.0

var lightDir = mgl32.Vec3{-0.4, -1, -0.3}

// Scene draws the ground, the player, the tether, the rope and the animals.
type Scene struct {
	shader   *graphics.Shader
	cube     *graphics.Mesh
	sphere   *graphics.Mesh
	plane    *graphics.Mesh
	cylinder *graphics.Mesh
	sides    int
}

// NewScene creates the renderable; rope segments get sides facets.
func NewScene(sides int) *Scene {
	if sides < 3 {
		sides = rope.DefaultSides
	}
	return &Scene{sides: sides}
}

func (s *Scene) Init() error {
	shader, err := graphics.LoadShader("lit")
	if err != nil {
		return err
	}
	s.shader = shader
	s.cube = graphics.Upload(graphics.CubeMesh())
	s.sphere = graphics.Upload(graphics.SphereMesh(12, 16))
	s.plane = graphics.Upload(graphics.PlaneMesh())
	s.cylinder = graphics.Upload(graphics.CylinderMesh(s.sides))
	return nil
}

func (s *Scene) Render(ctx renderer.RenderContext) {
	defer profiling.Track("render.Scene")()

	w := ctx.World
	s.shader.Use()
	s.shader.SetMat4("view", ctx.View)
	s.shader.SetMat4("projection", ctx.Proj)
	s.shader.SetVec3("lightDir", lightDir)

	s.draw(s.plane, mgl32.Scale3D(GroundSize, 1, GroundSize), GroundColor)

	p := w.Player
	s.draw(s.cube, ModelMatrix(p.Pose(), mgl32.Vec3{PlayerSize, PlayerSize, PlayerSize}), p.Pose().Color)

	tp := p.Tether.Pose()
	r := float32(collision.TetherRadius)
	s.draw(s.sphere, ModelMatrix(tp, mgl32.Vec3{r, r, r}), tp.Color)

	pts := p.Rope.Points()
	for i := 0; i+1 < len(pts); i++ {
		m, ok := SegmentMatrix(pts[i], pts[i+1], p.Rope.Thickness)
		if !ok {
			continue
		}
		s.draw(s.cylinder, m, RopeColor)
	}

	r = collision.AnimalRadius
	for _, a := range w.Animals {
		pose := a.Pose()
		s.draw(s.sphere, ModelMatrix(pose, mgl32.Vec3{r, r, r}), pose.Color)
	}
	gl.BindVertexArray(0)
}

func (s *Scene) draw(mesh *graphics.Mesh, model mgl32.Mat4, c color.RGBA) {
	s.shader.SetMat4("model", model)
	s.shader.SetVec3("color", ColorVec(c))
	mesh.Draw()
}

func (s *Scene) Dispose() {
	for _, m := range []*graphics.Mesh{s.cube, s.sphere, s.plane, s.cylinder} {
		if m != nil {
			m.Delete()
		}
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

func (s *Scene) SetViewport(width, height int) {}
