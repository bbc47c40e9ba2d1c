package player

import (
	"image/color"

	"ropepen/internal/entity"
	"ropepen/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// TetherHeight is the height of the plane the pointer is projected onto.
	TetherHeight = 1.0
	TetherRate   = 0.3
)

var TetherColor = color.RGBA{R: 0, G: 121, B: 241, A: 255}

// Tether is the rope anchor that follows the pointer across the ground.
type Tether struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3 // last successful pointer projection
}

func NewTether() *Tether {
	return &Tether{
		Position: mgl32.Vec3{0, 1, 10},
		Target:   mgl32.Vec3{0, 0, 10},
	}
}

// Update projects ray onto the tether plane and eases toward the hit.
// Rays that never reach the plane leave the tether where it is and return false.
func (t *Tether) Update(ray physics.Ray) bool {
	hit, _, ok := physics.IntersectPlaneY(ray, TetherHeight)
	if !ok {
		return false
	}
	t.Target = hit
	t.Position = physics.LerpVec3(t.Position, hit, TetherRate)
	return true
}

func (t *Tether) Pose() entity.Pose {
	return entity.Pose{
		Position:    t.Position,
		Orientation: mgl32.QuatIdent(),
		Color:       TetherColor,
	}
}
