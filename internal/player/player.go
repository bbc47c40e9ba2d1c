package player

import (
	"fmt"
	"image/color"

	"ropepen/internal/entity"
	"ropepen/internal/profiling"
	"ropepen/internal/rope"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultWeight    = 0.3
	DefaultMoveSpeed = 0.1

	RopePoints     = 15
	RopeThickness  = 0.1
	RopeConstraint = 0.1
)

var (
	StartPosition = mgl32.Vec3{0, 1, 0}
	startCOM      = mgl32.Vec3{0, 0, 5}

	Color = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// Config holds the construction parameters of a Player and its rope.
type Config struct {
	Position       mgl32.Vec3
	MoveSpeed      float32
	Weight         float32
	RopePoints     int
	RopeThickness  float32
	RopeConstraint float32
}

// DefaultConfig returns the stock player setup.
func DefaultConfig() Config {
	return Config{
		Position:       StartPosition,
		MoveSpeed:      DefaultMoveSpeed,
		Weight:         DefaultWeight,
		RopePoints:     RopePoints,
		RopeThickness:  RopeThickness,
		RopeConstraint: RopeConstraint,
	}
}

// Player is the avatar. It owns the tether it is tied to and the rope between them.
type Player struct {
	Position  mgl32.Vec3
	Target    mgl32.Vec3
	MoveSpeed float32
	Weight    float32 // blend of tether position into the center of mass, 0..1

	// COM is the weighted center of mass, recomputed on every Move.
	COM mgl32.Vec3

	Tether *Tether
	Rope   *rope.Rope
}

// New creates a player at cfg.Position with its tether and rope.
// Both rope ends start at the player position.
func New(cfg Config) (*Player, error) {
	if cfg.Weight < 0 || cfg.Weight > 1 {
		return nil, fmt.Errorf("player weight %v outside [0,1]", cfg.Weight)
	}
	r, err := rope.New(cfg.Position, cfg.Position, cfg.RopePoints, cfg.RopeThickness, cfg.RopeConstraint)
	if err != nil {
		return nil, fmt.Errorf("player rope: %w", err)
	}
	return &Player{
		Position:  cfg.Position,
		Target:    cfg.Position,
		MoveSpeed: cfg.MoveSpeed,
		Weight:    cfg.Weight,
		COM:       startCOM,
		Tether:    NewTether(),
		Rope:      r,
	}, nil
}

// Update advances the tether, the player and the rope, in that order.
func (p *Player) Update(ctx *entity.Context) {
	defer profiling.Track("player.Update")()

	if ctx.Pointer != nil {
		p.Tether.Update(*ctx.Pointer)
	}
	p.Move(ctx.Directions)
	p.Rope.Update(p.Position, p.Tether.Position)
}

func (p *Player) Pose() entity.Pose {
	return entity.Pose{
		Position:    p.Position,
		Orientation: mgl32.QuatIdent(),
		Color:       Color,
	}
}
