package animal

import (
	"ropepen/internal/entity"
	"ropepen/internal/physics"
	"ropepen/internal/rng"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// RetargetInterval is the time between two random-walk steps, in seconds.
	RetargetInterval = 1.0
	// WanderRange scales the per-step offset, which is uniform in [-1,1] per axis.
	WanderRange = 1.0
	// FollowRate is the per-frame easing of position toward target.
	FollowRate   = 0.03
	DefaultSpeed = 5.0

	jitterSteps = 1000
)

// Animal wanders by drifting its target a little every RetargetInterval.
// The target drifts from its previous value, not from the animal's position,
// so over long runs it is a free random walk.
type Animal struct {
	Position     mgl32.Vec3
	Target       mgl32.Vec3
	Speed        float32
	LastRetarget float64

	species Species
	src     rng.Source
}

// New creates an animal at pos with a species drawn from src. The same
// source drives its later random walk.
func New(pos mgl32.Vec3, speed float32, src rng.Source) *Animal {
	return &Animal{
		Position: pos,
		Target:   pos,
		Speed:    speed,
		species:  RandomSpecies(src),
		src:      src,
	}
}

// Species is fixed at construction.
func (a *Animal) Species() Species {
	return a.species
}

// Update retargets when the interval has elapsed, then eases toward the target.
func (a *Animal) Update(ctx *entity.Context) {
	if ctx.Now-a.LastRetarget >= RetargetInterval {
		a.retarget()
		a.LastRetarget = ctx.Now
	}
	a.Position = physics.LerpVec3(a.Position, a.Target, FollowRate)
}

func (a *Animal) retarget() {
	dx := float32(rng.Range(a.src, -jitterSteps, jitterSteps)) / jitterSteps * WanderRange
	dz := float32(rng.Range(a.src, -jitterSteps, jitterSteps)) / jitterSteps * WanderRange
	a.Target[0] += dx
	a.Target[2] += dz
}

func (a *Animal) Pose() entity.Pose {
	return entity.Pose{
		Position:    a.Position,
		Orientation: mgl32.QuatIdent(),
		Color:       a.species.Color(),
	}
}
