// Package collision resolves overlaps between the player, its rope and tether,
// and the animals. Every pass is exhaustive; with a handful of agents that is
// cheaper than maintaining a broad phase.
package collision

import (
	"ropepen/internal/animal"
	"ropepen/internal/physics"
	"ropepen/internal/player"
	"ropepen/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	PlayerRadius      = 1.5
	AnimalRadius      = 0.5
	TetherRadius      = 0.5
	RopeSegmentRadius = 0.5
)

// Report counts the contacts each pass resolved in one call to Resolve.
type Report struct {
	PlayerAnimal int
	RopeAnimal   int
	TetherAnimal int
	AnimalAnimal int
}

// Total is the number of contacts across all passes.
func (r Report) Total() int {
	return r.PlayerAnimal + r.RopeAnimal + r.TetherAnimal + r.AnimalAnimal
}

// Resolve runs all four passes in order against the current positions.
func Resolve(p *player.Player, animals []*animal.Animal) Report {
	defer profiling.Track("collision.Resolve")()

	return Report{
		PlayerAnimal: ResolvePlayerAnimals(p, animals),
		RopeAnimal:   ResolveRopeAnimals(p.Rope.Points(), animals),
		TetherAnimal: ResolveTetherAnimals(p.Tether, animals),
		AnimalAnimal: ResolveAnimalPairs(animals),
	}
}

// ResolvePlayerAnimals pushes the player and each touching animal apart,
// each taking half of the overlap.
func ResolvePlayerAnimals(p *player.Player, animals []*animal.Animal) int {
	hits := 0
	for _, a := range animals {
		normal, overlap, ok := physics.Separation(p.Position, PlayerRadius, a.Position, AnimalRadius)
		if !ok {
			continue
		}
		p.Position, a.Position = split(p.Position, a.Position, normal, overlap)
		hits++
	}
	return hits
}

// ResolveRopeAnimals steers animals away from rope segments they touch by
// moving their target, not their position.
func ResolveRopeAnimals(points []mgl32.Vec3, animals []*animal.Animal) int {
	hits := 0
	for _, a := range animals {
		for i := 0; i < len(points)-1; i++ {
			start, end := points[i], points[i+1]
			if !physics.PointSegmentCollides(a.Position, start, end, RopeSegmentRadius) {
				continue
			}
			closest := physics.ClosestPointOnSegment(a.Position, start, end)
			away := a.Position.Sub(closest)
			dist := away.Len()
			if dist == 0 {
				// Sitting exactly on the rope gives no direction to push in.
				continue
			}
			overlap := RopeSegmentRadius + AnimalRadius - dist
			a.Target = a.Target.Add(away.Mul(overlap / dist))
			hits++
		}
	}
	return hits
}

// ResolveTetherAnimals pushes touching animals out of the tether by the full
// overlap. The tether does not move.
func ResolveTetherAnimals(t *player.Tether, animals []*animal.Animal) int {
	hits := 0
	for _, a := range animals {
		normal, overlap, ok := physics.Separation(t.Position, TetherRadius, a.Position, AnimalRadius)
		if !ok {
			continue
		}
		a.Position = a.Position.Add(normal.Mul(overlap))
		hits++
	}
	return hits
}

// ResolveAnimalPairs separates every overlapping pair of animals equally.
func ResolveAnimalPairs(animals []*animal.Animal) int {
	hits := 0
	for i := 0; i < len(animals); i++ {
		for j := i + 1; j < len(animals); j++ {
			a, b := animals[i], animals[j]
			normal, overlap, ok := physics.Separation(a.Position, AnimalRadius, b.Position, AnimalRadius)
			if !ok {
				continue
			}
			a.Position, b.Position = split(a.Position, b.Position, normal, overlap)
			hits++
		}
	}
	return hits
}

// split moves a against and b along normal by half the overlap each.
func split(a, b, normal mgl32.Vec3, overlap float32) (mgl32.Vec3, mgl32.Vec3) {
	half := normal.Mul(overlap * 0.5)
	return a.Sub(half), b.Add(half)
}
