// Package sim runs the frame loop of the arena: collisions, tether, player,
// rope, animals and camera, always in that order.
package sim

import (
	"fmt"

	"ropepen/internal/animal"
	"ropepen/internal/camera"
	"ropepen/internal/collision"
	"ropepen/internal/config"
	"ropepen/internal/entity"
	"ropepen/internal/physics"
	"ropepen/internal/player"
	"ropepen/internal/profiling"
	"ropepen/internal/rng"

	"github.com/go-gl/mathgl/mgl32"
)

// SpawnHeight is the y of every animal at startup.
const SpawnHeight = 1.0

// Input is everything the front end samples once per frame.
type Input struct {
	Now        float64 // seconds on the front end's clock
	Directions entity.Directions
	Pointer    *physics.Ray // nil when the pointer is unavailable
	Scroll     float32      // wheel movement since the previous frame
}

// World owns every simulated entity and the camera following the player.
type World struct {
	Player  *player.Player
	Animals []*animal.Animal
	Camera  *camera.Camera

	entities   []entity.Simulatable
	frame      uint64
	lastReport collision.Report
	ctx        entity.Context
}

// New validates cfg and builds the player and the animal herd. Animals are
// scattered uniformly over the arena using src.
func New(cfg config.Sim, src rng.Source) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pc := player.DefaultConfig()
	pc.MoveSpeed = cfg.MoveSpeed
	pc.RopePoints = cfg.RopePoints
	pc.RopeThickness = cfg.RopeThickness
	pc.RopeConstraint = cfg.RopeConstraint
	p, err := player.New(pc)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	animals := make([]*animal.Animal, 0, cfg.Animals)
	for i := 0; i < cfg.Animals; i++ {
		pos := mgl32.Vec3{
			rng.Float(src, -cfg.ArenaHalfSize, cfg.ArenaHalfSize),
			SpawnHeight,
			rng.Float(src, -cfg.ArenaHalfSize, cfg.ArenaHalfSize),
		}
		animals = append(animals, animal.New(pos, animal.DefaultSpeed, src))
	}

	entities := make([]entity.Simulatable, 0, len(animals)+1)
	entities = append(entities, p)
	for _, a := range animals {
		entities = append(entities, a)
	}

	return &World{
		Player:   p,
		Animals:  animals,
		Camera:   camera.New(),
		entities: entities,
	}, nil
}

// Entities lists everything advanced by Step in update order, player first.
// The player's update covers its tether and rope.
func (w *World) Entities() []entity.Simulatable {
	return w.entities
}

// Step advances the world by one frame. Collisions are resolved against the
// positions left by the previous frame before anything moves.
func (w *World) Step(in Input) collision.Report {
	defer profiling.Track("sim.Step")()

	w.lastReport = collision.Resolve(w.Player, w.Animals)

	w.frame++
	w.ctx = entity.Context{
		Frame:      w.frame,
		Now:        in.Now,
		Directions: in.Directions,
		Pointer:    in.Pointer,
	}

	for _, e := range w.entities {
		e.Update(&w.ctx)
	}

	w.Camera.Follow(w.Player.COM, w.Player.Position)
	if in.Scroll != 0 {
		w.Camera.Zoom(in.Scroll)
	}
	return w.lastReport
}

// Frame is the number of completed steps.
func (w *World) Frame() uint64 {
	return w.frame
}

// LastReport is the collision report of the most recent step.
func (w *World) LastReport() collision.Report {
	return w.lastReport
}

// PointerRay converts a pointer position in a width x height viewport into a
// world ray using the camera as it stood after the previous frame.
func (w *World) PointerRay(x, y float64, width, height int) (*physics.Ray, error) {
	ray, err := w.Camera.ScreenRay(x, y, width, height)
	if err != nil {
		return nil, err
	}
	return &ray, nil
}
