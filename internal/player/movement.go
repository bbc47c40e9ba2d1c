package player

import (
	"ropepen/internal/entity"
	"ropepen/internal/physics"
)

// MoveRate is the per-frame smoothing toward the input target.
const MoveRate = 0.4

// Move accumulates held directions into Target, eases Position toward it and
// refreshes the center of mass. Axes are not normalised, so diagonal input
// covers more ground per frame than a single axis.
func (p *Player) Move(dirs entity.Directions) {
	if dirs.Forward {
		p.Target[2] -= p.MoveSpeed
	}
	if dirs.Backward {
		p.Target[2] += p.MoveSpeed
	}
	if dirs.Left {
		p.Target[0] -= p.MoveSpeed
	}
	if dirs.Right {
		p.Target[0] += p.MoveSpeed
	}

	p.Position = physics.LerpVec3(p.Position, p.Target, MoveRate)
	p.COM = p.Position.Mul(1 - p.Weight).Add(p.Tether.Position.Mul(p.Weight))
}
