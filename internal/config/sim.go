package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Sim holds the parameters a simulation world is built from.
type Sim struct {
	Animals        int     // number of animals spawned at startup
	ArenaHalfSize  float32 // animals spawn in [-ArenaHalfSize, ArenaHalfSize] on x and z
	RopePoints     int
	RopeThickness  float32
	RopeConstraint float32
	MoveSpeed      float32 // player target offset per frame per held direction
	Seed           int64   // 0 picks a seed from the clock
}

// Default returns the stock arena: ten animals on a 50x50 field.
func Default() Sim {
	return Sim{
		Animals:        10,
		ArenaHalfSize:  25,
		RopePoints:     15,
		RopeThickness:  0.1,
		RopeConstraint: 0.1,
		MoveSpeed:      0.1,
	}
}

// Validate reports the first out-of-range field.
func (s Sim) Validate() error {
	switch {
	case s.Animals < 0:
		return fmt.Errorf("%w: animals %d is negative", ErrInvalidConfig, s.Animals)
	case s.ArenaHalfSize <= 0:
		return fmt.Errorf("%w: arena half size %v must be positive", ErrInvalidConfig, s.ArenaHalfSize)
	case s.RopePoints < 2:
		return fmt.Errorf("%w: rope needs at least 2 points, got %d", ErrInvalidConfig, s.RopePoints)
	case s.RopeThickness < 0:
		return fmt.Errorf("%w: rope thickness %v is negative", ErrInvalidConfig, s.RopeThickness)
	case s.RopeConstraint <= 0:
		return fmt.Errorf("%w: rope constraint %v must be positive", ErrInvalidConfig, s.RopeConstraint)
	case s.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, s.MoveSpeed)
	}
	return nil
}
