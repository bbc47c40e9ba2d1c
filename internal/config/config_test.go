package config

import (
	"errors"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Sim)
	}{
		{"negative animals", func(s *Sim) { s.Animals = -1 }},
		{"empty arena", func(s *Sim) { s.ArenaHalfSize = 0 }},
		{"one rope point", func(s *Sim) { s.RopePoints = 1 }},
		{"negative thickness", func(s *Sim) { s.RopeThickness = -0.1 }},
		{"zero constraint", func(s *Sim) { s.RopeConstraint = 0 }},
		{"negative speed", func(s *Sim) { s.MoveSpeed = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}

	s := Default()
	s.Animals = 0
	if err := s.Validate(); err != nil {
		t.Errorf("empty arena of animals should be allowed: %v", err)
	}
}

func TestFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(DefaultFPSLimit)

	SetFPSLimit(1)
	if got := GetFPSLimit(); got != MinFPSLimit {
		t.Errorf("GetFPSLimit() = %d, want %d", got, MinFPSLimit)
	}
	SetFPSLimit(10000)
	if got := GetFPSLimit(); got != MaxFPSLimit {
		t.Errorf("GetFPSLimit() = %d, want %d", got, MaxFPSLimit)
	}
	SetFPSLimit(75)
	if got := GetFPSLimit(); got != 75 {
		t.Errorf("GetFPSLimit() = %d, want 75", got)
	}
}

func TestToggleProfiling(t *testing.T) {
	before := GetShowProfiling()
	ToggleProfiling()
	if GetShowProfiling() == before {
		t.Errorf("ToggleProfiling did not flip the flag")
	}
	ToggleProfiling()
	if GetShowProfiling() != before {
		t.Errorf("second toggle did not restore the flag")
	}
}
