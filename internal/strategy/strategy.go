package strategy

import (
	"fmt"

	"github.com/derekprior/league/internal/config"
	"github.com/derekprior/league/internal/league"
	"github.com/derekprior/league/internal/schedule"
)

// Strategy draws the fixture list for a season.
type Strategy interface {
	Name() string
	Legs() int
	Generate(roster *league.Roster) (*schedule.Schedule, error)
}

// Get returns a Strategy by name, configured from the draw settings.
func Get(name string, draw config.Draw) (Strategy, error) {
	switch name {
	case "round_robin":
		return &RoundRobin{Draw: draw}, nil
	case "turn_and_return", "":
		return &TurnAndReturn{Draw: draw}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
}

// RoundRobin plays every pair once. Venues alternate by round.
type RoundRobin struct {
	Draw config.Draw
}

func (s *RoundRobin) Name() string { return "round_robin" }
func (s *RoundRobin) Legs() int    { return 1 }

func (s *RoundRobin) Generate(roster *league.Roster) (*schedule.Schedule, error) {
	return schedule.Generate(roster, options(s.Draw, s.Legs()))
}

// TurnAndReturn plays every pair twice, once at each team's home. The
// second leg mirrors the first.
type TurnAndReturn struct {
	Draw config.Draw
}

func (s *TurnAndReturn) Name() string { return "turn_and_return" }
func (s *TurnAndReturn) Legs() int    { return 2 }

func (s *TurnAndReturn) Generate(roster *league.Roster) (*schedule.Schedule, error) {
	return schedule.Generate(roster, options(s.Draw, s.Legs()))
}

func options(draw config.Draw, legs int) schedule.Options {
	order := schedule.Mirrored
	if draw.ReturnOrder != "" {
		order = schedule.ReturnOrder(draw.ReturnOrder)
	}
	return schedule.Options{
		Legs:        legs,
		Shuffle:     draw.Shuffle,
		Seed:        draw.Seed,
		ReturnOrder: order,
	}
}
