package schedule

import (
	"fmt"

	"github.com/derekprior/league/internal/league"
)

// Assemble rebuilds a schedule from an existing fixture list, such as one
// read back from a workbook. rounds[i] holds the fixtures of round i+1. The
// result must satisfy the same invariants as a generated schedule: every
// team once per round, no repeated ordered fixture, and every pair meeting
// exactly legs times (once at each venue for two legs).
func Assemble(roster *league.Roster, rounds [][]league.Fixture, legs int) (*Schedule, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, fmt.Errorf("%w: roster is empty", league.ErrValidation)
	}
	n := roster.Len()
	if n%2 != 0 {
		return nil, fmt.Errorf("%w: round robin needs an even number of teams, got %d", league.ErrValidation, n)
	}
	if legs != 1 && legs != 2 {
		return nil, fmt.Errorf("%w: legs must be 1 or 2, got %d", league.ErrValidation, legs)
	}
	if want := legs * (n - 1); len(rounds) != want {
		return nil, fmt.Errorf("%w: expected %d rounds, got %d", league.ErrValidation, want, len(rounds))
	}

	g := newGenerator()
	s := &Schedule{legs: legs, teams: n}
	for i, fixtures := range rounds {
		round, err := league.NewRound(i + 1)
		if err != nil {
			return nil, err
		}
		if len(fixtures) != n/2 {
			return nil, fmt.Errorf("%w: round %d has %d matches, want %d", league.ErrValidation, i+1, len(fixtures), n/2)
		}
		for _, f := range fixtures {
			home, ok := roster.Team(f.Home)
			if !ok {
				return nil, fmt.Errorf("%w: round %d: unknown team %q", league.ErrValidation, i+1, f.Home)
			}
			away, ok := roster.Team(f.Away)
			if !ok {
				return nil, fmt.Errorf("%w: round %d: unknown team %q", league.ErrValidation, i+1, f.Away)
			}
			if err := g.emit(round, home, away); err != nil {
				return nil, err
			}
		}
		s.rounds = append(s.rounds, round)
	}

	if err := checkPairs(roster.Names(), g.emitted, legs); err != nil {
		return nil, err
	}
	return s, nil
}

// checkPairs verifies every pair of teams meets legs times across the
// emitted fixtures.
func checkPairs(names []string, emitted map[league.Fixture]bool, legs int) error {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			f := league.Fixture{Home: names[i], Away: names[j]}
			meetings := 0
			if emitted[f] {
				meetings++
			}
			if emitted[f.Reverse()] {
				meetings++
			}
			if meetings != legs {
				return fmt.Errorf("%w: %s and %s meet %d times, want %d",
					league.ErrValidation, names[i], names[j], meetings, legs)
			}
		}
	}
	return nil
}
