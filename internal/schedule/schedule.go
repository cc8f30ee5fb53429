package schedule

import (
	"fmt"

	"github.com/derekprior/league/internal/league"
)

// Schedule is the ordered list of rounds for one season.
type Schedule struct {
	rounds []*league.Round
	legs   int
	teams  int
}

// Round returns round n (1-based).
func (s *Schedule) Round(n int) (*league.Round, error) {
	if n < 1 || n > len(s.rounds) {
		return nil, fmt.Errorf("%w: round %d is outside 1..%d", league.ErrValidation, n, len(s.rounds))
	}
	return s.rounds[n-1], nil
}

// Rounds returns all rounds in order. The slice is a copy.
func (s *Schedule) Rounds() []*league.Round {
	rounds := make([]*league.Round, len(s.rounds))
	copy(rounds, s.rounds)
	return rounds
}

// Len returns the number of rounds.
func (s *Schedule) Len() int { return len(s.rounds) }

// Legs returns how many times each pair of teams meets.
func (s *Schedule) Legs() int { return s.legs }

// RoundsPerLeg returns the number of rounds needed for every pair to meet once.
func (s *Schedule) RoundsPerLeg() int { return s.teams - 1 }

// Leg returns the leg (1 or 2) that round n belongs to.
func (s *Schedule) Leg(n int) (int, error) {
	if n < 1 || n > len(s.rounds) {
		return 0, fmt.Errorf("%w: round %d is outside 1..%d", league.ErrValidation, n, len(s.rounds))
	}
	return (n-1)/s.RoundsPerLeg() + 1, nil
}

// Matches returns every match in round order.
func (s *Schedule) Matches() []*league.Match {
	var matches []*league.Match
	for _, r := range s.rounds {
		matches = append(matches, r.Matches()...)
	}
	return matches
}

func (s *Schedule) TotalMatches() int {
	total := 0
	for _, r := range s.rounds {
		total += r.Len()
	}
	return total
}

// HasDuplicates reports whether any ordered fixture appears more than once.
func (s *Schedule) HasDuplicates() bool {
	seen := make(map[league.Fixture]bool)
	for _, m := range s.Matches() {
		f := m.Fixture()
		if seen[f] {
			return true
		}
		seen[f] = true
	}
	return false
}

// Find locates a fixture in the given round.
func (s *Schedule) Find(round int, f league.Fixture) (*league.Match, error) {
	r, err := s.Round(round)
	if err != nil {
		return nil, err
	}
	m, ok := r.Match(f)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not scheduled in round %d", league.ErrValidation, f, round)
	}
	return m, nil
}
