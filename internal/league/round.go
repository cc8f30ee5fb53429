package league

import (
	"fmt"
	"strings"
)

// Round is a numbered set of matches in which each team plays at most once.
type Round struct {
	number  int
	matches []*Match
}

// NewRound creates an empty round. Numbers start at 1.
func NewRound(number int) (*Round, error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: round number %d must be at least 1", ErrValidation, number)
	}
	return &Round{number: number}, nil
}

func (r *Round) Number() int { return r.number }

func (r *Round) Len() int { return len(r.matches) }

// Matches returns the round's matches in order. The slice is a copy.
func (r *Round) Matches() []*Match {
	matches := make([]*Match, len(r.matches))
	copy(matches, r.matches)
	return matches
}

// Add appends a match. It fails if either team already plays in this round.
func (r *Round) Add(m *Match) error {
	if m == nil || m.home == nil || m.away == nil {
		return fmt.Errorf("%w: round %d: match with both teams is required", ErrValidation, r.number)
	}
	for _, name := range []string{m.home.name, m.away.name} {
		if r.Contains(name) {
			return fmt.Errorf("%w: round %d: %s already plays in this round", ErrValidation, r.number, name)
		}
	}
	r.matches = append(r.matches, m)
	return nil
}

// Contains reports whether the team plays in this round.
func (r *Round) Contains(name string) bool {
	return r.Appearances(name) > 0
}

// Appearances counts how many times the team appears in this round.
func (r *Round) Appearances(name string) int {
	count := 0
	for _, m := range r.matches {
		if m.home.name == name {
			count++
		}
		if m.away.name == name {
			count++
		}
	}
	return count
}

// HasRepeatedTeam reports whether any team appears in more than one match.
func (r *Round) HasRepeatedTeam() bool {
	seen := make(map[string]bool)
	for _, m := range r.matches {
		if seen[m.home.name] || seen[m.away.name] {
			return true
		}
		seen[m.home.name] = true
		seen[m.away.name] = true
	}
	return false
}

// CoversAll reports whether every named team plays in this round.
func (r *Round) CoversAll(names []string) bool {
	for _, name := range names {
		if !r.Contains(name) {
			return false
		}
	}
	return true
}

// Complete reports whether every match in the round has a result.
func (r *Round) Complete() bool {
	for _, m := range r.matches {
		if !m.played {
			return false
		}
	}
	return true
}

// Match finds the match for the given fixture.
func (r *Round) Match(f Fixture) (*Match, bool) {
	for _, m := range r.matches {
		if m.Fixture() == f {
			return m, true
		}
	}
	return nil, false
}

func (r *Round) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Round %d:\n", r.number)
	for _, m := range r.matches {
		fmt.Fprintf(&sb, "  %s\n", m)
	}
	return sb.String()
}
