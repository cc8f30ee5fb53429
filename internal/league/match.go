package league

import "fmt"

// Fixture identifies a match by its ordered (home, away) pair. A vs B and
// B vs A are different fixtures.
type Fixture struct {
	Home string
	Away string
}

// Reverse returns the fixture with venues swapped.
func (f Fixture) Reverse() Fixture {
	return Fixture{Home: f.Away, Away: f.Home}
}

// Pair returns the two team names in sorted order, ignoring venue.
func (f Fixture) Pair() (string, string) {
	if f.Home > f.Away {
		return f.Away, f.Home
	}
	return f.Home, f.Away
}

func (f Fixture) String() string {
	return fmt.Sprintf("%s x %s", f.Home, f.Away)
}

// Match is a single fixture between two teams. Recording its result updates
// both teams.
type Match struct {
	home      *Team
	away      *Team
	homeGoals int
	awayGoals int
	played    bool
}

// NewMatch creates an unplayed match. Both teams are required and must differ.
func NewMatch(home, away *Team) (*Match, error) {
	if home == nil || away == nil {
		return nil, fmt.Errorf("%w: match requires both teams", ErrValidation)
	}
	if home.name == away.name {
		return nil, fmt.Errorf("%w: %s cannot play itself", ErrValidation, home.name)
	}
	return &Match{home: home, away: away}, nil
}

func (m *Match) Home() *Team  { return m.home }
func (m *Match) Away() *Team  { return m.away }
func (m *Match) Played() bool { return m.played }

// Score returns the recorded goals. ok is false until a result is recorded.
func (m *Match) Score() (homeGoals, awayGoals int, ok bool) {
	return m.homeGoals, m.awayGoals, m.played
}

// Fixture returns the match's ordered identity.
func (m *Match) Fixture() Fixture {
	return Fixture{Home: m.home.name, Away: m.away.name}
}

// SameFixture reports whether both matches have the same home and away teams.
func (m *Match) SameFixture(other *Match) bool {
	if other == nil {
		return false
	}
	return m.Fixture() == other.Fixture()
}

// Involves reports whether the team plays in this match.
func (m *Match) Involves(name string) bool {
	return m.home.name == name || m.away.name == name
}

// RecordResult stores the score and credits both teams. A match can only be
// recorded once; a rejected call leaves both teams unchanged.
func (m *Match) RecordResult(homeGoals, awayGoals int) error {
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("%w: goals cannot be negative (%d x %d)", ErrValidation, homeGoals, awayGoals)
	}
	if m.played {
		return fmt.Errorf("%w: result already recorded for %s", ErrState, m.Fixture())
	}

	m.homeGoals = homeGoals
	m.awayGoals = awayGoals
	m.played = true

	switch {
	case homeGoals > awayGoals:
		m.home.recordWin(homeGoals, awayGoals)
		m.away.recordLoss(awayGoals, homeGoals)
	case homeGoals < awayGoals:
		m.home.recordLoss(homeGoals, awayGoals)
		m.away.recordWin(awayGoals, homeGoals)
	default:
		m.home.recordDraw(homeGoals, awayGoals)
		m.away.recordDraw(awayGoals, homeGoals)
	}
	return nil
}

func (m *Match) String() string {
	if !m.played {
		return fmt.Sprintf("%s x %s", m.home.name, m.away.name)
	}
	return fmt.Sprintf("%s %d x %d %s", m.home.name, m.homeGoals, m.awayGoals, m.away.name)
}
