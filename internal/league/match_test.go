package league

import (
	"errors"
	"testing"
)

func newPair(t *testing.T) (*Team, *Team) {
	t.Helper()
	home, err := NewTeam("Flamengo")
	if err != nil {
		t.Fatalf("NewTeam() error: %v", err)
	}
	away, err := NewTeam("Palmeiras")
	if err != nil {
		t.Fatalf("NewTeam() error: %v", err)
	}
	return home, away
}

func newMatch(t *testing.T) *Match {
	t.Helper()
	home, away := newPair(t)
	m, err := NewMatch(home, away)
	if err != nil {
		t.Fatalf("NewMatch() error: %v", err)
	}
	return m
}

func TestNewMatch(t *testing.T) {
	home, away := newPair(t)

	t.Run("rejects missing team", func(t *testing.T) {
		if _, err := NewMatch(home, nil); !errors.Is(err, ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
		if _, err := NewMatch(nil, away); !errors.Is(err, ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects self pairing", func(t *testing.T) {
		if _, err := NewMatch(home, home); !errors.Is(err, ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("starts unplayed", func(t *testing.T) {
		m, err := NewMatch(home, away)
		if err != nil {
			t.Fatalf("NewMatch() error: %v", err)
		}
		if m.Played() {
			t.Error("new match should not be played")
		}
		if _, _, ok := m.Score(); ok {
			t.Error("new match should have no score")
		}
		if m.String() != "Flamengo x Palmeiras" {
			t.Errorf("String() = %q", m.String())
		}
	})
}

func TestRecordResultHomeWin(t *testing.T) {
	m := newMatch(t)
	if err := m.RecordResult(3, 1); err != nil {
		t.Fatalf("RecordResult() error: %v", err)
	}

	home := m.Home().Stats()
	if home.Points != 3 || home.Wins != 1 || home.GoalsFor != 3 || home.GoalsAgainst != 1 {
		t.Errorf("home stats = %+v, want 3 pts, 1 win, 3 GF, 1 GA", home)
	}
	away := m.Away().Stats()
	if away.Points != 0 || away.Losses != 1 || away.GoalsFor != 1 || away.GoalsAgainst != 3 {
		t.Errorf("away stats = %+v, want 0 pts, 1 loss, 1 GF, 3 GA", away)
	}

	hg, ag, ok := m.Score()
	if !ok || hg != 3 || ag != 1 {
		t.Errorf("Score() = %d, %d, %v, want 3, 1, true", hg, ag, ok)
	}
	if m.String() != "Flamengo 3 x 1 Palmeiras" {
		t.Errorf("String() = %q", m.String())
	}
}

func TestRecordResultAwayWin(t *testing.T) {
	m := newMatch(t)
	if err := m.RecordResult(0, 2); err != nil {
		t.Fatalf("RecordResult() error: %v", err)
	}
	if got := m.Away().Stats(); got.Points != 3 || got.Wins != 1 || got.GoalDifference() != 2 {
		t.Errorf("away stats = %+v, want 3 pts, 1 win, +2 GD", got)
	}
	if got := m.Home().Stats(); got.Points != 0 || got.Losses != 1 || got.GoalDifference() != -2 {
		t.Errorf("home stats = %+v, want 0 pts, 1 loss, -2 GD", got)
	}
}

func TestRecordResultDraw(t *testing.T) {
	m := newMatch(t)
	if err := m.RecordResult(2, 2); err != nil {
		t.Fatalf("RecordResult() error: %v", err)
	}
	for _, team := range []*Team{m.Home(), m.Away()} {
		s := team.Stats()
		if s.Points != 1 || s.Draws != 1 {
			t.Errorf("%s: points = %d, draws = %d, want 1, 1", team.Name(), s.Points, s.Draws)
		}
		if s.GoalsFor != 2 || s.GoalsAgainst != 2 || s.GoalDifference() != 0 {
			t.Errorf("%s: goals = %d/%d, want 2/2", team.Name(), s.GoalsFor, s.GoalsAgainst)
		}
		if s.GamesPlayed() != 1 {
			t.Errorf("%s: games played = %d, want 1", team.Name(), s.GamesPlayed())
		}
	}
}

func TestRecordResultRejections(t *testing.T) {
	t.Run("negative goals", func(t *testing.T) {
		m := newMatch(t)
		err := m.RecordResult(-1, 0)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
		if m.Played() {
			t.Error("match should stay unplayed")
		}
		if m.Home().Stats() != (Stats{}) || m.Away().Stats() != (Stats{}) {
			t.Error("stats should be untouched")
		}
	})

	t.Run("already recorded", func(t *testing.T) {
		m := newMatch(t)
		if err := m.RecordResult(1, 0); err != nil {
			t.Fatalf("RecordResult() error: %v", err)
		}
		homeBefore, awayBefore := m.Home().Stats(), m.Away().Stats()

		err := m.RecordResult(0, 4)
		if !errors.Is(err, ErrState) {
			t.Fatalf("err = %v, want ErrState", err)
		}
		if m.Home().Stats() != homeBefore || m.Away().Stats() != awayBefore {
			t.Error("stats changed after rejected re-registration")
		}
		if hg, ag, _ := m.Score(); hg != 1 || ag != 0 {
			t.Errorf("score = %d x %d, want 1 x 0", hg, ag)
		}
	})
}

func TestPointsInvariant(t *testing.T) {
	a, _ := NewTeam("A")
	b, _ := NewTeam("B")
	scores := [][2]int{{1, 0}, {0, 0}, {2, 3}, {4, 4}, {5, 1}}
	for _, s := range scores {
		m, err := NewMatch(a, b)
		if err != nil {
			t.Fatalf("NewMatch() error: %v", err)
		}
		if err := m.RecordResult(s[0], s[1]); err != nil {
			t.Fatalf("RecordResult() error: %v", err)
		}
	}
	for _, team := range []*Team{a, b} {
		s := team.Stats()
		if s.Points != 3*s.Wins+s.Draws {
			t.Errorf("%s: points = %d, want 3*%d+%d", team.Name(), s.Points, s.Wins, s.Draws)
		}
		if s.GamesPlayed() != len(scores) {
			t.Errorf("%s: games played = %d, want %d", team.Name(), s.GamesPlayed(), len(scores))
		}
	}
}

func TestSameFixture(t *testing.T) {
	home, away := newPair(t)
	m1, _ := NewMatch(home, away)
	m2, _ := NewMatch(home, away)
	rev, _ := NewMatch(away, home)

	if !m1.SameFixture(m2) {
		t.Error("same home and away should be the same fixture")
	}
	if m1.SameFixture(rev) {
		t.Error("swapped venues should be a different fixture")
	}
	if m1.SameFixture(nil) {
		t.Error("nil should never match")
	}
	if m1.Fixture().Reverse() != rev.Fixture() {
		t.Errorf("Reverse() = %v, want %v", m1.Fixture().Reverse(), rev.Fixture())
	}
	a, b := rev.Fixture().Pair()
	if a != "Flamengo" || b != "Palmeiras" {
		t.Errorf("Pair() = %s, %s, want sorted names", a, b)
	}
}
