package season

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/derekprior/league/internal/config"
	"github.com/derekprior/league/internal/league"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Name:     "Test League",
		Teams:    []string{"T1", "T2", "T3", "T4"},
		Strategy: "turn_and_return",
		Zones:    config.Zones{Continental: 1, Relegation: 1},
		Calendar: config.Calendar{
			StartDate: config.Date{Time: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
			BlackoutDates: []config.BlackoutDate{
				{Date: config.Date{Time: time.Date(2026, 4, 19, 0, 0, 0, 0, time.UTC)}, Reason: "Cup"},
			},
		},
	}
}

func newTestSeason(t *testing.T) *Season {
	t.Helper()
	s, err := New(testConfig(), quietLogger())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	s := newTestSeason(t)

	if s.Schedule().Len() != 6 {
		t.Errorf("rounds = %d, want 6", s.Schedule().Len())
	}
	if s.Schedule().TotalMatches() != 12 {
		t.Errorf("matches = %d, want 12", s.Schedule().TotalMatches())
	}
	if s.Name() != "Test League" {
		t.Errorf("Name() = %q", s.Name())
	}

	t.Run("round dates skip blackouts", func(t *testing.T) {
		d, ok := s.Date(2)
		if !ok {
			t.Fatal("round 2 has no date")
		}
		if want := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC); !d.Equal(want) {
			t.Errorf("round 2 date = %s, want %s", d.Format("2006-01-02"), want.Format("2006-01-02"))
		}
		if _, ok := s.Date(7); ok {
			t.Error("round 7 should have no date")
		}
		if len(s.Blackouts()) != 1 {
			t.Errorf("blackouts = %d, want 1", len(s.Blackouts()))
		}
	})

	t.Run("rejects odd roster", func(t *testing.T) {
		cfg := testConfig()
		cfg.Teams = []string{"T1", "T2", "T3"}
		if _, err := New(cfg, quietLogger()); !errors.Is(err, league.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		cfg := testConfig()
		cfg.Strategy = "knockout"
		if _, err := New(cfg, quietLogger()); err == nil {
			t.Error("expected error for unknown strategy")
		}
	})
}

func TestNextRound(t *testing.T) {
	s := newTestSeason(t)
	if s.CurrentRound() != 0 {
		t.Fatalf("CurrentRound() = %d, want 0", s.CurrentRound())
	}

	for want := 1; want <= 6; want++ {
		r, err := s.NextRound()
		if err != nil {
			t.Fatalf("NextRound() #%d error: %v", want, err)
		}
		if r.Number() != want || s.CurrentRound() != want {
			t.Errorf("round = %d, current = %d, want %d", r.Number(), s.CurrentRound(), want)
		}
	}

	if _, err := s.NextRound(); !errors.Is(err, league.ErrState) {
		t.Errorf("NextRound() past the end err = %v, want ErrState", err)
	}
	if s.CurrentRound() != 6 {
		t.Errorf("CurrentRound() = %d after failed draw, want 6", s.CurrentRound())
	}
}

func resultsFor(t *testing.T, s *Season) []Result {
	t.Helper()
	// Home side wins round 1, everything else is drawn 1-1.
	var results []Result
	for _, r := range s.Schedule().Rounds() {
		for _, m := range r.Matches() {
			hg, ag := 1, 1
			if r.Number() == 1 {
				hg, ag = 2, 0
			}
			results = append(results, Result{Round: r.Number(), Fixture: m.Fixture(), HomeGoals: hg, AwayGoals: ag})
		}
	}
	return results
}

func TestApplyResults(t *testing.T) {
	s := newTestSeason(t)
	results := resultsFor(t, s)

	n, err := s.ApplyResults(results)
	if err != nil {
		t.Fatalf("ApplyResults() error: %v", err)
	}
	if n != 12 || s.Played() != 12 {
		t.Errorf("applied %d, played %d, want 12", n, s.Played())
	}

	table := s.Standings()
	if table.Len() != 4 {
		t.Fatalf("table has %d rows, want 4", table.Len())
	}
	for _, row := range table.Rows() {
		if row.GamesPlayed() != 6 {
			t.Errorf("%s played %d, want 6", row.Team, row.GamesPlayed())
		}
		if row.Points != 3*row.Wins+row.Draws {
			t.Errorf("%s points = %d, want %d", row.Team, row.Points, 3*row.Wins+row.Draws)
		}
	}

	// Round 1 home winners (T1 and T2) lead on 8 points; T2 comes second
	// on name since they are level on every criterion.
	top := table.Top(2)
	got := []string{top[0].Team, top[1].Team}
	if diff := cmp.Diff([]string{"T1", "T2"}, got); diff != "" {
		t.Errorf("leaders mismatch (-want +got):\n%s", diff)
	}
	if top[0].Points != 8 {
		t.Errorf("leader points = %d, want 8", top[0].Points)
	}
}

func TestRecordResultErrors(t *testing.T) {
	s := newTestSeason(t)
	r1, _ := s.Schedule().Round(1)
	f := r1.Matches()[0].Fixture()

	t.Run("fixture not in round", func(t *testing.T) {
		err := s.RecordResult(Result{Round: 2, Fixture: f, HomeGoals: 1})
		if !errors.Is(err, league.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("round out of range", func(t *testing.T) {
		err := s.RecordResult(Result{Round: 9, Fixture: f})
		if !errors.Is(err, league.ErrValidation) {
			t.Errorf("err = %v, want ErrValidation", err)
		}
	})

	t.Run("recorded twice", func(t *testing.T) {
		if err := s.RecordResult(Result{Round: 1, Fixture: f, HomeGoals: 1}); err != nil {
			t.Fatalf("RecordResult() error: %v", err)
		}
		before := s.Standings().Rows()
		err := s.RecordResult(Result{Round: 1, Fixture: f, AwayGoals: 5})
		if !errors.Is(err, league.ErrState) {
			t.Fatalf("err = %v, want ErrState", err)
		}
		if diff := cmp.Diff(before, s.Standings().Rows()); diff != "" {
			t.Errorf("standings changed after rejected result:\n%s", diff)
		}
	})

	t.Run("batch stops at first failure", func(t *testing.T) {
		fresh := newTestSeason(t)
		results := resultsFor(t, fresh)
		results[3].HomeGoals = -1
		n, err := fresh.ApplyResults(results)
		if !errors.Is(err, league.ErrValidation) {
			t.Fatalf("err = %v, want ErrValidation", err)
		}
		if n != 3 || fresh.Played() != 3 {
			t.Errorf("applied %d, played %d, want 3", n, fresh.Played())
		}
	})
}

func TestLoad(t *testing.T) {
	drawn := newTestSeason(t)
	var rounds [][]league.Fixture
	for _, r := range drawn.Schedule().Rounds() {
		var fs []league.Fixture
		for _, m := range r.Matches() {
			fs = append(fs, m.Fixture())
		}
		rounds = append(rounds, fs)
	}

	loaded, err := Load(testConfig(), rounds, quietLogger())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.Schedule().TotalMatches() != 12 {
		t.Errorf("matches = %d, want 12", loaded.Schedule().TotalMatches())
	}

	if _, err := Load(testConfig(), rounds[:3], quietLogger()); !errors.Is(err, league.ErrValidation) {
		t.Errorf("Load() with half the rounds err = %v, want ErrValidation", err)
	}
}

func TestRoundCount(t *testing.T) {
	cases := []struct {
		strategy string
		want     int
	}{
		{"round_robin", 3},
		{"turn_and_return", 6},
	}
	for _, tc := range cases {
		t.Run(tc.strategy, func(t *testing.T) {
			cfg := testConfig()
			cfg.Strategy = tc.strategy
			got, err := RoundCount(cfg)
			if err != nil || got != tc.want {
				t.Errorf("RoundCount() = %d, %v; want %d", got, err, tc.want)
			}
		})
	}

	cfg := testConfig()
	cfg.Strategy = "knockout"
	if _, err := RoundCount(cfg); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
