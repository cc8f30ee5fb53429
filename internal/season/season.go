// Package season ties a roster, its fixture list and the standings together
// for one championship. A Season is not safe for concurrent use; callers
// record results from a single goroutine per season.
package season

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/derekprior/league/internal/config"
	"github.com/derekprior/league/internal/league"
	"github.com/derekprior/league/internal/schedule"
	"github.com/derekprior/league/internal/standings"
	"github.com/derekprior/league/internal/strategy"
)

// Result is a score to record against a scheduled fixture.
type Result struct {
	Round int
	league.Fixture
	HomeGoals int
	AwayGoals int
}

type Season struct {
	cfg      *config.Config
	roster   *league.Roster
	schedule *schedule.Schedule
	dates    []time.Time
	current  int
	logger   *slog.Logger
}

// New draws a fresh fixture list for the configured teams.
func New(cfg *config.Config, logger *slog.Logger) (*Season, error) {
	if logger == nil {
		logger = slog.Default()
	}

	roster, err := league.NewRoster(cfg.Teams)
	if err != nil {
		return nil, err
	}

	strat, err := strategy.Get(cfg.Strategy, cfg.Draw)
	if err != nil {
		return nil, err
	}

	sched, err := strat.Generate(roster)
	if err != nil {
		return nil, fmt.Errorf("drawing fixtures: %w", err)
	}

	logger.Info("fixtures drawn",
		"strategy", strat.Name(),
		"teams", roster.Len(),
		"rounds", sched.Len(),
		"matches", sched.TotalMatches(),
		"shuffle", cfg.Draw.Shuffle,
		"seed", cfg.Draw.Seed,
	)
	return newSeason(cfg, roster, sched, logger), nil
}

// Load rebuilds a season from an existing fixture list. rounds[i] holds the
// fixtures of round i+1.
func Load(cfg *config.Config, rounds [][]league.Fixture, logger *slog.Logger) (*Season, error) {
	if logger == nil {
		logger = slog.Default()
	}

	roster, err := league.NewRoster(cfg.Teams)
	if err != nil {
		return nil, err
	}

	strat, err := strategy.Get(cfg.Strategy, cfg.Draw)
	if err != nil {
		return nil, err
	}

	sched, err := schedule.Assemble(roster, rounds, strat.Legs())
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}

	logger.Debug("fixtures loaded", "rounds", sched.Len(), "matches", sched.TotalMatches())
	return newSeason(cfg, roster, sched, logger), nil
}

// RoundCount returns how many rounds the configured strategy draws.
func RoundCount(cfg *config.Config) (int, error) {
	strat, err := strategy.Get(cfg.Strategy, cfg.Draw)
	if err != nil {
		return 0, err
	}
	return strat.Legs() * (len(cfg.Teams) - 1), nil
}

func newSeason(cfg *config.Config, roster *league.Roster, sched *schedule.Schedule, logger *slog.Logger) *Season {
	return &Season{
		cfg:      cfg,
		roster:   roster,
		schedule: sched,
		dates:    schedule.RoundDates(cfg.Calendar, sched.Len()),
		logger:   logger,
	}
}

func (s *Season) Name() string                 { return s.cfg.Name }
func (s *Season) Roster() *league.Roster       { return s.roster }
func (s *Season) Schedule() *schedule.Schedule { return s.schedule }

// Date returns the calendar date of round n, if the season has a calendar.
func (s *Season) Date(n int) (time.Time, bool) {
	if n < 1 || n > len(s.dates) {
		return time.Time{}, false
	}
	return s.dates[n-1], true
}

// Blackouts returns the calendar blackouts that fall within the season.
func (s *Season) Blackouts() []schedule.Blackout {
	if len(s.dates) == 0 {
		return nil
	}
	return schedule.Blackouts(s.cfg.Calendar, s.dates[len(s.dates)-1])
}

// CurrentRound returns the last round handed out by NextRound, or 0.
func (s *Season) CurrentRound() int { return s.current }

// NextRound advances to the next round of the fixture list. Asking past the
// last round is an error; the season never invents extra pairings.
func (s *Season) NextRound() (*league.Round, error) {
	if s.current >= s.schedule.Len() {
		return nil, fmt.Errorf("%w: all %d rounds have already been drawn", league.ErrState, s.schedule.Len())
	}
	s.current++
	r, err := s.schedule.Round(s.current)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("round drawn", "round", s.current, "matches", r.Len())
	return r, nil
}

// RecordResult records the score of a fixture in the given round.
func (s *Season) RecordResult(r Result) error {
	m, err := s.schedule.Find(r.Round, r.Fixture)
	if err != nil {
		return err
	}
	if err := m.RecordResult(r.HomeGoals, r.AwayGoals); err != nil {
		return fmt.Errorf("round %d: %w", r.Round, err)
	}
	s.logger.Debug("result recorded", "round", r.Round, "match", m.String())
	return nil
}

// ApplyResults records results in order, stopping at the first failure.
// It returns how many results were applied.
func (s *Season) ApplyResults(results []Result) (int, error) {
	for i, r := range results {
		if err := s.RecordResult(r); err != nil {
			s.logger.Warn("result rejected", "round", r.Round, "fixture", r.Fixture.String(), "error", err)
			return i, err
		}
	}
	s.logger.Info("results applied", "count", len(results), "played", s.Played())
	return len(results), nil
}

// Played counts matches with a recorded result.
func (s *Season) Played() int {
	played := 0
	for _, m := range s.schedule.Matches() {
		if m.Played() {
			played++
		}
	}
	return played
}

// Standings ranks the roster on the results recorded so far.
func (s *Season) Standings() *standings.Table {
	return standings.Compute(s.roster.Teams())
}

// Zones returns the configured table zones.
func (s *Season) Zones() config.Zones { return s.cfg.Zones }
