package league

import (
	"fmt"
	"strings"
)

// Points awarded per result.
const (
	PointsWin  = 3
	PointsDraw = 1
	PointsLoss = 0
)

// Stats is a snapshot of a team's accumulated results.
type Stats struct {
	Points       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

// GoalDifference returns goals scored minus goals conceded.
func (s Stats) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// GamesPlayed returns the number of recorded results.
func (s Stats) GamesPlayed() int {
	return s.Wins + s.Draws + s.Losses
}

// Team is a participant in the league. Its statistics change only when a
// Match records a result.
type Team struct {
	name  string
	stats Stats
}

// NewTeam creates a team with zero statistics.
func NewTeam(name string) (*Team, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: team name is required", ErrValidation)
	}
	return &Team{name: name}, nil
}

func (t *Team) Name() string { return t.name }

// Stats returns a copy of the team's current statistics.
func (t *Team) Stats() Stats { return t.stats }

func (t *Team) String() string {
	s := t.stats
	return fmt.Sprintf("%s - Pts:%d W:%d D:%d L:%d GF:%d GA:%d GD:%d",
		t.name, s.Points, s.Wins, s.Draws, s.Losses, s.GoalsFor, s.GoalsAgainst, s.GoalDifference())
}

func (t *Team) recordWin(scored, conceded int) {
	t.stats.Points += PointsWin
	t.stats.Wins++
	t.addGoals(scored, conceded)
}

func (t *Team) recordDraw(scored, conceded int) {
	t.stats.Points += PointsDraw
	t.stats.Draws++
	t.addGoals(scored, conceded)
}

func (t *Team) recordLoss(scored, conceded int) {
	t.stats.Points += PointsLoss
	t.stats.Losses++
	t.addGoals(scored, conceded)
}

func (t *Team) addGoals(scored, conceded int) {
	t.stats.GoalsFor += scored
	t.stats.GoalsAgainst += conceded
}
