package standings

import (
	"sort"

	"github.com/derekprior/league/internal/league"
)

// Row is one line of the table: a team's position and a snapshot of its
// statistics at the time the table was computed.
type Row struct {
	Position int
	Team     string
	league.Stats
}

// Table is a ranked standings table. It is computed once and never re-sorted.
type Table struct {
	rows []Row
}

// Compute ranks the teams by points, wins, goal difference and goals scored,
// all descending, falling back to name ascending so no two rows tie.
func Compute(teams []*league.Team) *Table {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, Row{Team: t.Name(), Stats: t.Stats()})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return less(rows[i], rows[j])
	})

	for i := range rows {
		rows[i].Position = i + 1
	}
	return &Table{rows: rows}
}

func less(a, b Row) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	if gdA, gdB := a.GoalDifference(), b.GoalDifference(); gdA != gdB {
		return gdA > gdB
	}
	if a.GoalsFor != b.GoalsFor {
		return a.GoalsFor > b.GoalsFor
	}
	return a.Team < b.Team
}

// Rows returns the table in rank order. The slice is a copy.
func (t *Table) Rows() []Row {
	return t.slice(0, len(t.rows))
}

func (t *Table) Len() int { return len(t.rows) }

// Position returns the 1-based rank of the named team.
func (t *Table) Position(team string) (int, bool) {
	for _, r := range t.rows {
		if r.Team == team {
			return r.Position, true
		}
	}
	return 0, false
}

// Top returns the first k rows.
func (t *Table) Top(k int) []Row {
	return t.slice(0, k)
}

// Band returns positions from..to, both 1-based and inclusive, clamped to the
// table.
func (t *Table) Band(from, to int) []Row {
	if from < 1 {
		from = 1
	}
	return t.slice(from-1, to)
}

// Bottom returns the last k rows.
func (t *Table) Bottom(k int) []Row {
	if k <= 0 {
		return []Row{}
	}
	return t.slice(len(t.rows)-k, len(t.rows))
}

func (t *Table) slice(lo, hi int) []Row {
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.rows) {
		hi = len(t.rows)
	}
	if lo >= hi {
		return []Row{}
	}
	out := make([]Row, hi-lo)
	copy(out, t.rows[lo:hi])
	return out
}
