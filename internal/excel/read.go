package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/derekprior/league/internal/league"
	"github.com/derekprior/league/internal/season"
	"github.com/xuri/excelize/v2"
)

// FixtureRow is one match line read back from the fixtures sheet.
type FixtureRow struct {
	Row       int // 1-based worksheet row
	Round     int
	Home      string
	Away      string
	HomeGoals *int
	AwayGoals *int
}

// Fixture returns the row's ordered fixture.
func (r FixtureRow) Fixture() league.Fixture {
	return league.Fixture{Home: r.Home, Away: r.Away}
}

// Scored reports whether both goal cells are filled.
func (r FixtureRow) Scored() bool {
	return r.HomeGoals != nil && r.AwayGoals != nil
}

// ReadFile opens a workbook and reads its fixtures sheet.
func ReadFile(path string) ([]FixtureRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()
	return ReadFixtures(f)
}

// ReadFixtures parses the fixtures sheet. Rows without a round number, such
// as blackout notes, are skipped.
func ReadFixtures(f *excelize.File) ([]FixtureRow, error) {
	rows, err := f.GetRows(FixturesSheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", FixturesSheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s is empty", FixturesSheet)
	}

	var out []FixtureRow
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		round, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil || round < 1 {
			return nil, fmt.Errorf("row %d: invalid round %q", i+1, row[0])
		}

		fr := FixtureRow{
			Row:   i + 1,
			Round: round,
			Home:  cell(row, 2),
			Away:  cell(row, 5),
		}
		if fr.HomeGoals, err = parseGoals(cell(row, 3)); err != nil {
			return nil, fmt.Errorf("row %d: home goals: %w", i+1, err)
		}
		if fr.AwayGoals, err = parseGoals(cell(row, 4)); err != nil {
			return nil, fmt.Errorf("row %d: away goals: %w", i+1, err)
		}
		out = append(out, fr)
	}
	return out, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseGoals(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a whole number", s)
	}
	return &n, nil
}

// Rounds groups rows into count rounds. Entry i holds round i+1; rounds with
// no rows are left empty. A row numbered outside 1..count is an error.
func Rounds(rows []FixtureRow, count int) ([][]league.Fixture, error) {
	rounds := make([][]league.Fixture, count)
	for _, r := range rows {
		if r.Round < 1 || r.Round > count {
			return nil, fmt.Errorf("%w: row %d: round %d is outside 1..%d", league.ErrValidation, r.Row, r.Round, count)
		}
		rounds[r.Round-1] = append(rounds[r.Round-1], r.Fixture())
	}
	return rounds, nil
}

// Results returns a result for every row with both goal cells filled.
func Results(rows []FixtureRow) []season.Result {
	var results []season.Result
	for _, r := range rows {
		if !r.Scored() {
			continue
		}
		results = append(results, season.Result{
			Round:     r.Round,
			Fixture:   r.Fixture(),
			HomeGoals: *r.HomeGoals,
			AwayGoals: *r.AwayGoals,
		})
	}
	return results
}
