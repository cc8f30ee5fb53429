package validator

import (
	"fmt"
	"sort"

	"github.com/derekprior/league/internal/config"
	"github.com/derekprior/league/internal/excel"
	"github.com/derekprior/league/internal/league"
	"github.com/derekprior/league/internal/strategy"
)

// Violation represents a problem found in a fixtures workbook.
type Violation struct {
	Row     int    // worksheet row, 0 when the problem spans rows
	Type    string // "error" or "warning"
	Message string
}

// Validate reads a fixtures workbook and checks it against the config.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	strat, err := strategy.Get(cfg.Strategy, cfg.Draw)
	if err != nil {
		return nil, err
	}

	rows, err := excel.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}

	return Check(cfg, strat.Legs(), rows), nil
}

// Check runs every rule over already-parsed fixture rows.
func Check(cfg *config.Config, legs int, rows []excel.FixtureRow) []Violation {
	var violations []Violation

	// Fixture list shape
	violations = append(violations, checkKnownTeams(cfg, rows)...)
	violations = append(violations, checkSelfPairing(rows)...)
	violations = append(violations, checkTeamOncePerRound(rows)...)
	violations = append(violations, checkRoundSizes(cfg, rows)...)
	violations = append(violations, checkRoundCount(cfg, legs, rows)...)

	// Pairings
	violations = append(violations, checkDuplicateFixtures(rows)...)
	violations = append(violations, checkPairCounts(cfg, legs, rows)...)

	// Scores
	violations = append(violations, checkScores(rows)...)

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Row < violations[j].Row
	})
	return violations
}

func checkKnownTeams(cfg *config.Config, rows []excel.FixtureRow) []Violation {
	known := make(map[string]bool)
	for _, t := range cfg.Teams {
		known[t] = true
	}

	var violations []Violation
	for _, r := range rows {
		for _, team := range []string{r.Home, r.Away} {
			if !known[team] {
				violations = append(violations, Violation{
					Row:     r.Row,
					Type:    "error",
					Message: fmt.Sprintf("round %d: unknown team %q", r.Round, team),
				})
			}
		}
	}
	return violations
}

func checkSelfPairing(rows []excel.FixtureRow) []Violation {
	var violations []Violation
	for _, r := range rows {
		if r.Home == r.Away {
			violations = append(violations, Violation{
				Row:     r.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d: %s plays itself", r.Round, r.Home),
			})
		}
	}
	return violations
}

func checkTeamOncePerRound(rows []excel.FixtureRow) []Violation {
	type teamRound struct {
		team  string
		round int
	}
	firstRow := make(map[teamRound]int)

	var violations []Violation
	for _, r := range rows {
		for _, team := range []string{r.Home, r.Away} {
			key := teamRound{team, r.Round}
			if prev, ok := firstRow[key]; ok {
				if prev == r.Row {
					continue // self pairing, reported elsewhere
				}
				violations = append(violations, Violation{
					Row:     r.Row,
					Type:    "error",
					Message: fmt.Sprintf("round %d: %s already plays on row %d", r.Round, team, prev),
				})
				continue
			}
			firstRow[key] = r.Row
		}
	}
	return violations
}

func checkRoundSizes(cfg *config.Config, rows []excel.FixtureRow) []Violation {
	want := len(cfg.Teams) / 2
	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.Round]++
	}

	var rounds []int
	for round := range counts {
		rounds = append(rounds, round)
	}
	sort.Ints(rounds)

	var violations []Violation
	for _, round := range rounds {
		if counts[round] != want {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("round %d has %d matches, want %d", round, counts[round], want),
			})
		}
	}
	return violations
}

func checkRoundCount(cfg *config.Config, legs int, rows []excel.FixtureRow) []Violation {
	want := legs * (len(cfg.Teams) - 1)
	seen := make(map[int]bool)
	for _, r := range rows {
		seen[r.Round] = true
	}

	var violations []Violation
	if len(seen) != want {
		violations = append(violations, Violation{
			Type:    "warning",
			Message: fmt.Sprintf("workbook has %d rounds, %s expects %d", len(seen), plural(legs), want),
		})
	}
	for round := 1; round <= want; round++ {
		if !seen[round] {
			violations = append(violations, Violation{
				Type:    "error",
				Message: fmt.Sprintf("round %d is missing", round),
			})
		}
	}
	return violations
}

func plural(legs int) string {
	if legs == 1 {
		return "a single leg"
	}
	return fmt.Sprintf("%d legs", legs)
}

func checkDuplicateFixtures(rows []excel.FixtureRow) []Violation {
	firstRow := make(map[league.Fixture]int)

	var violations []Violation
	for _, r := range rows {
		f := r.Fixture()
		if prev, ok := firstRow[f]; ok {
			violations = append(violations, Violation{
				Row:     r.Row,
				Type:    "error",
				Message: fmt.Sprintf("%s is scheduled twice (rows %d and %d)", f, prev, r.Row),
			})
			continue
		}
		firstRow[f] = r.Row
	}
	return violations
}

func checkPairCounts(cfg *config.Config, legs int, rows []excel.FixtureRow) []Violation {
	type pair struct{ a, b string }
	meetings := make(map[pair]int)
	venues := make(map[league.Fixture]bool)
	for _, r := range rows {
		if r.Home == r.Away {
			continue
		}
		a, b := r.Fixture().Pair()
		meetings[pair{a, b}]++
		venues[r.Fixture()] = true
	}

	teams := make([]string, len(cfg.Teams))
	copy(teams, cfg.Teams)
	sort.Strings(teams)

	var violations []Violation
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			a, b := teams[i], teams[j]
			n := meetings[pair{a, b}]
			if n != legs {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("%s and %s meet %d times, want %d", a, b, n, legs),
				})
				continue
			}
			if legs == 2 && !(venues[league.Fixture{Home: a, Away: b}] && venues[league.Fixture{Home: b, Away: a}]) {
				violations = append(violations, Violation{
					Type:    "error",
					Message: fmt.Sprintf("%s and %s do not play once at each home", a, b),
				})
			}
		}
	}
	return violations
}

func checkScores(rows []excel.FixtureRow) []Violation {
	var violations []Violation
	for _, r := range rows {
		if (r.HomeGoals == nil) != (r.AwayGoals == nil) {
			violations = append(violations, Violation{
				Row:     r.Row,
				Type:    "warning",
				Message: fmt.Sprintf("round %d: %s has only one goal cell filled; it counts as not played", r.Round, r.Fixture()),
			})
			continue
		}
		if r.Scored() && (*r.HomeGoals < 0 || *r.AwayGoals < 0) {
			violations = append(violations, Violation{
				Row:     r.Row,
				Type:    "error",
				Message: fmt.Sprintf("round %d: %s has negative goals", r.Round, r.Fixture()),
			})
		}
	}
	return violations
}
