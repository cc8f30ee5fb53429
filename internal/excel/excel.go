package excel

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/derekprior/league/internal/season"
	"github.com/derekprior/league/internal/standings"
	"github.com/xuri/excelize/v2"
)

// Sheet names.
const (
	FixturesSheet  = "Fixtures"
	StandingsSheet = "Standings"
)

var fixtureHeaders = []string{"Round", "Date", "Home", "Home Goals", "Away Goals", "Away"}

// Generate creates a workbook with the fixture list, per-team sheets and the
// current standings.
func Generate(s *season.Season) (*excelize.File, error) {
	f := excelize.NewFile()

	// Set default font for the workbook
	f.SetDefaultFont("Arial")

	// The default sheet becomes the fixture list so no team sheet can be
	// mistaken for it later.
	if err := f.SetSheetName("Sheet1", FixturesSheet); err != nil {
		return nil, fmt.Errorf("naming fixtures sheet: %w", err)
	}

	if err := writeFixturesSheet(f, s); err != nil {
		return nil, fmt.Errorf("writing fixtures sheet: %w", err)
	}

	if err := writeTeamSheets(f, s); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	if err := writeStandingsSheet(f, s); err != nil {
		return nil, fmt.Errorf("writing standings sheet: %w", err)
	}

	return f, nil
}

// Refresh rewrites the team and standings sheets of an existing workbook
// from the season. The fixtures sheet is left as the user edited it.
func Refresh(path string, s *season.Season) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	for _, sheet := range teamSheetNames(s.Roster().Names()) {
		if err := f.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("removing %s: %w", sheet, err)
		}
	}
	if err := f.DeleteSheet(StandingsSheet); err != nil {
		return fmt.Errorf("removing %s: %w", StandingsSheet, err)
	}

	if err := writeTeamSheets(f, s); err != nil {
		return fmt.Errorf("writing team sheets: %w", err)
	}
	if err := writeStandingsSheet(f, s); err != nil {
		return fmt.Errorf("writing standings sheet: %w", err)
	}

	if idx, err := f.GetSheetIndex(FixturesSheet); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	return f.Save()
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 14, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
}

// sheetWriter keeps the first error from a run of cell writes so callers
// check once at the end.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, value any) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cellRef(col, row), value)
}

func (w *sheetWriter) style(fromCol, toCol, row, style int) {
	if w.err != nil || style == 0 {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cellRef(fromCol, row), cellRef(toCol, row), style)
}

func (w *sheetWriter) width(from, to string, width float64) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetColWidth(w.sheet, from, to, width)
}

func writeHeaders(f *excelize.File, sheet string, headers []string) error {
	w := &sheetWriter{f: f, sheet: sheet}
	for i, h := range headers {
		w.set(i+1, 1, h)
	}
	if w.err != nil {
		return w.err
	}
	style, err := headerStyle(f)
	if err != nil {
		return err
	}
	w.style(1, len(headers), 1, style)
	return w.err
}

func formatDate(d time.Time) string {
	return d.Format("01/02/2006")
}

func writeFixturesSheet(f *excelize.File, s *season.Season) error {
	sheet := FixturesSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if err := writeHeaders(f, sheet, fixtureHeaders); err != nil {
		return err
	}

	centered, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 14, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	blackoutStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFC7CE"}},
		Font: &excelize.Font{Size: 14, Family: "Arial", Italic: true},
	})
	if err != nil {
		return err
	}

	w := &sheetWriter{f: f, sheet: sheet}

	// Blackout dates are listed between rounds with no round number, so the
	// reader skips them.
	blackouts := s.Blackouts()
	row := 2
	for _, round := range s.Schedule().Rounds() {
		date, dated := s.Date(round.Number())
		for len(blackouts) > 0 && dated && blackouts[0].Date.Before(date) {
			w.set(2, row, formatDate(blackouts[0].Date))
			w.set(3, row, blackouts[0].Reason)
			w.style(1, len(fixtureHeaders), row, blackoutStyle)
			blackouts = blackouts[1:]
			row++
		}

		for _, m := range round.Matches() {
			w.set(1, row, round.Number())
			if dated {
				w.set(2, row, formatDate(date))
			}
			w.set(3, row, m.Home().Name())
			if hg, ag, ok := m.Score(); ok {
				w.set(4, row, hg)
				w.set(5, row, ag)
			}
			w.set(6, row, m.Away().Name())
			w.style(1, 2, row, centered)
			w.style(4, 5, row, centered)
			row++
		}
	}

	widths := map[string]float64{"A": 8, "B": 14, "C": 24, "D": 12, "E": 12, "F": 24}
	for col, width := range widths {
		w.width(col, col, width)
	}
	if w.err != nil {
		return w.err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeTeamSheets(f *excelize.File, s *season.Season) error {
	headers := []string{"Round", "Date", "Opponent", "Home/Away", "Score", "Result"}

	sheets := teamSheetNames(s.Roster().Names())
	for _, team := range s.Roster().Names() {
		sheet := sheets[team]
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet for %s: %w", team, err)
		}
		if err := writeHeaders(f, sheet, headers); err != nil {
			return fmt.Errorf("sheet for %s: %w", team, err)
		}

		type teamGame struct {
			round    int
			date     string
			opponent string
			homeAway string
			score    string
			result   string
		}
		var games []teamGame
		for _, round := range s.Schedule().Rounds() {
			for _, m := range round.Matches() {
				if !m.Involves(team) {
					continue
				}
				g := teamGame{round: round.Number()}
				if d, ok := s.Date(round.Number()); ok {
					g.date = formatDate(d)
				}
				scored, conceded, played := m.Score()
				if m.Home().Name() == team {
					g.opponent, g.homeAway = m.Away().Name(), "Home"
				} else {
					g.opponent, g.homeAway = m.Home().Name(), "Away"
					scored, conceded = conceded, scored
				}
				if played {
					g.score = fmt.Sprintf("%d-%d", scored, conceded)
					g.result = outcome(scored, conceded)
				}
				games = append(games, g)
			}
		}
		sort.Slice(games, func(i, j int) bool {
			return games[i].round < games[j].round
		})

		w := &sheetWriter{f: f, sheet: sheet}
		for i, g := range games {
			row := i + 2
			w.set(1, row, g.round)
			w.set(2, row, g.date)
			w.set(3, row, g.opponent)
			w.set(4, row, g.homeAway)
			w.set(5, row, g.score)
			w.set(6, row, g.result)
		}

		widths := map[string]float64{"A": 8, "B": 14, "C": 24, "D": 12, "E": 10, "F": 8}
		for col, width := range widths {
			w.width(col, col, width)
		}
		if w.err != nil {
			return fmt.Errorf("sheet for %s: %w", team, w.err)
		}
	}
	return nil
}

func outcome(scored, conceded int) string {
	switch {
	case scored > conceded:
		return "W"
	case scored < conceded:
		return "L"
	}
	return "D"
}

func writeStandingsSheet(f *excelize.File, s *season.Season) error {
	sheet := StandingsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	headers := []string{"Pos", "Team", "Pts", "P", "W", "D", "L", "GF", "GA", "GD", "Zone"}
	if err := writeHeaders(f, sheet, headers); err != nil {
		return err
	}

	zoneFills := map[string]string{
		standings.ZoneContinental: "#C6EFCE",
		standings.ZoneSecondary:   "#DDEBF7",
		standings.ZoneRelegation:  "#FFC7CE",
	}
	zoneStyles := make(map[string]int)
	for zone, color := range zoneFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
			Font: &excelize.Font{Size: 14, Family: "Arial"},
		})
		if err != nil {
			return err
		}
		zoneStyles[zone] = style
	}

	w := &sheetWriter{f: f, sheet: sheet}

	table := s.Standings()
	zones := s.Zones()
	for i, r := range table.Rows() {
		row := i + 2
		zone := table.Zone(r.Position, zones)
		values := []any{
			r.Position, r.Team, r.Points, r.GamesPlayed(), r.Wins, r.Draws, r.Losses,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference(), zone,
		}
		for col, v := range values {
			w.set(col+1, row, v)
		}
		w.style(1, len(headers), row, zoneStyles[zone])
	}

	w.width("A", "A", 6)
	w.width("B", "B", 24)
	w.width("C", "J", 7)
	w.width("K", "K", 14)
	return w.err
}

const maxSheetName = 31

// sheetName makes a team name usable as a worksheet name: at most 31
// characters, none of : \ / ? * [ ] and no apostrophe at either end.
func sheetName(team string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '-'
		}
		return r
	}, team)
	name = truncate(name, maxSheetName)
	if strings.HasPrefix(name, "'") {
		name = "-" + name[1:]
	}
	if strings.HasSuffix(name, "'") {
		name = name[:len(name)-1] + "-"
	}
	return name
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}
	return s
}

// teamSheetNames gives every team a worksheet name distinct from the other
// teams and from the fixed sheets. Excel compares sheet names without case,
// so a clash gets a " (2)", " (3)" ... suffix.
func teamSheetNames(teams []string) map[string]string {
	used := map[string]bool{
		strings.ToLower(FixturesSheet):  true,
		strings.ToLower(StandingsSheet): true,
	}
	names := make(map[string]string, len(teams))
	for _, team := range teams {
		base := sheetName(team)
		name := base
		for i := 2; used[strings.ToLower(name)]; i++ {
			suffix := fmt.Sprintf(" (%d)", i)
			name = truncate(base, maxSheetName-len(suffix)) + suffix
		}
		used[strings.ToLower(name)] = true
		names[team] = name
	}
	return names
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
