package schedule

import (
	"sort"
	"time"

	"github.com/derekprior/league/internal/config"
)

// Blackout is a calendar date on which no round is played.
type Blackout struct {
	Date   time.Time
	Reason string
}

// RoundDates assigns a date to each of the given number of rounds, starting
// at the calendar's start date and stepping by its interval. A round that
// lands on a blackout date moves to the next free day, and the following
// round is counted from the moved date. Returns nil when the calendar has no
// start date.
func RoundDates(cal config.Calendar, rounds int) []time.Time {
	if !cal.Enabled() || rounds <= 0 {
		return nil
	}

	blocked := make(map[time.Time]bool)
	for _, b := range cal.BlackoutDates {
		blocked[b.Date.Time] = true
	}

	dates := make([]time.Time, 0, rounds)
	d := cal.StartDate.Time
	for len(dates) < rounds {
		for blocked[d] {
			d = d.AddDate(0, 0, 1)
		}
		dates = append(dates, d)
		d = d.AddDate(0, 0, cal.Interval())
	}
	return dates
}

// Blackouts returns the calendar's blackout dates that fall between the
// start date and the given last date, sorted by date.
func Blackouts(cal config.Calendar, last time.Time) []Blackout {
	if !cal.Enabled() {
		return nil
	}

	var out []Blackout
	for _, b := range cal.BlackoutDates {
		if b.Date.Time.Before(cal.StartDate.Time) || b.Date.Time.After(last) {
			continue
		}
		out = append(out, Blackout{Date: b.Date.Time, Reason: b.Reason})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
