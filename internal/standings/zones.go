package standings

import "github.com/derekprior/league/internal/config"

// Zone labels.
const (
	ZoneContinental = "continental"
	ZoneSecondary   = "secondary"
	ZoneRelegation  = "relegation"
)

// Zone returns the label for a 1-based position, or "" when the position
// falls in no zone. Relegation wins over the other zones when a small table
// makes them overlap.
func (t *Table) Zone(position int, z config.Zones) string {
	if position < 1 || position > len(t.rows) {
		return ""
	}
	switch {
	case z.Relegation > 0 && position > len(t.rows)-z.Relegation:
		return ZoneRelegation
	case position <= z.Continental:
		return ZoneContinental
	case z.SecondaryFrom > 0 && position >= z.SecondaryFrom && position <= z.SecondaryTo:
		return ZoneSecondary
	}
	return ""
}

// Continental returns the continental qualification rows.
func (t *Table) Continental(z config.Zones) []Row {
	return t.Top(z.Continental)
}

// Secondary returns the rows of the secondary competition band.
func (t *Table) Secondary(z config.Zones) []Row {
	if z.SecondaryFrom == 0 {
		return []Row{}
	}
	return t.Band(z.SecondaryFrom, z.SecondaryTo)
}

// Relegated returns the relegation rows.
func (t *Table) Relegated(z config.Zones) []Row {
	return t.Bottom(z.Relegation)
}
