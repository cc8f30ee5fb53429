package league

import "fmt"

// Roster is the ordered set of teams taking part in a season.
type Roster struct {
	teams  []*Team
	byName map[string]*Team
}

// NewRoster creates a team for every name, preserving order. Names must be
// unique and non-blank.
func NewRoster(names []string) (*Roster, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: roster is empty", ErrValidation)
	}

	r := &Roster{byName: make(map[string]*Team, len(names))}
	for _, name := range names {
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("%w: team %q appears more than once", ErrValidation, name)
		}
		t, err := NewTeam(name)
		if err != nil {
			return nil, err
		}
		r.teams = append(r.teams, t)
		r.byName[name] = t
	}
	return r, nil
}

// Teams returns the roster's teams in registration order. The slice is a
// copy; the teams are shared.
func (r *Roster) Teams() []*Team {
	teams := make([]*Team, len(r.teams))
	copy(teams, r.teams)
	return teams
}

// Names returns team names in registration order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.teams))
	for i, t := range r.teams {
		names[i] = t.name
	}
	return names
}

// Team looks up a team by name.
func (r *Roster) Team(name string) (*Team, bool) {
	t, ok := r.byName[name]
	return t, ok
}

func (r *Roster) Len() int { return len(r.teams) }
