package schedule

import (
	"fmt"
	"math/rand"

	"github.com/derekprior/league/internal/league"
)

// ReturnOrder controls the order of second-leg rounds.
type ReturnOrder string

const (
	// Mirrored plays return round r+(N-1) as the mirror of round r.
	Mirrored ReturnOrder = "mirrored"
	// Shuffled plays the mirrored rounds in a seeded random order.
	Shuffled ReturnOrder = "shuffled"
)

// Options configures Generate.
type Options struct {
	Legs        int
	Shuffle     bool  // permute the roster before rotating
	Seed        int64 // source for Shuffle and Shuffled return order
	ReturnOrder ReturnOrder
}

// Generate draws a round-robin schedule with the circle method: position 0
// stays fixed, position i plays position N-1-i, and the other positions
// rotate by one slot after every round. Home and away alternate by round
// parity. With two legs, the second leg repeats every first-leg round with
// venues swapped.
func Generate(roster *league.Roster, opts Options) (*Schedule, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, fmt.Errorf("%w: roster is empty", league.ErrValidation)
	}
	n := roster.Len()
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: round robin needs an even number of teams, got %d", league.ErrValidation, n)
	}
	if opts.Legs != 1 && opts.Legs != 2 {
		return nil, fmt.Errorf("%w: legs must be 1 or 2, got %d", league.ErrValidation, opts.Legs)
	}
	switch opts.ReturnOrder {
	case "", Mirrored, Shuffled:
	default:
		return nil, fmt.Errorf("%w: unknown return order %q", league.ErrValidation, opts.ReturnOrder)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	teams := roster.Teams()
	if opts.Shuffle {
		rng.Shuffle(len(teams), func(i, j int) {
			teams[i], teams[j] = teams[j], teams[i]
		})
	}

	g := newGenerator()
	first, err := g.firstLeg(teams)
	if err != nil {
		return nil, err
	}

	s := &Schedule{rounds: first, legs: opts.Legs, teams: n}
	if opts.Legs == 1 {
		return s, nil
	}

	order := make([]int, len(first))
	for i := range order {
		order[i] = i
	}
	if opts.ReturnOrder == Shuffled {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	second, err := g.returnLeg(first, order)
	if err != nil {
		return nil, err
	}
	s.rounds = append(s.rounds, second...)
	return s, nil
}

// generator emits matches and guards against drawing the same ordered
// fixture twice.
type generator struct {
	emitted map[league.Fixture]bool
}

func newGenerator() *generator {
	return &generator{emitted: make(map[league.Fixture]bool)}
}

func (g *generator) emit(r *league.Round, home, away *league.Team) error {
	m, err := league.NewMatch(home, away)
	if err != nil {
		return err
	}
	f := m.Fixture()
	if g.emitted[f] {
		return fmt.Errorf("%w: fixture %s drawn twice", league.ErrValidation, f)
	}
	if err := r.Add(m); err != nil {
		return err
	}
	g.emitted[f] = true
	return nil
}

func (g *generator) firstLeg(teams []*league.Team) ([]*league.Round, error) {
	n := len(teams)
	positions := make([]*league.Team, n)
	copy(positions, teams)

	rounds := make([]*league.Round, 0, n-1)
	for r := 0; r < n-1; r++ {
		round, err := league.NewRound(r + 1)
		if err != nil {
			return nil, err
		}
		for i := 0; i < n/2; i++ {
			home, away := positions[i], positions[n-1-i]
			if r%2 == 1 {
				home, away = away, home
			}
			if err := g.emit(round, home, away); err != nil {
				return nil, err
			}
		}
		rounds = append(rounds, round)

		// Keep position 0 fixed; the last team moves to position 1.
		last := positions[n-1]
		copy(positions[2:], positions[1:n-1])
		positions[1] = last
	}
	return rounds, nil
}

func (g *generator) returnLeg(first []*league.Round, order []int) ([]*league.Round, error) {
	offset := len(first)
	rounds := make([]*league.Round, 0, len(first))
	for k, idx := range order {
		round, err := league.NewRound(offset + k + 1)
		if err != nil {
			return nil, err
		}
		for _, m := range first[idx].Matches() {
			if err := g.emit(round, m.Away(), m.Home()); err != nil {
				return nil, err
			}
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}
