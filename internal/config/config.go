package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a wrapper around time.Time for YAML date parsing.
type Date struct {
	Time time.Time
}

func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	t, err := time.Parse("2006-01-02", value.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", value.Value, err)
	}
	d.Time = t
	return nil
}

func (d Date) IsZero() bool { return d.Time.IsZero() }

type BlackoutDate struct {
	Date   Date   `yaml:"date"`
	Reason string `yaml:"reason"`
}

// Calendar spreads rounds over dates. It is optional; without a start date
// rounds are undated.
type Calendar struct {
	StartDate     Date           `yaml:"start_date"`
	IntervalDays  int            `yaml:"interval_days"`
	BlackoutDates []BlackoutDate `yaml:"blackout_dates"`
}

// Enabled reports whether a start date was configured.
func (c Calendar) Enabled() bool { return !c.StartDate.IsZero() }

// Interval returns the number of days between rounds, defaulting to a week.
func (c Calendar) Interval() int {
	if c.IntervalDays <= 0 {
		return 7
	}
	return c.IntervalDays
}

// Draw controls how the fixture list is drawn.
type Draw struct {
	Shuffle     bool   `yaml:"shuffle"`
	Seed        int64  `yaml:"seed"`
	ReturnOrder string `yaml:"return_order"`
}

// Zones sizes the qualification and relegation bands of the table.
type Zones struct {
	Continental   int `yaml:"continental"`
	SecondaryFrom int `yaml:"secondary_from"`
	SecondaryTo   int `yaml:"secondary_to"`
	Relegation    int `yaml:"relegation"`
}

type Config struct {
	Name     string   `yaml:"name"`
	Teams    []string `yaml:"teams"`
	Strategy string   `yaml:"strategy"`
	Draw     Draw     `yaml:"draw"`
	Zones    Zones    `yaml:"zones"`
	Calendar Calendar `yaml:"calendar"`
}

// LoadFromBytes parses YAML bytes into a Config and validates it.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads and parses a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

func (c *Config) validate() error {
	if len(c.Teams) < 2 {
		return fmt.Errorf("at least two teams are required, got %d", len(c.Teams))
	}
	if len(c.Teams)%2 != 0 {
		return fmt.Errorf("team count must be even, got %d", len(c.Teams))
	}

	seen := make(map[string]bool)
	for _, team := range c.Teams {
		if strings.TrimSpace(team) == "" {
			return fmt.Errorf("team names cannot be blank")
		}
		if seen[team] {
			return fmt.Errorf("team %q is listed more than once", team)
		}
		seen[team] = true
	}

	switch c.Draw.ReturnOrder {
	case "", "mirrored", "shuffled":
	default:
		return fmt.Errorf("unknown return_order %q (want mirrored or shuffled)", c.Draw.ReturnOrder)
	}

	z := c.Zones
	if z.Continental < 0 || z.SecondaryFrom < 0 || z.SecondaryTo < 0 || z.Relegation < 0 {
		return fmt.Errorf("zone sizes cannot be negative")
	}
	if (z.SecondaryFrom == 0) != (z.SecondaryTo == 0) {
		return fmt.Errorf("zones: secondary_from and secondary_to must be set together")
	}
	if z.SecondaryFrom > 0 && z.SecondaryTo < z.SecondaryFrom {
		return fmt.Errorf("zones: secondary_to %d is before secondary_from %d", z.SecondaryTo, z.SecondaryFrom)
	}
	if z.Continental+z.Relegation > len(c.Teams) {
		return fmt.Errorf("zones: continental (%d) and relegation (%d) places exceed %d teams",
			z.Continental, z.Relegation, len(c.Teams))
	}

	if c.Calendar.IntervalDays < 0 {
		return fmt.Errorf("calendar: interval_days cannot be negative")
	}
	if !c.Calendar.Enabled() && len(c.Calendar.BlackoutDates) > 0 {
		return fmt.Errorf("calendar: blackout_dates require a start_date")
	}

	return nil
}
