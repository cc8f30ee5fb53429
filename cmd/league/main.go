package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/derekprior/league/internal/config"
	"github.com/derekprior/league/internal/excel"
	"github.com/derekprior/league/internal/season"
	"github.com/derekprior/league/internal/validator"
)

const (
	defaultConfigFile = "league.yaml"
	configEnv         = "LEAGUE_CONFIG"
)

func resolveConfigPath(configFlag string) (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	if env := os.Getenv(configEnv); env != "" {
		return env, nil
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile, nil
	}
	return "", fmt.Errorf("no config file found. Either create %s in the current directory, set %s or pass --config", defaultConfigFile, configEnv)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	_ = godotenv.Load(".env")

	var (
		configFile string
		verbose    bool
		logger     *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "league",
		Short: "Round-robin fixture generator and standings table",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = newLogger(os.Stderr, verbose)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: $LEAGUE_CONFIG or league.yaml in current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	var initOutputPath string
	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Create a starter league.yaml in the current directory",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(initOutputPath)
		},
	}
	initCmd.Flags().StringVarP(&initOutputPath, "output", "o", defaultConfigFile, "Output path for the config file")

	fixturesCmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Generate, validate and show fixture lists",
	}

	var outputFile string
	generateCmd := &cobra.Command{
		Use:          "generate",
		Short:        "Draw the fixture list from a config file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			return runGenerate(cfg, outputFile, logger)
		},
	}
	generateCmd.Flags().StringVarP(&outputFile, "output", "o", "fixtures.xlsx", "Output Excel file path")

	validateCmd := &cobra.Command{
		Use:          "validate <fixtures.xlsx>",
		Short:        "Validate an edited fixture list against the config",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			return runValidate(cfg, args[0], logger)
		},
	}

	var showRound int
	showCmd := &cobra.Command{
		Use:          "show",
		Short:        "Print the drawn fixture list",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			return runShow(os.Stdout, cfg, showRound, logger)
		},
	}
	showCmd.Flags().IntVar(&showRound, "round", 0, "Only print this round")

	standingsCmd := &cobra.Command{
		Use:          "standings <fixtures.xlsx>",
		Short:        "Replay recorded scores and print the table",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			return runStandings(os.Stdout, cfg, args[0], logger)
		},
	}

	fixturesCmd.AddCommand(generateCmd, validateCmd, showCmd)
	rootCmd.AddCommand(initCmd, fixturesCmd, standingsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(configFlag string) (*config.Config, error) {
	path, err := resolveConfigPath(configFlag)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runInit(outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first or use -o to write elsewhere", outputPath)
	}

	if err := os.WriteFile(outputPath, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("✓ Created %s\n", outputPath)
	return nil
}

const configTemplate = `# League Configuration
# ====================
# This file defines the teams and the draw for a single-table league.

name: "Campeonato Brasileiro"

# Teams taking part. The count must be even and names must be unique.
teams:
  - Atlético Mineiro
  - Bahia
  - Botafogo
  - Corinthians
  - Cruzeiro
  - Flamengo
  - Fluminense
  - Grêmio
  - Internacional
  - Palmeiras
  - Santos
  - São Paulo

# Strategy decides how many times each pair meets.
#   round_robin      one leg, every pair meets once
#   turn_and_return  two legs, every pair meets once at each home
strategy: turn_and_return

# Draw controls the order of the fixture list.
# shuffle randomizes the team order before the draw; seed makes it repeatable.
# return_order is "mirrored" (second leg repeats the first leg's round order)
# or "shuffled" (second leg rounds are reordered with the same seed).
draw:
  shuffle: true
  seed: 2026
  return_order: mirrored

# Zones mark positions in the table. Positions are 1-based.
# relegation counts from the bottom and wins over any other zone.
zones:
  continental: 4
  secondary_from: 5
  secondary_to: 6
  relegation: 2

# Calendar dates each round. Omit start_date to leave rounds undated.
# A round falling on a blackout date moves to the next free day.
calendar:
  start_date: "2026-04-12"
  interval_days: 7
  blackout_dates:
    - date: "2026-06-14"
      reason: "International break"
`

func runGenerate(cfg *config.Config, outputPath string, logger *slog.Logger) error {
	s, err := season.New(cfg, logger)
	if err != nil {
		return err
	}

	sched := s.Schedule()
	fmt.Printf("Drew %d matches over %d rounds for %d teams (%d leg(s))\n",
		sched.TotalMatches(), sched.Len(), s.Roster().Len(), sched.Legs())

	fmt.Println("\nPer Team Metrics:")
	fmt.Printf("  %-24s %6s %5s %5s\n", "Team", "Games", "Home", "Away")
	for _, team := range s.Roster().Names() {
		home, away := 0, 0
		for _, m := range sched.Matches() {
			switch {
			case m.Home().Name() == team:
				home++
			case m.Away().Name() == team:
				away++
			}
		}
		fmt.Printf("  %-24s %6d %5d %5d\n", team, home+away, home, away)
	}

	if blackouts := s.Blackouts(); len(blackouts) > 0 {
		fmt.Printf("\nBlackout dates skipped (%d):\n", len(blackouts))
		for _, b := range blackouts {
			fmt.Printf("  ⚠ %s %s\n", b.Date.Format("2006-01-02"), b.Reason)
		}
	}

	f, err := excel.Generate(s)
	if err != nil {
		return fmt.Errorf("generating Excel: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("saving file: %w", err)
	}

	fmt.Printf("\n✓ Fixtures saved to %s\n", outputPath)
	return nil
}

func runValidate(cfg *config.Config, path string, logger *slog.Logger) error {
	violations, err := validator.Validate(cfg, path)
	if err != nil {
		return fmt.Errorf("validating: %w", err)
	}

	errors := 0
	warnings := 0
	for _, v := range violations {
		where := ""
		if v.Row > 0 {
			where = fmt.Sprintf("row %d: ", v.Row)
		}
		switch v.Type {
		case "error":
			errors++
			fmt.Printf("✗ %s%s\n", where, v.Message)
		case "warning":
			warnings++
			fmt.Printf("⚠ %s%s\n", where, v.Message)
		}
	}

	fmt.Printf("\nValidation complete: %d errors, %d warnings\n", errors, warnings)

	if errors > 0 {
		return fmt.Errorf("%d fixture errors found", errors)
	}

	s, err := replay(cfg, path, logger)
	if err != nil {
		return err
	}
	if err := excel.Refresh(path, s); err != nil {
		return fmt.Errorf("updating team sheets: %w", err)
	}
	fmt.Printf("✓ Team and standings sheets updated in %s\n", path)
	return nil
}

func runShow(w io.Writer, cfg *config.Config, round int, logger *slog.Logger) error {
	s, err := season.New(cfg, logger)
	if err != nil {
		return err
	}

	if round > 0 {
		r, err := s.Schedule().Round(round)
		if err != nil {
			return err
		}
		printRound(w, s, r.Number())
		return nil
	}

	for n := 1; n <= s.Schedule().Len(); n++ {
		if n > 1 {
			fmt.Fprintln(w)
		}
		printRound(w, s, n)
	}
	return nil
}

func printRound(w io.Writer, s *season.Season, n int) {
	r, err := s.Schedule().Round(n)
	if err != nil {
		return
	}
	header := fmt.Sprintf("Round %d", n)
	if d, ok := s.Date(n); ok {
		header += " (" + d.Format("Mon 01/02/2006") + ")"
	}
	fmt.Fprintln(w, header)
	for _, m := range r.Matches() {
		fmt.Fprintf(w, "  %s\n", m)
	}
}

// replay rebuilds the season from a workbook and applies its recorded scores.
func replay(cfg *config.Config, path string, logger *slog.Logger) (*season.Season, error) {
	rows, err := excel.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	count, err := season.RoundCount(cfg)
	if err != nil {
		return nil, err
	}
	rounds, err := excel.Rounds(rows, count)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	s, err := season.Load(cfg, rounds, logger)
	if err != nil {
		return nil, fmt.Errorf("loading fixtures: %w", err)
	}
	if _, err := s.ApplyResults(excel.Results(rows)); err != nil {
		return nil, fmt.Errorf("applying results: %w", err)
	}
	return s, nil
}

func runStandings(w io.Writer, cfg *config.Config, path string, logger *slog.Logger) error {
	s, err := replay(cfg, path, logger)
	if err != nil {
		return err
	}

	table := s.Standings()
	zones := s.Zones()
	fmt.Fprintf(w, "%s after %d of %d matches\n\n", displayName(s), s.Played(), s.Schedule().TotalMatches())
	fmt.Fprintf(w, "  %3s  %-24s %4s %3s %3s %3s %3s %4s %4s %4s  %s\n",
		"Pos", "Team", "Pts", "P", "W", "D", "L", "GF", "GA", "GD", "Zone")
	for _, r := range table.Rows() {
		fmt.Fprintf(w, "  %3d  %-24s %4d %3d %3d %3d %3d %4d %4d %+4d  %s\n",
			r.Position, r.Team, r.Points, r.GamesPlayed(), r.Wins, r.Draws, r.Losses,
			r.GoalsFor, r.GoalsAgainst, r.GoalDifference(), table.Zone(r.Position, zones))
	}

	if err := excel.Refresh(path, s); err != nil {
		return fmt.Errorf("updating standings: %w", err)
	}
	fmt.Fprintf(w, "\n✓ Standings saved to %s\n", path)
	return nil
}

func displayName(s *season.Season) string {
	if name := strings.TrimSpace(s.Name()); name != "" {
		return name
	}
	return "League"
}
