package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/nthakkar/basketballref/internal/boxscore"
	"github.com/nthakkar/basketballref/internal/export"
	"github.com/nthakkar/basketballref/internal/player"
	"github.com/nthakkar/basketballref/internal/roster"
	"github.com/nthakkar/basketballref/internal/schedule"
	"github.com/nthakkar/basketballref/internal/scraper"
	"github.com/nthakkar/basketballref/internal/table"
	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	var letters string
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Build the player directory from the alphabetical index pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			letters = strings.ToLower(strings.TrimSpace(letters))
			if letters == "" {
				return fmt.Errorf("--letters must not be empty")
			}
			list, err := player.FetchList(scraper.New(), letters)
			if err != nil {
				return err
			}
			return emit(&Result{Table: list})
		},
	}
	cmd.Flags().StringVar(&letters, "letters", player.DefaultLetters, "Index letters to fetch")
	return cmd
}

func newGameLogCmd() *cobra.Command {
	var (
		seasonsFlag string
		basicOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "gamelog <player-uri>",
		Short: "Aggregate a player's per-game statistics across seasons",
		Long: `Aggregate a player's basic and advanced per-game statistic tables across
seasons into one time-indexed table. The player URI is the stable token from
the player directory, e.g. jordami01.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seasons, err := parseSeasons(seasonsFlag)
			if err != nil {
				return err
			}
			log, err := player.FetchGameLog(scraper.New(), args[0], seasons, !basicOnly)
			if err != nil {
				return err
			}
			return emit(&Result{Title: log.Title, Table: log.Table})
		},
	}
	cmd.Flags().StringVar(&seasonsFlag, "seasons", "", "Seasons to aggregate, e.g. 2017 or 2015-2018 (required)")
	cmd.Flags().BoolVar(&basicOnly, "basic-only", false, "Skip the advanced statistic pages")
	cmd.MarkFlagRequired("seasons")
	return cmd
}

func newRosterCmd() *cobra.Command {
	var (
		season      int
		dropMissing bool
	)
	cmd := &cobra.Command{
		Use:   "roster <team>",
		Short: "Fetch a team's active roster for one season",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			team := strings.ToUpper(strings.TrimSpace(args[0]))
			r, err := roster.Fetch(scraper.New(), team, season, dropMissing)
			if err != nil {
				return err
			}
			return emit(&Result{
				Title:       fmt.Sprintf("%s %d roster", r.Team, r.Season),
				Description: r.Description,
				Table:       r.Table,
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year, named by the year the season concludes in (required)")
	cmd.Flags().BoolVar(&dropMissing, "drop-missing", false, "Drop rows with any missing field")
	cmd.MarkFlagRequired("season")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	var (
		season     int
		monthsFlag string
		team       string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Aggregate a season's monthly schedule pages into one calendar",
		RunE: func(cmd *cobra.Command, args []string) error {
			months := schedule.Months
			if monthsFlag != "" {
				months = nil
				for _, m := range strings.Split(monthsFlag, ",") {
					if m = strings.TrimSpace(m); m != "" {
						months = append(months, m)
					}
				}
			}
			s, err := schedule.Fetch(scraper.New(), season, months)
			if err != nil {
				return err
			}
			if team != "" {
				needle := strings.ToLower(team)
				s.Table.Filter(func(r table.Row) bool {
					return strings.Contains(strings.ToLower(r.Get("away").Text), needle) ||
						strings.Contains(strings.ToLower(r.Get("home").Text), needle)
				})
			}
			return emit(&Result{Title: s.Name, Table: s.Table})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year, named by the year the season concludes in (required)")
	cmd.Flags().StringVar(&monthsFlag, "months", "", "Months to fetch, comma-separated (default: the full season)")
	cmd.Flags().StringVar(&team, "team", "", "Only keep games involving this team name")
	cmd.MarkFlagRequired("season")
	return cmd
}

func newBoxScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boxscore <game-uri>",
		Short: "Parse one game's box score",
		Long: `Parse one game's box score into a per-player statistics table with final
scores. The game URI is the stable token from the schedule's game_uri
column, e.g. 201806080CLE.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bs, err := boxscore.Fetch(scraper.New(), args[0])
			if err != nil {
				return err
			}
			return emit(&Result{Title: bs.Title, FinalScore: bs.FinalScore, Table: bs.Table})
		},
	}
	return cmd
}

// emit writes the result to stdout in the selected format and honors the
// --save flag.
func emit(result *Result) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if err := WriteOutput(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if flagSave != "" {
		if err := export.Save(flagSave, result.Table); err != nil {
			return err
		}
	}
	return nil
}
