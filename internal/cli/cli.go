package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nthakkar/basketballref/internal/logger"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagFormat  string
	flagSave    string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basketballref",
		Short: "Scrape normalized statistics tables from basketball-reference.com",
		Long: `A CLI tool to retrieve sports statistics published as HTML tables on
basketball-reference.com and normalize them into typed tabular records:
player directories, per-player game logs, team rosters, season schedules,
and per-game box scores.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text, json, or csv")
	cmd.PersistentFlags().StringVar(&flagSave, "save", "", "Also save the table to this path (.json or .csv)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		newPlayersCmd(),
		newGameLogCmd(),
		newRosterCmd(),
		newScheduleCmd(),
		newBoxScoreCmd(),
	)

	return cmd
}

// outputFormat validates the --format flag.
func outputFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	switch format {
	case FormatText, FormatJSON, FormatCSV:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json', or 'csv')", flagFormat)
	}
}

// parseSeasons parses a season list flag: comma-separated years with
// inclusive ranges, e.g. "2017", "2016,2018", "2015-2018".
func parseSeasons(s string) ([]int, error) {
	var seasons []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			first, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid season range %q", part)
			}
			last, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || last < first {
				return nil, fmt.Errorf("invalid season range %q", part)
			}
			for y := first; y <= last; y++ {
				seasons = append(seasons, y)
			}
			continue
		}
		year, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid season %q", part)
		}
		seasons = append(seasons, year)
	}
	if len(seasons) == 0 {
		return nil, fmt.Errorf("no seasons given")
	}
	return seasons, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
