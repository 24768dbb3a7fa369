package board

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/warmans/golfduel/pkg/board"
	"github.com/warmans/golfduel/pkg/cutoff"
	"github.com/warmans/golfduel/pkg/flag"
	"github.com/warmans/golfduel/pkg/golf"

	"log/slog"
)

func NewBoardCommand(logger *slog.Logger) *cobra.Command {

	var hole string
	var lang string
	var scoring string
	var cutoffStr string
	var golfers string
	var baseURL string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "show one hole's reconstructed leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {

			if hole == "" {
				return fmt.Errorf("--hole is required")
			}
			cut, err := cutoff.Normalize(cutoffStr)
			if err != nil {
				return err
			}

			client := golf.NewClient(logger, baseURL)
			solutions, err := client.SolutionLog(cmd.Context(), hole, lang)
			if err != nil {
				return err
			}

			b, err := board.Reconstruct(
				golf.SolutionLog{HoleID: hole, HoleName: hole, Solutions: solutions},
				board.Metric(scoring),
				cut,
			)
			if err != nil {
				return err
			}
			if golfers != "" {
				b = b.Narrow(strings.Split(golfers, ","))
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Rank", "Golfer", "Length", "Score", "Lang", "Submitted"})
			for _, e := range b.Entries {
				rank := strconv.Itoa(e.Rank)
				if e.Diamond() {
					rank = "◆"
				}
				table.Append([]string{
					rank,
					e.Golfer,
					strconv.Itoa(e.Length),
					fmt.Sprintf("%.1f", e.Score),
					e.Lang,
					e.Submitted,
				})
			}
			table.Render()
			return nil
		},
	}

	flag.StringVarEnv(cmd.Flags(), &hole, "", "hole", "", "hole ID e.g. catalan-numbers")
	flag.StringVarEnv(cmd.Flags(), &lang, "", "lang", "rust", "language to show solutions for")
	flag.StringVarEnv(cmd.Flags(), &scoring, "", "scoring", "bytes", "scoring metric (bytes or chars)")
	flag.StringVarEnv(cmd.Flags(), &cutoffStr, "", "cutoff", "now", "reconstruct the leaderboard as of this point in time")
	flag.StringVarEnv(cmd.Flags(), &golfers, "", "golfers", "", "comma separated golfer handles to restrict the board to")
	flag.StringVarEnv(cmd.Flags(), &baseURL, "", "api-url", golf.DefaultBaseURL, "")

	flag.Parse()

	return cmd
}
